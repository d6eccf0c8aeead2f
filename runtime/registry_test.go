package runtime

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"peerlink/domain"
	"peerlink/domain/event"
)

type Sink struct {
}

func (s Sink) Consume(ctx context.Context, e event.Event) error {
	return nil
}

func TestRegistry_Assign_Binds_Both_Lookups(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID := uuid.NewString()
	sink := Sink{}

	// Given an empty registry
	req.Zero(registry.Count())

	// When a session opens
	identity := registry.Assign(sessionID, sink)

	// Then the identity resolves both ways
	req.Len(identity.ID, domain.IdentityLength)
	req.Equal(sessionID, identity.SessionID)

	byID, ok := registry.LookupByID(identity.ID)
	req.True(ok)
	req.Equal(identity, byID)

	bySession, ok := registry.LookupBySession(sessionID)
	req.True(ok)
	req.Equal(identity, bySession)

	resolvedSink, ok := registry.SinkFor(identity.ID)
	req.True(ok)
	req.Equal(sink, resolvedSink)
}

func TestRegistry_Assign_Never_Reuses_A_Live_Id(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// When 1000 sessions open
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		identity := registry.Assign(uuid.NewString(), Sink{})

		// Then every id is fresh and drawn from the expected alphabet
		_, duplicate := seen[identity.ID]
		req.False(duplicate, "id %s assigned twice", identity.ID)
		seen[identity.ID] = struct{}{}

		req.Len(identity.ID, domain.IdentityLength)
		for _, c := range identity.ID {
			req.True(strings.ContainsRune(domain.IdentityAlphabet, c))
		}
	}
	req.Equal(1000, registry.Count())
}

func TestRegistry_Lookup_Absence_Is_Not_An_Error(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	_, ok := registry.LookupByID("ZZZZZZ")
	req.False(ok)

	_, ok = registry.LookupBySession(uuid.NewString())
	req.False(ok)

	_, ok = registry.SinkFor("ZZZZZZ")
	req.False(ok)
}

func TestRegistry_Release_Removes_Everything(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID := uuid.NewString()

	// Given an assigned identity
	identity := registry.Assign(sessionID, Sink{})

	// When the session is released
	registry.Release(sessionID)

	// Then no trace remains
	_, ok := registry.LookupByID(identity.ID)
	req.False(ok)
	_, ok = registry.LookupBySession(sessionID)
	req.False(ok)
	_, ok = registry.SinkFor(identity.ID)
	req.False(ok)
	req.Zero(registry.Count())

	// And releasing again is a no-op
	registry.Release(sessionID)
}
