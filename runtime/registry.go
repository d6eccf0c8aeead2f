// Package runtime holds the broker's shared state (identity registry,
// connection ledger) and the session router that drives it. It contains
// no wire format knowledge; transports adapt to it via contract types.
package runtime

import (
	"math/rand/v2"
	"sync"
	"time"

	"peerlink/contract"
	"peerlink/domain"
)

// Registry owns the mapping between ephemeral identities and live
// transport sessions. Both lookups (id -> session, session -> id) are
// O(1). Absence is signaled by a false second return, never an error.
type Registry struct {
	mu        sync.RWMutex
	byID      map[string]*domain.Identity
	bySession map[string]*domain.Identity
	sinks     map[string]contract.EventSink // keyed by identity id
}

func NewRegistry() *Registry {
	return &Registry{
		byID:      make(map[string]*domain.Identity),
		bySession: make(map[string]*domain.Identity),
		sinks:     make(map[string]contract.EventSink),
	}
}

// Assign generates a fresh identity id, binds it to the session and its
// sink, and returns the new Identity. Uniqueness is process-lifetime
// only: ids are collision-checked against currently-assigned ids and
// may be reused after their owner disconnects.
func (r *Registry) Assign(sessionID string, sink contract.EventSink) *domain.Identity {
	r.mu.Lock()
	defer r.mu.Unlock()

	identity := &domain.Identity{
		ID:        r.generateID(),
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}
	r.byID[identity.ID] = identity
	r.bySession[sessionID] = identity
	r.sinks[identity.ID] = sink
	return identity
}

// generateID draws 6 characters from A-Z0-9 and retries on collision.
// Caller must hold the write lock.
func (r *Registry) generateID() string {
	buf := make([]byte, domain.IdentityLength)
	for {
		for i := range buf {
			buf[i] = domain.IdentityAlphabet[rand.IntN(len(domain.IdentityAlphabet))]
		}
		id := string(buf)
		if _, taken := r.byID[id]; !taken {
			return id
		}
	}
}

func (r *Registry) LookupByID(id string) (*domain.Identity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	identity, ok := r.byID[id]
	return identity, ok
}

func (r *Registry) LookupBySession(sessionID string) (*domain.Identity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	identity, ok := r.bySession[sessionID]
	return identity, ok
}

// SinkFor resolves the live sink of an identity, for directed sends.
func (r *Registry) SinkFor(id string) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sink, ok := r.sinks[id]
	return sink, ok
}

// Release removes both lookup entries and the sink. It does not touch
// the ledger; callers must unwind links first (Ledger.DisconnectAll) to
// avoid dangling linked-set entries.
func (r *Registry) Release(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	identity, ok := r.bySession[sessionID]
	if !ok {
		return
	}
	delete(r.byID, identity.ID)
	delete(r.sinks, identity.ID)
	delete(r.bySession, sessionID)
}

// Count reports the number of live sessions. Observability only.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bySession)
}
