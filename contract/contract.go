//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"peerlink/domain"
	"peerlink/domain/event"
)

// EventSink is one direction of a transport session: the broker pushes
// outbound events into it, the transport drains them to the client.
// Consume must never block; a full sink reports ErrSessionBufferFull
// and the event is dropped (fire-and-forget delivery).
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// IdentityResolver is the read-only view of the registry the ledger
// needs to check that a target identity currently exists.
type IdentityResolver interface {
	LookupByID(id string) (*domain.Identity, bool)
}

type IRegistry interface {
	Assign(sessionID string, sink EventSink) *domain.Identity
	LookupByID(id string) (*domain.Identity, bool)
	LookupBySession(sessionID string) (*domain.Identity, bool)
	SinkFor(id string) (EventSink, bool)
	Release(sessionID string)
	Count() int
}

type ILedger interface {
	RequestConnection(initiatorID, targetID string) (string, error)
	AcceptConnection(initiatorID, targetID string) bool
	DeclineConnection(initiatorID, targetID string)
	DisconnectPair(a, b string)
	DisconnectAll(id string) []string
	IsLinked(a, b string) bool
	LinkedPeers(id string) []string
}

// IBroker is the session router: one method per inbound transport
// event. Every call completes synchronously against shared state;
// outbound emission happens after the mutation, fire-and-forget.
type IBroker interface {
	SessionOpened(ctx context.Context, sessionID string, sink EventSink) *domain.Identity
	SessionClosed(ctx context.Context, sessionID string)
	RequestConnection(ctx context.Context, sessionID, targetID string)
	AcceptConnection(ctx context.Context, sessionID, initiatorID string)
	DeclineConnection(ctx context.Context, sessionID, initiatorID string)
	SendMessage(ctx context.Context, sessionID string, cmd domain.SendMessageCommand)
	Typing(ctx context.Context, sessionID, targetID string, isTyping bool)
	Disconnect(ctx context.Context, sessionID, targetID string)
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
