package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"peerlink/contract"
	"peerlink/domain"
	"peerlink/domain/event"
	"peerlink/errors"
)

// Termination wording, kept from the original wire protocol. The event
// shape is identical for all three paths; only the text differs.
const (
	endedByPeer = "The other user has disconnected"
	endedBySelf = "You have disconnected"
	peerLeft    = "The other user has left"
)

// Router dispatches inbound transport events to registry and ledger
// calls and pushes the resulting events to the acting session, its
// peer, or both. Every mutation completes before any emission starts;
// emission is fire-and-forget so a slow session never blocks routing.
type Router struct {
	log       *slog.Logger
	registry  contract.IRegistry
	ledger    contract.ILedger
	telemetry chan<- event.Event
}

func NewRouter(log *slog.Logger, registry contract.IRegistry, ledger contract.ILedger,
	telemetry chan<- event.Event) *Router {
	return &Router{
		log:       log,
		registry:  registry,
		ledger:    ledger,
		telemetry: telemetry,
	}
}

// SessionOpened assigns a fresh identity to the session and tells the
// client which id it got.
func (r *Router) SessionOpened(ctx context.Context, sessionID string, sink contract.EventSink) *domain.Identity {
	identity := r.registry.Assign(sessionID, sink)
	r.log.Info("new user connected", "user_id", identity.ID, "session_id", sessionID)

	r.emit(ctx, sink, event.IdentityAssigned{UserID: identity.ID, At: identity.CreatedAt})
	r.publish(event.SessionOpened{UserID: identity.ID, At: identity.CreatedAt})
	return identity
}

// SessionClosed is the transport-level cleanup path: every linked peer
// is notified, then the identity is released. Links are unwound before
// the release so no peer keeps a dangling linked-set entry.
func (r *Router) SessionClosed(ctx context.Context, sessionID string) {
	identity, ok := r.registry.LookupBySession(sessionID)
	if !ok {
		return
	}

	now := time.Now().UTC()
	peers := r.ledger.DisconnectAll(identity.ID)
	for _, peerID := range peers {
		r.emitTo(ctx, peerID, event.ConnectionEnded{PeerID: identity.ID, Message: peerLeft, At: now})
	}

	r.registry.Release(sessionID)
	r.publish(event.SessionClosed{UserID: identity.ID, At: now})
	r.log.Info("user disconnected", "user_id", identity.ID, "active_users", r.registry.Count())
}

// RequestConnection asks the ledger for a pending record and reports
// the outcome: the acting session learns the request went out, the
// target learns a request came in. Rejections go back to the acting
// session only, as a connection:error event.
func (r *Router) RequestConnection(ctx context.Context, sessionID, targetID string) {
	actor, ok := r.registry.LookupBySession(sessionID)
	if !ok {
		return
	}

	now := time.Now().UTC()
	connectionID, err := r.ledger.RequestConnection(actor.ID, targetID)
	if err != nil {
		r.log.Warn("connection request rejected", "from", actor.ID, "to", targetID, "reason", err)
		r.emitTo(ctx, actor.ID, event.ConnectionError{Message: err.Error(), At: now})
		return
	}

	r.emitTo(ctx, actor.ID, event.ConnectionRequestSent{TargetUserID: targetID, ConnectionID: connectionID, At: now})
	r.emitTo(ctx, targetID, event.ConnectionRequestReceived{From: actor.ID, ConnectionID: connectionID, At: now})
	r.log.Info(fmt.Sprintf("connection request: %s -> %s (%s)", actor.ID, targetID, connectionID))
}

// AcceptConnection activates the pending record initiated by
// initiatorID toward the acting session. A stale or duplicate accept is
// silently ignored; retransmissions are expected, not errors.
func (r *Router) AcceptConnection(ctx context.Context, sessionID, initiatorID string) {
	actor, ok := r.registry.LookupBySession(sessionID)
	if !ok {
		return
	}

	if !r.ledger.AcceptConnection(initiatorID, actor.ID) {
		r.log.Debug("stale accept ignored", "initiator", initiatorID, "target", actor.ID)
		return
	}

	now := time.Now().UTC()
	connectionID := domain.ConnectionID(initiatorID, actor.ID)
	r.emitTo(ctx, initiatorID, event.ConnectionEstablished{ConnectedTo: actor.ID, ConnectionID: connectionID, At: now})
	r.emitTo(ctx, actor.ID, event.ConnectionEstablished{ConnectedTo: initiatorID, ConnectionID: connectionID, At: now})
	r.log.Info(fmt.Sprintf("connection accepted: %s accepted %s (%s)", actor.ID, initiatorID, connectionID))
}

// DeclineConnection removes the pending record and tells the initiator.
// Declining twice, or declining a request that never existed, is a no-op.
func (r *Router) DeclineConnection(ctx context.Context, sessionID, initiatorID string) {
	actor, ok := r.registry.LookupBySession(sessionID)
	if !ok {
		return
	}

	r.ledger.DeclineConnection(initiatorID, actor.ID)
	r.emitTo(ctx, initiatorID, event.ConnectionDeclined{DeclinedBy: actor.ID, At: time.Now().UTC()})
	r.log.Info(fmt.Sprintf("connection declined: %s declined %s", actor.ID, initiatorID))
}

// SendMessage relays a text or file message to a linked peer. The
// target alone receives message:received; the sender's UI already holds
// its locally-composed copy. An unauthorized target produces exactly
// one message:error to the sender and the message is dropped, never
// queued. File payloads are routed as-is; the broker never looks inside.
func (r *Router) SendMessage(ctx context.Context, sessionID string, cmd domain.SendMessageCommand) {
	actor, ok := r.registry.LookupBySession(sessionID)
	if !ok {
		return
	}

	now := time.Now().UTC()
	if !r.ledger.IsLinked(actor.ID, cmd.TargetID) {
		r.emitTo(ctx, actor.ID, event.MessageError{Message: errors.ErrNotLinked.Error(), At: now})
		return
	}

	kind := cmd.Kind
	if kind == "" {
		kind = domain.KindText
	}
	msg := domain.Message{
		ID:     newMessageID(),
		From:   actor.ID,
		To:     cmd.TargetID,
		Kind:   kind,
		SentAt: now,
	}
	switch kind {
	case domain.KindFile:
		msg.File = cmd.File
	default:
		msg.Text = strings.TrimSpace(cmd.Text)
	}

	r.emitTo(ctx, cmd.TargetID, event.MessageReceived{Message: msg})
	r.log.Info("message relayed", "from", actor.ID, "to", cmd.TargetID, "kind", kind)
}

// Typing forwards a presence hint to a linked peer. Typing toward a
// peer the sender is not linked to is dropped without a reply; presence
// is advisory and not worth a rejection round-trip.
func (r *Router) Typing(ctx context.Context, sessionID, targetID string, isTyping bool) {
	actor, ok := r.registry.LookupBySession(sessionID)
	if !ok {
		return
	}
	if !r.ledger.IsLinked(actor.ID, targetID) {
		return
	}
	r.emitTo(ctx, targetID, event.TypingUser{UserID: actor.ID, IsTyping: isTyping})
}

// Disconnect tears down one pairwise connection. Both sessions get a
// connection:ended event with the same shape but distinct wording.
func (r *Router) Disconnect(ctx context.Context, sessionID, targetID string) {
	actor, ok := r.registry.LookupBySession(sessionID)
	if !ok {
		return
	}

	r.ledger.DisconnectPair(actor.ID, targetID)

	now := time.Now().UTC()
	r.emitTo(ctx, targetID, event.ConnectionEnded{PeerID: actor.ID, Message: endedByPeer, At: now})
	r.emitTo(ctx, actor.ID, event.ConnectionEnded{PeerID: targetID, Message: endedBySelf, At: now})
	r.log.Info(fmt.Sprintf("%s disconnected from %s", actor.ID, targetID))
}

// emitTo resolves the identity's sink and emits. A vanished session is
// normal here, not an error; the event is simply not deliverable.
func (r *Router) emitTo(ctx context.Context, identityID string, evt event.Event) {
	sink, ok := r.registry.SinkFor(identityID)
	if !ok {
		return
	}
	r.emit(ctx, sink, evt)
}

func (r *Router) emit(ctx context.Context, sink contract.EventSink, evt event.Event) {
	if err := sink.Consume(ctx, evt); err != nil {
		r.log.Warn("outbound event dropped", "event", evt.Name(), "error", err)
		r.publish(event.DeliveryDropped{Event: evt.Name(), At: time.Now().UTC()})
		return
	}
	r.publish(evt)
}

// publish mirrors the event onto the telemetry channel, best effort.
func (r *Router) publish(evt event.Event) {
	if r.telemetry == nil {
		return
	}
	select {
	case r.telemetry <- evt:
	default:
		r.log.Debug("telemetry channel full, event lost")
	}
}

// newMessageID builds a client-side UI key: millisecond timestamp plus
// a random base36 suffix. Best-effort uniqueness, never used for
// authorization or deduplication.
func newMessageID() string {
	const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}
	return fmt.Sprintf("msg-%d-%s", time.Now().UnixMilli(), suffix)
}
