package runtime

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"peerlink/domain"
	"peerlink/domain/event"
	"peerlink/errors"
)

// recorderSink captures every event emitted toward one session.
type recorderSink struct {
	mu     sync.Mutex
	events []event.Event
}

func (s *recorderSink) Consume(_ context.Context, e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recorderSink) all() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.events...)
}

func (s *recorderSink) named(name string) []event.Event {
	return lo.Filter(s.all(), func(e event.Event, _ int) bool {
		return e.Name() == name
	})
}

type testSession struct {
	sessionID string
	userID    string
	sink      *recorderSink
}

func newTestRouter() *Router {
	registry := NewRegistry()
	return NewRouter(slog.Default(), registry, NewLedger(registry), nil)
}

func openSession(router *Router) testSession {
	sink := &recorderSink{}
	sessionID := uuid.NewString()
	identity := router.SessionOpened(context.Background(), sessionID, sink)
	return testSession{sessionID: sessionID, userID: identity.ID, sink: sink}
}

func pair(t *testing.T, router *Router, a, b testSession) {
	t.Helper()
	ctx := context.Background()
	router.RequestConnection(ctx, a.sessionID, b.userID)
	router.AcceptConnection(ctx, b.sessionID, a.userID)
	require.Len(t, a.sink.named("connection:success"), 1)
	require.Len(t, b.sink.named("connection:success"), 1)
}

func TestRouter_SessionOpened_Assigns_An_Identity(t *testing.T) {
	req := require.New(t)
	router := newTestRouter()

	// When a session opens
	session := openSession(router)

	// Then the session learns its id first
	assigned := session.sink.named("user:assigned")
	req.Len(assigned, 1)
	req.Equal(session.userID, assigned[0].(event.IdentityAssigned).UserID)
	req.Len(session.userID, domain.IdentityLength)
}

func TestRouter_Request_To_Unknown_Target_Reports_An_Error(t *testing.T) {
	req := require.New(t)
	router := newTestRouter()
	a := openSession(router)

	// When a requests an id nobody holds
	router.RequestConnection(context.Background(), a.sessionID, "ZZZZZZ")

	// Then only a connection:error comes back
	errs := a.sink.named("connection:error")
	req.Len(errs, 1)
	req.Equal(errors.ErrTargetNotFound.Error(), errs[0].(event.ConnectionError).Message)
	req.Empty(a.sink.named("connection:request:sent"))
}

func TestRouter_Full_Pairing_And_Message_Relay(t *testing.T) {
	req := require.New(t)
	router := newTestRouter()
	ctx := context.Background()
	a := openSession(router)
	b := openSession(router)

	// When a requests b
	router.RequestConnection(ctx, a.sessionID, b.userID)

	// Then both sides see the pending request
	sent := a.sink.named("connection:request:sent")
	req.Len(sent, 1)
	req.Equal(b.userID, sent[0].(event.ConnectionRequestSent).TargetUserID)

	received := b.sink.named("connection:request:received")
	req.Len(received, 1)
	req.Equal(a.userID, received[0].(event.ConnectionRequestReceived).From)

	// When b accepts
	router.AcceptConnection(ctx, b.sessionID, a.userID)

	// Then both sides learn the connection, under the same connection id
	successA := a.sink.named("connection:success")
	successB := b.sink.named("connection:success")
	req.Len(successA, 1)
	req.Len(successB, 1)
	req.Equal(b.userID, successA[0].(event.ConnectionEstablished).ConnectedTo)
	req.Equal(a.userID, successB[0].(event.ConnectionEstablished).ConnectedTo)
	req.Equal(
		successA[0].(event.ConnectionEstablished).ConnectionID,
		successB[0].(event.ConnectionEstablished).ConnectionID,
	)

	// When a sends a message
	router.SendMessage(ctx, a.sessionID, domain.SendMessageCommand{
		TargetID: b.userID,
		Kind:     domain.KindText,
		Text:     "  hello b  ",
	})

	// Then b alone receives it, trimmed, and the sender gets no echo
	delivered := b.sink.named("message:received")
	req.Len(delivered, 1)
	msg := delivered[0].(event.MessageReceived).Message
	req.Equal(a.userID, msg.From)
	req.Equal(b.userID, msg.To)
	req.Equal(domain.KindText, msg.Kind)
	req.Equal("hello b", msg.Text)
	req.True(strings.HasPrefix(msg.ID, "msg-"))
	req.Empty(a.sink.named("message:received"))
}

func TestRouter_File_Message_Is_Relayed_Untouched(t *testing.T) {
	req := require.New(t)
	router := newTestRouter()
	a := openSession(router)
	b := openSession(router)
	pair(t, router, a, b)

	file := &domain.FilePayload{
		Name:     "notes.txt",
		Size:     11,
		MimeType: "text/plain",
		Data:     "aGVsbG8gd29ybGQ=",
	}
	router.SendMessage(context.Background(), a.sessionID, domain.SendMessageCommand{
		TargetID: b.userID,
		Kind:     domain.KindFile,
		File:     file,
	})

	delivered := b.sink.named("message:received")
	req.Len(delivered, 1)
	msg := delivered[0].(event.MessageReceived).Message
	req.Equal(domain.KindFile, msg.Kind)
	req.Equal(file, msg.File)
	req.Empty(msg.Text)
}

func TestRouter_Unauthorized_Message_Yields_Exactly_One_Error(t *testing.T) {
	req := require.New(t)
	router := newTestRouter()
	a := openSession(router)
	c := openSession(router)

	// When a sends to a user it never connected to
	router.SendMessage(context.Background(), a.sessionID, domain.SendMessageCommand{
		TargetID: c.userID,
		Kind:     domain.KindText,
		Text:     "hi",
	})

	// Then the sender gets one message:error and the target gets nothing
	errs := a.sink.named("message:error")
	req.Len(errs, 1)
	req.Equal(errors.ErrNotLinked.Error(), errs[0].(event.MessageError).Message)
	req.Empty(c.sink.named("message:received"))
	req.Empty(c.sink.named("message:error"))
}

func TestRouter_Duplicate_Request_Is_Rejected(t *testing.T) {
	req := require.New(t)
	router := newTestRouter()
	ctx := context.Background()
	a := openSession(router)
	b := openSession(router)

	router.RequestConnection(ctx, a.sessionID, b.userID)
	router.RequestConnection(ctx, a.sessionID, b.userID)

	// The second attempt only produces an error for the requester
	errs := a.sink.named("connection:error")
	req.Len(errs, 1)
	req.Equal(errors.ErrAlreadyConnected.Error(), errs[0].(event.ConnectionError).Message)
	req.Len(a.sink.named("connection:request:sent"), 1)
	req.Len(b.sink.named("connection:request:received"), 1)
}

func TestRouter_Decline_Notifies_The_Initiator(t *testing.T) {
	req := require.New(t)
	router := newTestRouter()
	ctx := context.Background()
	a := openSession(router)
	b := openSession(router)

	router.RequestConnection(ctx, a.sessionID, b.userID)
	router.DeclineConnection(ctx, b.sessionID, a.userID)

	declined := a.sink.named("connection:declined")
	req.Len(declined, 1)
	req.Equal(b.userID, declined[0].(event.ConnectionDeclined).DeclinedBy)

	// And the pair is free to start over
	router.RequestConnection(ctx, a.sessionID, b.userID)
	req.Len(a.sink.named("connection:request:sent"), 2)
}

func TestRouter_Stale_Accept_Emits_Nothing(t *testing.T) {
	req := require.New(t)
	router := newTestRouter()
	a := openSession(router)
	b := openSession(router)

	// When b accepts a request that was never made
	router.AcceptConnection(context.Background(), b.sessionID, a.userID)

	req.Empty(a.sink.named("connection:success"))
	req.Empty(b.sink.named("connection:success"))
}

func TestRouter_Typing_Reaches_Linked_Peers_Only(t *testing.T) {
	req := require.New(t)
	router := newTestRouter()
	ctx := context.Background()
	a := openSession(router)
	b := openSession(router)
	c := openSession(router)
	pair(t, router, a, b)

	// When a types toward its peer and toward a stranger
	router.Typing(ctx, a.sessionID, b.userID, true)
	router.Typing(ctx, a.sessionID, b.userID, false)
	router.Typing(ctx, a.sessionID, c.userID, true)

	typing := b.sink.named("typing:user")
	req.Len(typing, 2)
	req.True(typing[0].(event.TypingUser).IsTyping)
	req.False(typing[1].(event.TypingUser).IsTyping)
	req.Equal(a.userID, typing[0].(event.TypingUser).UserID)

	// The stranger hears nothing, and no error goes back either
	req.Empty(c.sink.named("typing:user"))
	req.Empty(a.sink.named("message:error"))
}

func TestRouter_Disconnect_Uses_Distinct_Wording_Per_Side(t *testing.T) {
	req := require.New(t)
	router := newTestRouter()
	ctx := context.Background()
	a := openSession(router)
	b := openSession(router)
	pair(t, router, a, b)

	// When a ends the connection
	router.Disconnect(ctx, a.sessionID, b.userID)

	endedB := b.sink.named("connection:ended")
	req.Len(endedB, 1)
	req.Equal(a.userID, endedB[0].(event.ConnectionEnded).PeerID)
	req.Equal(endedByPeer, endedB[0].(event.ConnectionEnded).Message)

	endedA := a.sink.named("connection:ended")
	req.Len(endedA, 1)
	req.Equal(b.userID, endedA[0].(event.ConnectionEnded).PeerID)
	req.Equal(endedBySelf, endedA[0].(event.ConnectionEnded).Message)

	// And further messages between the pair are rejected
	router.SendMessage(ctx, a.sessionID, domain.SendMessageCommand{
		TargetID: b.userID, Kind: domain.KindText, Text: "still there?",
	})
	req.Len(a.sink.named("message:error"), 1)
	req.Empty(b.sink.named("message:received"))

	// Yet the pair can reconnect from scratch
	router.RequestConnection(ctx, b.sessionID, a.userID)
	req.Len(b.sink.named("connection:request:sent"), 1)
}

func TestRouter_SessionClosed_Notifies_Every_Linked_Peer(t *testing.T) {
	req := require.New(t)
	router := newTestRouter()
	ctx := context.Background()
	a := openSession(router)
	b := openSession(router)
	c := openSession(router)
	pair(t, router, a, b)
	pair(t, router, c, a)

	// When a's transport goes away
	router.SessionClosed(ctx, a.sessionID)

	for _, peer := range []testSession{b, c} {
		ended := peer.sink.named("connection:ended")
		req.Len(ended, 1)
		req.Equal(a.userID, ended[0].(event.ConnectionEnded).PeerID)
		req.Equal(peerLeft, ended[0].(event.ConnectionEnded).Message)
	}

	// And a's id is no longer reachable
	router.RequestConnection(ctx, b.sessionID, a.userID)
	errs := b.sink.named("connection:error")
	req.Len(errs, 1)
	req.Equal(errors.ErrTargetNotFound.Error(), errs[0].(event.ConnectionError).Message)
}

func TestRouter_SessionClosed_For_Unknown_Session_Is_A_Noop(t *testing.T) {
	router := newTestRouter()
	router.SessionClosed(context.Background(), uuid.NewString())
}

func TestRouter_Mirrors_Events_Onto_The_Telemetry_Channel(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	telemetry := make(chan event.Event, 16)
	router := NewRouter(slog.Default(), registry, NewLedger(registry), telemetry)

	session := openSession(router)
	router.SessionClosed(context.Background(), session.sessionID)

	close(telemetry)
	var names []string
	for evt := range telemetry {
		names = append(names, evt.Name())
	}
	req.Contains(names, event.SessionOpened{}.Name())
	req.Contains(names, "user:assigned")
	req.Contains(names, event.SessionClosed{}.Name())
}
