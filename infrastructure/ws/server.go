// Package ws adapts websocket connections to the broker: one session
// per connection, JSON envelopes in both directions. All pairing and
// routing rules live behind the service; this layer only decodes,
// validates, and forwards.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"peerlink/domain"
	"peerlink/errors"
	"peerlink/services"
	"peerlink/sink"
)

type Server struct {
	log          *slog.Logger
	broker       services.IBrokerService
	validate     *validator.Validate
	upgrader     websocket.Upgrader
	bufferSize   int
	writeTimeout time.Duration
}

func NewServer(log *slog.Logger, broker services.IBrokerService,
	bufferSize int, writeTimeout time.Duration) *Server {
	return &Server{
		log:      log,
		broker:   broker,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Identities are ephemeral and unauthenticated; origin
			// enforcement belongs to the deployment proxy.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		bufferSize:   bufferSize,
		writeTimeout: writeTimeout,
	}
}

// Handle upgrades the request and runs the session until the client
// goes away. The connection dropping, for any reason, is the normal
// trigger for the broker's cleanup path, never an error condition.
func (s *Server) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	sessionSink := sink.NewSessionSink(s.log, s.bufferSize)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	s.broker.SessionOpened(ctx, sessionID, sessionSink)
	// Cleanup must still run once ctx is canceled by the disconnect.
	defer s.broker.SessionClosed(context.WithoutCancel(ctx), sessionID)

	go s.writeLoop(ctx, conn, sessionSink)
	s.readLoop(ctx, sessionID, conn)
}

func (s *Server) writeLoop(ctx context.Context, conn *websocket.Conn, sessionSink *sink.SessionSink) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-sessionSink.Events:
			_ = conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
			if err := conn.WriteJSON(Envelope{Event: evt.Name(), Data: evt}); err != nil {
				s.log.Debug("session write failed", "event", evt.Name(), "error", err)
				return
			}
		}
	}
}

func (s *Server) readLoop(ctx context.Context, sessionID string, conn *websocket.Conn) {
	for {
		var env InboundEnvelope
		if err := conn.ReadJSON(&env); err != nil {
			return
		}
		s.dispatch(ctx, sessionID, env)
	}
}

func (s *Server) dispatch(ctx context.Context, sessionID string, env InboundEnvelope) {
	switch env.Event {
	case evConnectionRequest:
		var p connectionRequestPayload
		if !s.decode(env, &p) {
			return
		}
		s.broker.RequestConnection(ctx, sessionID, p.TargetUserID)

	case evConnectionAccept:
		var p connectionReplyPayload
		if !s.decode(env, &p) {
			return
		}
		s.broker.AcceptConnection(ctx, sessionID, p.FromUserID)

	case evConnectionDecline:
		var p connectionReplyPayload
		if !s.decode(env, &p) {
			return
		}
		s.broker.DeclineConnection(ctx, sessionID, p.FromUserID)

	case evMessageSend:
		var p messagePayload
		if !s.decode(env, &p) {
			return
		}
		kind := domain.MessageKind(p.Type)
		if kind == "" {
			kind = domain.KindText
		}
		s.broker.SendMessage(ctx, sessionID, domain.SendMessageCommand{
			TargetID: p.TargetUserID,
			Kind:     kind,
			Text:     p.Message,
		})

	case evFileSend:
		var p fileSendPayload
		if !s.decode(env, &p) {
			return
		}
		s.broker.SendMessage(ctx, sessionID, domain.SendMessageCommand{
			TargetID: p.TargetUserID,
			Kind:     domain.KindFile,
			File: &domain.FilePayload{
				Name:     p.File.Name,
				Size:     p.File.Size,
				MimeType: p.File.MimeType,
				Data:     p.File.Data,
			},
		})

	case evTypingStart:
		var p typingPayload
		if !s.decode(env, &p) {
			return
		}
		s.broker.Typing(ctx, sessionID, p.TargetUserID, true)

	case evTypingStop:
		var p typingPayload
		if !s.decode(env, &p) {
			return
		}
		s.broker.Typing(ctx, sessionID, p.TargetUserID, false)

	case evConnectionDisconnect:
		var p disconnectPayload
		if !s.decode(env, &p) {
			return
		}
		s.broker.Disconnect(ctx, sessionID, p.TargetUserID)

	default:
		s.log.Warn("dropping frame", "event", env.Event, "error", errors.ErrUnknownInboundType)
	}
}

// decode unmarshals and validates a payload. Malformed frames are
// logged and dropped; the session itself stays up.
func (s *Server) decode(env InboundEnvelope, out any) bool {
	if err := json.Unmarshal(env.Data, out); err != nil {
		s.log.Warn("malformed payload", "event", env.Event, "error", err)
		return false
	}
	if err := s.validate.Struct(out); err != nil {
		s.log.Warn("invalid payload", "event", env.Event, "error", err)
		return false
	}
	return true
}
