// Package sink provides EventSink implementations bridging the broker
// to transport sessions.
package sink

import (
	"context"
	"log/slog"

	"peerlink/domain/event"
	"peerlink/errors"
)

// SessionSink buffers outbound events for one transport session. The
// router writes, the transport's write loop drains. Consume never
// blocks: when the buffer is full the event is dropped and reported,
// so one slow client cannot stall the broker.
type SessionSink struct {
	log    *slog.Logger
	Events chan event.Event
}

func NewSessionSink(log *slog.Logger, bufferSize int) *SessionSink {
	return &SessionSink{
		log:    log,
		Events: make(chan event.Event, bufferSize),
	}
}

func (s *SessionSink) Consume(ctx context.Context, e event.Event) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		s.log.Debug("session buffer full", "event", e.Name())
		return errors.ErrSessionBufferFull
	}
}
