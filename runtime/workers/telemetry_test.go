package workers

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"peerlink/domain/event"
)

type recordingHandler struct {
	mu    sync.Mutex
	names []string
	seen  chan struct{}
}

func newRecordingHandler(expected int) *recordingHandler {
	return &recordingHandler{seen: make(chan struct{}, expected)}
}

func (h *recordingHandler) Handle(e event.Event) {
	h.mu.Lock()
	h.names = append(h.names, e.Name())
	h.mu.Unlock()
	h.seen <- struct{}{}
}

func (h *recordingHandler) recorded() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.names...)
}

func TestTelemetryWorker_Feeds_Every_Handler(t *testing.T) {
	req := require.New(t)
	events := make(chan event.Event, 4)
	first := newRecordingHandler(2)
	second := newRecordingHandler(2)

	worker := NewTelemetryWorker(slog.Default(), events, []event.Handler{first, second})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	// When two events flow through the channel
	events <- event.SessionOpened{UserID: "AAA111", At: time.Now().UTC()}
	events <- event.SessionClosed{UserID: "AAA111", At: time.Now().UTC()}

	for i := 0; i < 2; i++ {
		select {
		case <-first.seen:
		case <-time.After(500 * time.Millisecond):
			req.Fail("handler never saw the event")
		}
		select {
		case <-second.seen:
		case <-time.After(500 * time.Millisecond):
			req.Fail("handler never saw the event")
		}
	}

	// Then both handlers observed them in order
	req.Equal([]string{"session:opened", "session:closed"}, first.recorded())
	req.Equal([]string{"session:opened", "session:closed"}, second.recorded())

	// And the worker terminates with the context
	cancel()
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		req.Fail("worker should stop when the context is canceled")
	}
}
