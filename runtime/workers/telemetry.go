package workers

import (
	"context"
	"log/slog"

	"peerlink/domain/event"
)

// TelemetryWorker drains the router's telemetry channel into the
// handler chain (stats counters, activity projection). Strictly
// observational: losing telemetry events never affects routing.
type TelemetryWorker struct {
	log      *slog.Logger
	events   <-chan event.Event
	handlers []event.Handler
}

func NewTelemetryWorker(log *slog.Logger, events <-chan event.Event, handlers []event.Handler) *TelemetryWorker {
	return &TelemetryWorker{log: log, events: events, handlers: handlers}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry worker")
			return nil
		case evt := <-w.events:
			w.handle(evt)
		}
	}
}

func (w *TelemetryWorker) handle(evt event.Event) {
	for _, h := range w.handlers {
		h.Handle(evt)
	}
}
