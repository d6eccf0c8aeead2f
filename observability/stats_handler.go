package observability

import "peerlink/domain/event"

// StatsHandler maps telemetry events to counters. Runs on the
// telemetry worker goroutine.
type StatsHandler struct {
	stats *Stats
}

func NewStatsHandler(stats *Stats) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Handle(e event.Event) {
	switch e.(type) {
	case event.SessionOpened:
		h.stats.SessionOpened()
	case event.SessionClosed:
		h.stats.SessionClosed()
	case event.MessageReceived:
		h.stats.MessageRelayed()
	case event.ConnectionError, event.MessageError:
		h.stats.RequestRejected()
	case event.DeliveryDropped:
		h.stats.EventDropped()
	}
}
