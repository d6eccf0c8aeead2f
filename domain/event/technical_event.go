package event

import "time"

// Session lifecycle markers. Never delivered to a client sink; they
// only flow through the telemetry channel for observability.

type SessionOpened struct {
	UserID string
	At     time.Time
}

func (SessionOpened) Name() string { return "session:opened" }

type SessionClosed struct {
	UserID string
	At     time.Time
}

func (SessionClosed) Name() string { return "session:closed" }

// DeliveryDropped records an outbound event lost because the receiving
// session's buffer was full or the session vanished mid-send.
type DeliveryDropped struct {
	Event string
	At    time.Time
}

func (DeliveryDropped) Name() string { return "delivery:dropped" }
