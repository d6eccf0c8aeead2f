// Package projection builds local read models from observed events.
// Does not emit events or interact with routing.
package projection

import (
	"fmt"
	"sync"
	"time"

	"peerlink/domain/event"
)

// Entry is one line of recent broker activity, pre-rendered for the
// debug endpoint. Identity ids are already ephemeral and opaque, so no
// further redaction is needed; message content is never recorded.
type Entry struct {
	Event  string    `json:"event"`
	Detail string    `json:"detail"`
	At     time.Time `json:"at"`
}

// Activity keeps a bounded, newest-first list of recent events.
type Activity struct {
	mu      sync.RWMutex
	max     int
	entries []Entry
}

func NewActivity(max int) *Activity {
	return &Activity{max: max}
}

func (a *Activity) Handle(e event.Event) {
	detail, at := describe(e)
	if detail == "" {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.entries = append([]Entry{{Event: e.Name(), Detail: detail, At: at}}, a.entries...)
	if len(a.entries) > a.max {
		a.entries = a.entries[:a.max]
	}
}

func (a *Activity) Recent() []Entry {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

func describe(e event.Event) (string, time.Time) {
	switch evt := e.(type) {
	case event.SessionOpened:
		return evt.UserID, evt.At
	case event.SessionClosed:
		return evt.UserID, evt.At
	case event.ConnectionRequestSent:
		return fmt.Sprintf("-> %s", evt.TargetUserID), evt.At
	case event.ConnectionEstablished:
		return evt.ConnectionID, evt.At
	case event.ConnectionDeclined:
		return evt.DeclinedBy, evt.At
	case event.ConnectionEnded:
		return evt.PeerID, evt.At
	case event.MessageReceived:
		return fmt.Sprintf("%s -> %s (%s)", evt.From, evt.To, evt.Kind), evt.SentAt
	case event.DeliveryDropped:
		return evt.Event, evt.At
	default:
		return "", time.Time{}
	}
}
