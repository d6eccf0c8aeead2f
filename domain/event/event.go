// Package event defines the events the broker emits toward transport
// sessions, plus session lifecycle markers used for telemetry only.
// Event names are the wire-level names the clients subscribe to.
package event

import (
	"time"

	"peerlink/domain"
)

// Event is anything deliverable to a session sink. Name is the
// wire-level event name, the payload is the struct itself.
type Event interface {
	Name() string
}

type IdentityAssigned struct {
	UserID string    `json:"userId"`
	At     time.Time `json:"timestamp"`
}

func (IdentityAssigned) Name() string { return "user:assigned" }

type ConnectionRequestSent struct {
	TargetUserID string    `json:"targetUserId"`
	ConnectionID string    `json:"connectionId"`
	At           time.Time `json:"timestamp"`
}

func (ConnectionRequestSent) Name() string { return "connection:request:sent" }

type ConnectionRequestReceived struct {
	From         string    `json:"from"`
	ConnectionID string    `json:"connectionId"`
	At           time.Time `json:"timestamp"`
}

func (ConnectionRequestReceived) Name() string { return "connection:request:received" }

type ConnectionEstablished struct {
	ConnectedTo  string    `json:"connectedTo"`
	ConnectionID string    `json:"connectionId"`
	At           time.Time `json:"timestamp"`
}

func (ConnectionEstablished) Name() string { return "connection:success" }

type ConnectionDeclined struct {
	DeclinedBy string    `json:"declinedBy"`
	At         time.Time `json:"timestamp"`
}

func (ConnectionDeclined) Name() string { return "connection:declined" }

// ConnectionError reports a rejected connection request back to the
// session that issued it. The reason is one of the sentinel errors.
type ConnectionError struct {
	Message string    `json:"message"`
	At      time.Time `json:"timestamp"`
}

func (ConnectionError) Name() string { return "connection:error" }

type MessageReceived struct {
	domain.Message
}

func (MessageReceived) Name() string { return "message:received" }

type MessageError struct {
	Message string    `json:"message"`
	At      time.Time `json:"timestamp"`
}

func (MessageError) Name() string { return "message:error" }

type TypingUser struct {
	UserID   string `json:"userId"`
	IsTyping bool   `json:"isTyping"`
}

func (TypingUser) Name() string { return "typing:user" }

// ConnectionEnded has one shape for all three termination paths; only
// the wording of Message distinguishes who ended the connection.
type ConnectionEnded struct {
	PeerID  string    `json:"peerId"`
	Message string    `json:"message"`
	At      time.Time `json:"timestamp"`
}

func (ConnectionEnded) Name() string { return "connection:ended" }
