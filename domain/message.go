// Package domain contains core concepts of the pairing broker.
// This file defines relayed messages. Messages are immutable once built;
// the broker routes them between linked peers and never stores them.
package domain

import "time"

type MessageKind string

const (
	KindText MessageKind = "text"
	KindFile MessageKind = "file"
)

// FilePayload carries an opaque encoded blob between two linked peers.
// The broker never inspects or transforms Data; it is pure cargo.
type FilePayload struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Message is one relayed chat event between two linked identities.
// Text is set for KindText, File for KindFile.
type Message struct {
	ID     string       `json:"id"`
	From   string       `json:"from"`
	To     string       `json:"to"`
	Kind   MessageKind  `json:"kind"`
	Text   string       `json:"message,omitempty"`
	File   *FilePayload `json:"file,omitempty"`
	SentAt time.Time    `json:"timestamp"`
}

// SendMessageCommand is the inbound intent to relay a message.
type SendMessageCommand struct {
	TargetID string
	Kind     MessageKind
	Text     string
	File     *FilePayload
}
