package ws

import "encoding/json"

// Inbound event names, unchanged from the original client protocol.
const (
	evConnectionRequest    = "connection:request"
	evConnectionAccept     = "connection:accept"
	evConnectionDecline    = "connection:decline"
	evMessageSend          = "message:send"
	evFileSend             = "file:send"
	evTypingStart          = "typing:start"
	evTypingStop           = "typing:stop"
	evConnectionDisconnect = "connection:disconnect"
)

// Envelope is the outbound frame: the event name plus its payload.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// InboundEnvelope defers payload decoding until the event name is known.
type InboundEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type connectionRequestPayload struct {
	TargetUserID string `json:"targetUserId" validate:"required,alphanum"`
}

// connectionReplyPayload covers accept and decline; both reference the
// identity that initiated the pending request.
type connectionReplyPayload struct {
	FromUserID string `json:"fromUserId" validate:"required,alphanum"`
}

type messagePayload struct {
	TargetUserID string `json:"targetUserId" validate:"required,alphanum"`
	Type         string `json:"type" validate:"omitempty,oneof=text file"`
	Message      string `json:"message"`
}

type fileSendPayload struct {
	TargetUserID string      `json:"targetUserId" validate:"required,alphanum"`
	File         filePayload `json:"file" validate:"required"`
}

// filePayload mirrors the original wire shape; "type" carries the mime
// type and Data is an opaque encoded blob the broker never decodes.
type filePayload struct {
	Name     string `json:"name" validate:"required"`
	Size     int64  `json:"size" validate:"gte=0"`
	MimeType string `json:"type"`
	Data     string `json:"data"`
}

type typingPayload struct {
	TargetUserID string `json:"targetUserId" validate:"required,alphanum"`
}

type disconnectPayload struct {
	TargetUserID string `json:"targetUserId" validate:"required,alphanum"`
}
