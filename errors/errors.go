package errors

import "fmt"

var (
	ErrTargetNotFound     = fmt.Errorf("target user not found")
	ErrSelfConnection     = fmt.Errorf("cannot connect to yourself")
	ErrAlreadyConnected   = fmt.Errorf("already connected to this user")
	ErrNotLinked          = fmt.Errorf("not connected to this user")
	ErrSessionBufferFull  = fmt.Errorf("session buffer full")
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrUnknownInboundType = fmt.Errorf("unknown inbound event")
)
