// Package domain contains core concepts of the pairing broker.
// This file defines pairwise connection records and their lifecycle.
package domain

import "time"

type ConnectionStatus string

const (
	StatusPending ConnectionStatus = "pending"
	StatusActive  ConnectionStatus = "active"
)

// ConnectionRecord is one pairwise relationship attempt between two
// identities, keyed by the ordered pair (initiator, target).
// Lifecycle: pending --accept--> active; pending --decline--> deleted;
// active --disconnect--> deleted. Any record involving a terminated
// identity is force-deleted.
type ConnectionRecord struct {
	InitiatorID string
	TargetID    string
	Status      ConnectionStatus
	CreatedAt   time.Time
}

// ConnectionID builds the deterministic id for an ordered pair.
// It is derived and human-traceable, not a secret.
func ConnectionID(initiatorID, targetID string) string {
	return initiatorID + "-" + targetID
}
