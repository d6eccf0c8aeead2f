// Package domain contains core concepts of the pairing broker.
// This file defines the ephemeral Identity assigned to each session.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

// IdentityLength is the number of characters in a generated identity id.
const IdentityLength = 6

// IdentityAlphabet is the character set identity ids are drawn from.
const IdentityAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Identity is the ephemeral token representing one connected client.
// It lives exactly as long as its transport session: assigned when the
// session opens, destroyed when it closes. A reconnecting client always
// gets a brand-new Identity with no memory of prior links.
type Identity struct {
	ID        string
	SessionID string
	CreatedAt time.Time
}
