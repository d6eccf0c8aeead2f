package runtime

import (
	"sync"
	"time"

	"peerlink/contract"
	"peerlink/domain"
	"peerlink/errors"
)

type Set map[string]struct{}

// Ledger owns every pairwise connection record plus the linked sets
// derived from them. The linked sets are the authoritative state for
// message authorization; records and links are always mutated under one
// mutex so the symmetry invariant (A linked to B iff B linked to A) can
// never be observed broken, even under concurrent sessions.
type Ledger struct {
	mu       sync.Mutex
	resolver contract.IdentityResolver
	records  map[string]*domain.ConnectionRecord // keyed by ConnectionID
	linked   map[string]Set                      // identity id -> peer ids
}

func NewLedger(resolver contract.IdentityResolver) *Ledger {
	return &Ledger{
		resolver: resolver,
		records:  make(map[string]*domain.ConnectionRecord),
		linked:   make(map[string]Set),
	}
}

// RequestConnection creates a pending record for the ordered pair.
// Preconditions are checked in order, first failure wins:
// target must exist, initiator != target, and no pending-or-active
// relationship may already exist in either direction. A pending request
// counts as an existing relationship; B requesting A while A->B is
// pending is rejected the same way.
func (l *Ledger) RequestConnection(initiatorID, targetID string) (string, error) {
	if _, ok := l.resolver.LookupByID(targetID); !ok {
		return "", errors.ErrTargetNotFound
	}
	if initiatorID == targetID {
		return "", errors.ErrSelfConnection
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.relationshipExists(initiatorID, targetID) {
		return "", errors.ErrAlreadyConnected
	}

	connectionID := domain.ConnectionID(initiatorID, targetID)
	l.records[connectionID] = &domain.ConnectionRecord{
		InitiatorID: initiatorID,
		TargetID:    targetID,
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	return connectionID, nil
}

// relationshipExists reports whether the pair is linked or has a
// pending record in either direction. Caller must hold the lock.
func (l *Ledger) relationshipExists(a, b string) bool {
	if _, ok := l.linked[a][b]; ok {
		return true
	}
	if _, ok := l.records[domain.ConnectionID(a, b)]; ok {
		return true
	}
	_, ok := l.records[domain.ConnectionID(b, a)]
	return ok
}

// AcceptConnection transitions a pending record to active and links
// both identities in one atomic step. Returns false when no pending
// record matches: a stale or duplicate accept is a no-op, not an error.
func (l *Ledger) AcceptConnection(initiatorID, targetID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.records[domain.ConnectionID(initiatorID, targetID)]
	if !ok || record.Status != domain.StatusPending {
		return false
	}

	record.Status = domain.StatusActive
	l.link(initiatorID, targetID)
	l.link(targetID, initiatorID)
	return true
}

// DeclineConnection deletes the pending record unconditionally.
// Declining a record that no longer exists is a no-op.
func (l *Ledger) DeclineConnection(initiatorID, targetID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.records, domain.ConnectionID(initiatorID, targetID))
}

// DisconnectPair removes the link in both directions and deletes any
// record for the pair, whichever side initiated it. Idempotent.
func (l *Ledger) DisconnectPair(a, b string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.unlink(a, b)
	l.unlink(b, a)
	delete(l.records, domain.ConnectionID(a, b))
	delete(l.records, domain.ConnectionID(b, a))
}

// DisconnectAll unwinds every relationship of id: reverse links are
// removed, the identity's own linked set is cleared, and any record
// naming id in either role is purged. The affected peer ids are
// returned so the caller can notify them. Must run before the registry
// releases the identity.
func (l *Ledger) DisconnectAll(id string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var peers []string
	for peerID := range l.linked[id] {
		l.unlink(peerID, id)
		peers = append(peers, peerID)
	}
	delete(l.linked, id)

	for connectionID, record := range l.records {
		if record.InitiatorID == id || record.TargetID == id {
			delete(l.records, connectionID)
		}
	}
	return peers
}

// IsLinked reports whether a and b hold an active connection.
// Symmetric by construction; either argument order works.
func (l *Ledger) IsLinked(a, b string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.linked[a][b]
	return ok
}

func (l *Ledger) LinkedPeers(id string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	peers := make([]string, 0, len(l.linked[id]))
	for peerID := range l.linked[id] {
		peers = append(peers, peerID)
	}
	return peers
}

func (l *Ledger) link(owner, peer string) {
	if _, ok := l.linked[owner]; !ok {
		l.linked[owner] = make(Set)
	}
	l.linked[owner][peer] = struct{}{}
}

func (l *Ledger) unlink(owner, peer string) {
	if members, ok := l.linked[owner]; ok {
		delete(members, peer)
		// No empty sets left behind to avoid leaking entries over time
		if len(members) == 0 {
			delete(l.linked, owner)
		}
	}
}
