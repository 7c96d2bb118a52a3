package intent

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/northwood-systems/govkernel/pkg/foundation"
)

// ExecutionState is the state recorded on a minted intent and covered by its
// hash; Bind always mints intents in state "BOUND".
type ExecutionState string

// ExecutionIntent mirrors spec's ExecutionIntent: one-to-one with a
// DecisionRecord, immutable once constructed.
type ExecutionIntent struct {
	IntentID          string
	DecisionID        string
	DecisionType      DecisionKind
	EvidenceChainHash string
	SessionID         string
	State             ExecutionState
	CreatedBy         string
	CreatedAt         string
	IntentHash        string
}

func intentHash(intentID, decisionID string, decisionType DecisionKind, chainHash, session string, state ExecutionState, createdAt, createdBy string) string {
	var buf []byte
	for _, f := range []string{intentID, decisionID, string(decisionType), chainHash, session, string(state), createdAt, createdBy} {
		buf = append(buf, []byte(f)...)
		buf = append(buf, foundation.FieldSeparator)
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// VerifyHash recomputes IntentHash from ei's current fields and reports
// whether it still matches the stored value. A mismatch means either the
// intent was tampered with after minting or never carried a valid hash to
// begin with — authorize_execution treats both identically.
func (ei ExecutionIntent) VerifyHash() bool {
	return ei.IntentHash == intentHash(ei.IntentID, ei.DecisionID, ei.DecisionType, ei.EvidenceChainHash, ei.SessionID, ei.State, ei.CreatedAt, ei.CreatedBy)
}

// Binder tracks which decision IDs have already produced an intent. It is
// an immutable value: Bind returns both the minted intent and a new Binder
// reflecting the binding, never mutating the receiver.
type Binder struct {
	bound map[string]bool
}

// NewBinder returns a Binder with no decisions bound yet.
func NewBinder() Binder {
	return Binder{bound: map[string]bool{}}
}

// Bind implements bind(decision_record): validates the record is
// well-formed, not already bound (DuplicateBindingError), has complete
// fields (MissingFieldError), and carries a valid decision kind
// (UnknownInputError). One decision produces at most one intent.
func (b Binder) Bind(d DecisionRecord, createdBy, createdAt string) (ExecutionIntent, Binder, error) {
	if d.DecisionID == "" || d.RequestID == "" || d.HumanID == "" || d.Timestamp == "" || d.EvidenceChainHash == "" {
		return ExecutionIntent{}, b, foundation.NewError(foundation.MissingFieldError, "decision record incomplete")
	}
	if !knownDecisionKinds[d.Decision] {
		return ExecutionIntent{}, b, foundation.NewError(foundation.UnknownInputError, "invalid decision kind")
	}
	if b.bound[d.DecisionID] {
		return ExecutionIntent{}, b, foundation.NewError(foundation.DuplicateBindingError, "decision already bound to an intent")
	}

	intentID := uuid.NewString()
	state := ExecutionState("BOUND")
	ei := ExecutionIntent{
		IntentID:          intentID,
		DecisionID:        d.DecisionID,
		DecisionType:      d.Decision,
		EvidenceChainHash: d.EvidenceChainHash,
		SessionID:         d.RequestID,
		State:             state,
		CreatedBy:         createdBy,
		CreatedAt:         createdAt,
	}
	ei.IntentHash = intentHash(ei.IntentID, ei.DecisionID, ei.DecisionType, ei.EvidenceChainHash, ei.SessionID, ei.State, ei.CreatedAt, ei.CreatedBy)

	next := make(map[string]bool, len(b.bound)+1)
	for k, v := range b.bound {
		next[k] = v
	}
	next[d.DecisionID] = true
	return ei, Binder{bound: next}, nil
}

// Revocation mirrors spec's IntentRevocation. Revocation is permanent.
type Revocation struct {
	RevocationID string
	IntentID     string
	Revoker      string
	Reason       string
	Timestamp    string
	Hash         string
}

func revocationHash(revocationID, intentID, revoker, reason, timestamp string) string {
	var buf []byte
	for _, f := range []string{revocationID, intentID, revoker, reason, timestamp} {
		buf = append(buf, []byte(f)...)
		buf = append(buf, foundation.FieldSeparator)
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// RevocationRegistry is an append-only, immutable set of revocations keyed
// by intent ID — once an intent has a revocation record, is_revoked is
// true forever; there is no un-revoke operation.
type RevocationRegistry struct {
	revoked map[string]Revocation
}

// NewRevocationRegistry returns a registry with no revocations.
func NewRevocationRegistry() RevocationRegistry {
	return RevocationRegistry{revoked: map[string]Revocation{}}
}

// Revoke requires a mandatory reason; it returns a new registry reflecting
// the revocation. Revoking an already-revoked intent is idempotent: the
// original revocation record is preserved.
func (r RevocationRegistry) Revoke(intentID, revoker, reason, timestamp string) (Revocation, RevocationRegistry, error) {
	if reason == "" {
		return Revocation{}, r, foundation.NewError(foundation.MissingFieldError, "revocation reason is mandatory")
	}
	if existing, ok := r.revoked[intentID]; ok {
		return existing, r, nil
	}
	revocationID := uuid.NewString()
	rev := Revocation{
		RevocationID: revocationID,
		IntentID:     intentID,
		Revoker:      revoker,
		Reason:       reason,
		Timestamp:    timestamp,
	}
	rev.Hash = revocationHash(rev.RevocationID, rev.IntentID, rev.Revoker, rev.Reason, rev.Timestamp)

	next := make(map[string]Revocation, len(r.revoked)+1)
	for k, v := range r.revoked {
		next[k] = v
	}
	next[intentID] = rev
	return rev, RevocationRegistry{revoked: next}, nil
}

// IsRevoked reports whether intentID has any revocation record.
func (r RevocationRegistry) IsRevoked(intentID string) bool {
	_, ok := r.revoked[intentID]
	return ok
}
