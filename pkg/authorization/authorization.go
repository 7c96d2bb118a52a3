// Package authorization implements L15: the final execution permission
// object and its revocation lifecycle. Modeled on the teacher's
// event-sourced key registry (apply events, derive a materialized view)
// but immutable throughout: every operation returns a new Registry value,
// never mutates the receiver, and holds no lock.
package authorization

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/northwood-systems/govkernel/pkg/foundation"
	"github.com/northwood-systems/govkernel/pkg/intent"
)

// Status is the closed set of authorization statuses.
type Status string

const (
	Authorized Status = "AUTHORIZED"
	Rejected   Status = "REJECTED"
	Revoked    Status = "REVOKED"
	Expired    Status = "EXPIRED"
)

// Authorization mirrors spec's ExecutionAuthorization.
type Authorization struct {
	AuthID    string
	IntentID  string
	Status    Status
	CreatedBy string
	Session   string
	CreatedAt string
	AuthHash  string
}

func authHash(authID, intentID string, status Status, createdBy, session, createdAt string) string {
	var buf []byte
	for _, f := range []string{authID, intentID, string(status), createdBy, session, createdAt} {
		buf = append(buf, []byte(f)...)
		buf = append(buf, foundation.FieldSeparator)
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// Registry is the immutable materialized view of authorizations: at most
// one AUTHORIZED authorization may exist per intent at a time.
type Registry struct {
	byIntent map[string]Authorization
}

// NewRegistry returns an empty authorization registry.
func NewRegistry() Registry {
	return Registry{byIntent: map[string]Authorization{}}
}

// AuthorizeExecution implements authorize_execution: status=AUTHORIZED iff
// intent is non-null, every identifier field is non-empty, the intent hash
// is internally consistent, the intent is not revoked, and no prior
// AUTHORIZED authorization already exists for it. Otherwise REJECTED.
func (reg Registry) AuthorizeExecution(ei *intent.ExecutionIntent, revocations intent.RevocationRegistry, authorizer, session, now string) (Authorization, Registry) {
	status := Rejected

	switch {
	case ei == nil:
	case ei.IntentID == "" || ei.DecisionID == "" || ei.EvidenceChainHash == "" || ei.SessionID == "" || ei.CreatedBy == "" || authorizer == "" || session == "":
	case !ei.VerifyHash():
	case revocations.IsRevoked(ei.IntentID):
	default:
		if existing, ok := reg.byIntent[ei.IntentID]; ok && existing.Status == Authorized {
			break
		}
		status = Authorized
	}

	var intentID string
	if ei != nil {
		intentID = ei.IntentID
	}

	auth := Authorization{
		AuthID:    uuid.NewString(),
		IntentID:  intentID,
		Status:    status,
		CreatedBy: authorizer,
		Session:   session,
		CreatedAt: now,
	}
	auth.AuthHash = authHash(auth.AuthID, auth.IntentID, auth.Status, auth.CreatedBy, auth.Session, auth.CreatedAt)

	if status != Authorized {
		return auth, reg
	}

	next := make(map[string]Authorization, len(reg.byIntent)+1)
	for k, v := range reg.byIntent {
		next[k] = v
	}
	next[intentID] = auth
	return auth, Registry{byIntent: next}
}

// RevokeAuthorization marks the current authorization for intentID as
// REVOKED and returns the updated registry. Revoking an intent with no
// prior authorization still records a REVOKED authorization, since
// revocation must be representable even against an unauthorized intent.
func (reg Registry) RevokeAuthorization(intentID, revoker, session, now string) (Authorization, Registry) {
	auth := Authorization{
		AuthID:    uuid.NewString(),
		IntentID:  intentID,
		Status:    Revoked,
		CreatedBy: revoker,
		Session:   session,
		CreatedAt: now,
	}
	auth.AuthHash = authHash(auth.AuthID, auth.IntentID, auth.Status, auth.CreatedBy, auth.Session, auth.CreatedAt)

	next := make(map[string]Authorization, len(reg.byIntent)+1)
	for k, v := range reg.byIntent {
		next[k] = v
	}
	next[intentID] = auth
	return auth, Registry{byIntent: next}
}

// Decision is the closed ALLOW/DENY outcome derived from an authorization
// status. REVOKED, EXPIRED, and REJECTED all map to DENY; only AUTHORIZED
// maps to ALLOW. The default, for any unrecognized status, is DENY.
type Decision string

const (
	Allow Decision = "ALLOW"
	Deny  Decision = "DENY"
)

// ToDecision maps a Status to its closed ALLOW/DENY outcome.
func ToDecision(s Status) Decision {
	if s == Authorized {
		return Allow
	}
	return Deny
}
