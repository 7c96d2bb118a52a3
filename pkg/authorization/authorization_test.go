package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/northwood-systems/govkernel/pkg/intent"
)

// validIntent mints a real ExecutionIntent through intent.Binder.Bind so
// its IntentHash is one AuthorizeExecution's hash check actually accepts,
// rather than hand-assembling a struct literal with a forged/empty hash.
// Bind mints its own opaque IntentID; callers that need to refer back to
// it (e.g. to revoke it) must read ei.IntentID off the returned value.
func validIntent() *intent.ExecutionIntent {
	record := intent.DecisionRecord{
		DecisionID:        "decision-1",
		RequestID:         "session-1",
		HumanID:           "human-1",
		Decision:          intent.Continue,
		Timestamp:         "t0",
		EvidenceChainHash: "hash-1",
	}
	ei, _, err := intent.NewBinder().Bind(record, "human-1", "t0")
	if err != nil {
		panic(err)
	}
	return &ei
}

func TestAuthorizeExecutionGrantsOnCleanIntent(t *testing.T) {
	reg := NewRegistry()
	revocations := intent.NewRevocationRegistry()
	ei := validIntent()

	auth, reg2 := reg.AuthorizeExecution(ei, revocations, "authorizer-1", "session-1", "t0")
	assert.Equal(t, Authorized, auth.Status)
	assert.NotEmpty(t, auth.AuthHash)
	assert.Equal(t, Allow, ToDecision(auth.Status))

	auth2, _ := reg2.AuthorizeExecution(ei, revocations, "authorizer-1", "session-1", "t1")
	assert.Equal(t, Rejected, auth2.Status, "a second authorization for the same intent must be rejected")
}

func TestAuthorizeExecutionRejectsNilIntent(t *testing.T) {
	reg := NewRegistry()
	auth, _ := reg.AuthorizeExecution(nil, intent.NewRevocationRegistry(), "authorizer-1", "session-1", "t0")
	assert.Equal(t, Rejected, auth.Status)
	assert.Equal(t, Deny, ToDecision(auth.Status))
}

func TestAuthorizeExecutionRejectsMissingFields(t *testing.T) {
	reg := NewRegistry()
	ei := validIntent()
	ei.CreatedBy = ""
	auth, _ := reg.AuthorizeExecution(ei, intent.NewRevocationRegistry(), "authorizer-1", "session-1", "t0")
	assert.Equal(t, Rejected, auth.Status)
}

func TestAuthorizeExecutionRejectsRevokedIntent(t *testing.T) {
	reg := NewRegistry()
	ei := validIntent()
	revocations := intent.NewRevocationRegistry()
	_, revocations, err := revocations.Revoke(ei.IntentID, "human-1", "compromised", "t0")
	assert.NoError(t, err)

	auth, _ := reg.AuthorizeExecution(ei, revocations, "authorizer-1", "session-1", "t1")
	assert.Equal(t, Rejected, auth.Status)
}

func TestAuthorizeExecutionRejectsTamperedIntentHash(t *testing.T) {
	reg := NewRegistry()
	ei := validIntent()
	ei.EvidenceChainHash = "tampered-after-minting"

	auth, _ := reg.AuthorizeExecution(ei, intent.NewRevocationRegistry(), "authorizer-1", "session-1", "t0")
	assert.Equal(t, Rejected, auth.Status, "a field changed after minting must invalidate IntentHash")
}

func TestAuthorizeExecutionRejectsDuplicateAuthorization(t *testing.T) {
	reg := NewRegistry()
	revocations := intent.NewRevocationRegistry()
	ei := validIntent()

	_, reg2 := reg.AuthorizeExecution(ei, revocations, "authorizer-1", "session-1", "t0")
	auth2, _ := reg2.AuthorizeExecution(ei, revocations, "authorizer-1", "session-1", "t1")
	assert.Equal(t, Rejected, auth2.Status)
}

func TestRevokeAuthorizationAlwaysRecordsRevoked(t *testing.T) {
	reg := NewRegistry()
	auth, reg2 := reg.RevokeAuthorization("intent-1", "human-1", "session-1", "t0")
	assert.Equal(t, Revoked, auth.Status)
	assert.Equal(t, Deny, ToDecision(auth.Status))
	_ = reg2
}

func TestToDecision(t *testing.T) {
	assert.Equal(t, Allow, ToDecision(Authorized))
	assert.Equal(t, Deny, ToDecision(Rejected))
	assert.Equal(t, Deny, ToDecision(Revoked))
	assert.Equal(t, Deny, ToDecision(Expired))
	assert.Equal(t, Deny, ToDecision(Status("ROGUE")))
}
