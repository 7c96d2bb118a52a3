package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDecisionRecord() DecisionRecord {
	return DecisionRecord{
		DecisionID:        "decision-1",
		RequestID:         "req-1",
		HumanID:           "human-1",
		Decision:          Continue,
		Timestamp:         "t0",
		EvidenceChainHash: "hash-1",
	}
}

func TestBindProducesIntentAndBindsOnce(t *testing.T) {
	b := NewBinder()
	ei, b2, err := b.Bind(validDecisionRecord(), "system", "t1")
	assert.NoError(t, err)
	assert.NotEmpty(t, ei.IntentID)
	assert.Equal(t, "decision-1", ei.DecisionID)
	assert.NotEmpty(t, ei.IntentHash)

	_, _, err = b2.Bind(validDecisionRecord(), "system", "t2")
	assert.Error(t, err)
}

func TestBindLeavesReceiverUnmodified(t *testing.T) {
	b := NewBinder()
	_, b2, err := b.Bind(validDecisionRecord(), "system", "t1")
	assert.NoError(t, err)

	_, _, err = b.Bind(validDecisionRecord(), "system", "t1")
	assert.NoError(t, err, "original binder must still accept the same decision id")
	_ = b2
}

func TestBindRejectsIncompleteRecord(t *testing.T) {
	b := NewBinder()
	incomplete := validDecisionRecord()
	incomplete.HumanID = ""
	_, _, err := b.Bind(incomplete, "system", "t1")
	assert.Error(t, err)
}

func TestBindRejectsUnknownDecisionKind(t *testing.T) {
	b := NewBinder()
	rec := validDecisionRecord()
	rec.Decision = DecisionKind("ROGUE")
	_, _, err := b.Bind(rec, "system", "t1")
	assert.Error(t, err)
}

func TestRevokeRequiresReason(t *testing.T) {
	r := NewRevocationRegistry()
	_, _, err := r.Revoke("intent-1", "human-1", "", "t0")
	assert.Error(t, err)
}

func TestRevokeIsPermanentAndIdempotent(t *testing.T) {
	r := NewRevocationRegistry()
	rev1, r2, err := r.Revoke("intent-1", "human-1", "compromised", "t0")
	assert.NoError(t, err)
	assert.True(t, r2.IsRevoked("intent-1"))

	rev2, r3, err := r2.Revoke("intent-1", "human-2", "different reason", "t1")
	assert.NoError(t, err)
	assert.Equal(t, rev1, rev2, "revoking an already-revoked intent must return the original record")
	assert.True(t, r3.IsRevoked("intent-1"))
}

func TestIsRevokedFalseForUnknownIntent(t *testing.T) {
	r := NewRevocationRegistry()
	assert.False(t, r.IsRevoked("intent-1"))
}
