package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/northwood-systems/govkernel/pkg/foundation"
)

func TestNewChainIsEmpty(t *testing.T) {
	c := New("session-1")
	assert.Equal(t, 0, c.Length())
	assert.Equal(t, foundation.ZeroHash, c.HeadHash())
	assert.True(t, Validate(c))
}

func TestCaptureReturnsNewChainLeavingReceiverUntouched(t *testing.T) {
	c0 := New("session-1")
	c1 := c0.Capture(PreDispatch, TypeObservation, "t0", []byte("payload"))

	assert.Equal(t, 0, c0.Length())
	assert.Equal(t, 1, c1.Length())
	assert.NotEqual(t, foundation.ZeroHash, c1.HeadHash())
}

func TestCaptureChainsPriorHash(t *testing.T) {
	c := New("session-1")
	c = c.Capture(PreDispatch, TypeObservation, "t0", []byte("a"))
	c = c.Capture(PostDispatch, TypeObservation, "t1", []byte("b"))

	recs := c.Records()
	assert.Len(t, recs, 2)
	assert.Equal(t, foundation.ZeroHash, recs[0].PriorHash)
	assert.Equal(t, recs[0].SelfHash, recs[1].PriorHash)
	assert.Equal(t, recs[1].SelfHash, c.HeadHash())
}

func TestValidateDetectsTamperedPayload(t *testing.T) {
	c := New("session-1")
	c = c.Capture(PreDispatch, TypeObservation, "t0", []byte("a"))
	c = c.Capture(PostDispatch, TypeObservation, "t1", []byte("b"))
	c = c.Capture(PreEvaluate, TypeObservation, "t2", []byte("c"))
	assert.True(t, Validate(c))

	c.Records()[1].Payload[0] = 'x'
	assert.False(t, Validate(c))
}

func TestKnownPredicates(t *testing.T) {
	assert.True(t, KnownObservationPoint(PreDispatch))
	assert.False(t, KnownObservationPoint(ObservationPoint("ROGUE")))

	assert.True(t, KnownEvidenceType(TypeDecision))
	assert.False(t, KnownEvidenceType(EvidenceType("ROGUE")))

	assert.True(t, KnownStopCondition(StopTimeout))
	assert.False(t, KnownStopCondition(StopCondition("ROGUE")))
}

func TestCheckStopAlwaysHalts(t *testing.T) {
	assert.Equal(t, StopVerdict, CheckStop(nil, StopTimeout))
	assert.Equal(t, StopVerdict, CheckStop(nil, StopCondition("ROGUE")))
}

func TestAttachObserverRequiresAllFields(t *testing.T) {
	ok := AttachObserver("loop-1", "exec-1", "hash-1", "t0")
	assert.False(t, ok.Halted)

	missing := AttachObserver("", "exec-1", "hash-1", "t0")
	assert.True(t, missing.Halted)
}
