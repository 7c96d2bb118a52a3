package evidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBySourceCount(t *testing.T) {
	state, err := Classify(Bundle{})
	assert.NoError(t, err)
	assert.Equal(t, Unverified, state)

	state, err = Classify(Bundle{Sources: []Source{{ID: "s1", Payload: map[string]any{"x": 1}}}})
	assert.NoError(t, err)
	assert.Equal(t, Raw, state)
}

func TestClassifyConsistentIgnoresKeyOrder(t *testing.T) {
	state, err := Classify(Bundle{Sources: []Source{
		{ID: "s1", Payload: map[string]any{"a": 1, "b": 2}},
		{ID: "s2", Payload: map[string]any{"b": 2, "a": 1}},
	}})
	assert.NoError(t, err)
	assert.Equal(t, Consistent, state)
}

func TestClassifyInconsistentOnDivergence(t *testing.T) {
	state, err := Classify(Bundle{Sources: []Source{
		{ID: "s1", Payload: map[string]any{"a": 1}},
		{ID: "s2", Payload: map[string]any{"a": 2}},
	}})
	assert.NoError(t, err)
	assert.Equal(t, Inconsistent, state)
}

func TestReplayReady(t *testing.T) {
	assert.True(t, ReplayReady(Bundle{Deterministic: true, ExternalDependencies: false}, []string{"step1"}))
	assert.False(t, ReplayReady(Bundle{Deterministic: true, ExternalDependencies: false}, nil))
	assert.False(t, ReplayReady(Bundle{Deterministic: false, ExternalDependencies: false}, []string{"step1"}))
	assert.False(t, ReplayReady(Bundle{Deterministic: true, ExternalDependencies: true}, []string{"step1"}))
}

func TestAssignConfidence(t *testing.T) {
	cases := []struct {
		name       string
		state      State
		replayable bool
		want       Confidence
	}{
		{"unverified is always low", Unverified, true, Low},
		{"inconsistent is always low", Inconsistent, true, Low},
		{"raw non-replayable is low", Raw, false, Low},
		{"raw replayable is medium", Raw, true, Medium},
		{"consistent non-replayable is medium", Consistent, false, Medium},
		{"consistent replayable is high", Consistent, true, High},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AssignConfidence(tc.state, tc.replayable))
		})
	}
}

func TestRequiresHumanReview(t *testing.T) {
	assert.True(t, RequiresHumanReview(High))
	assert.False(t, RequiresHumanReview(Medium))
	assert.False(t, RequiresHumanReview(Low))
}
