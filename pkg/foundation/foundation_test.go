package foundation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveActor(t *testing.T) {
	cases := []struct {
		name string
		kind ActorKind
		ok   bool
	}{
		{"human", ActorHuman, true},
		{"system", ActorSystem, true},
		{"unknown", ActorKind("ROBOT"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actor, ok := ResolveActor(tc.kind)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.kind, actor.Kind)
			}
		})
	}
}

func TestHumanIsAuthoritativeSystemIsNot(t *testing.T) {
	assert.True(t, Human.Authoritative)
	assert.False(t, System.Authoritative)
	assert.Greater(t, Human.TrustLevel, System.TrustLevel)
}

func TestKernelErrorIs(t *testing.T) {
	err := NewError(MissingFieldError, "reason is mandatory")
	assert.ErrorIs(t, err, &KernelError{Kind: MissingFieldError})
	assert.NotErrorIs(t, err, &KernelError{Kind: DuplicateBindingError})
	assert.Contains(t, err.Error(), "reason is mandatory")
}

func TestZeroHashLength(t *testing.T) {
	assert.Len(t, ZeroHash, 64)
}
