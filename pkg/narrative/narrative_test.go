package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/northwood-systems/govkernel/pkg/aggregator"
	"github.com/northwood-systems/govkernel/pkg/knowledge"
)

func TestComposeRegisteredPair(t *testing.T) {
	seq := Compose(aggregator.Allow, knowledge.Unknown)
	assert.Len(t, seq, 3)
	assert.Equal(t, "Request validated.", seq[0].English)
}

func TestComposeFallsBackForUnregisteredPair(t *testing.T) {
	seq := Compose(aggregator.Deny, knowledge.SQLInjection)
	assert.Len(t, seq, 2)
	assert.Contains(t, seq[0].English, "DENY")
	assert.Contains(t, seq[1].English, "SQL")
}

func TestComposeIsDeterministic(t *testing.T) {
	a := Compose(aggregator.Escalate, knowledge.XSS)
	b := Compose(aggregator.Escalate, knowledge.XSS)
	assert.Equal(t, a, b)
}
