package ruleext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileAndEvalMatches(t *testing.T) {
	c, err := NewCompiler([]string{"severity"}, DefaultBudget())
	assert.NoError(t, err)

	rule, err := c.Compile("high-severity", `severity == "HIGH"`, "ESCALATE")
	assert.NoError(t, err)

	assert.True(t, rule.Eval(map[string]any{"severity": "HIGH"}))
	assert.False(t, rule.Eval(map[string]any{"severity": "LOW"}))
}

func TestCompileRejectsUndeclaredVariable(t *testing.T) {
	c, err := NewCompiler([]string{"severity"}, DefaultBudget())
	assert.NoError(t, err)

	rule, err := c.Compile("needs-target", `target == "PRODUCTION"`, "ESCALATE")
	assert.Error(t, err, "target is not declared against this compiler's variables")
	assert.Nil(t, rule)
}

func TestEvalFailsClosedOnNonBooleanResult(t *testing.T) {
	c, err := NewCompiler([]string{"count"}, DefaultBudget())
	assert.NoError(t, err)

	rule, err := c.Compile("arithmetic", `count + 1`, "ESCALATE")
	assert.NoError(t, err)
	assert.False(t, rule.Eval(map[string]any{"count": 1}))
}

func TestFirstMatchReturnsFirstTrueRule(t *testing.T) {
	c, err := NewCompiler([]string{"severity"}, DefaultBudget())
	assert.NoError(t, err)

	critical, err := c.Compile("critical", `severity == "CRITICAL"`, "DENY")
	assert.NoError(t, err)
	high, err := c.Compile("high", `severity == "HIGH"`, "ESCALATE")
	assert.NoError(t, err)

	outcome, matched := FirstMatch([]*Rule{critical, high}, map[string]any{"severity": "HIGH"})
	assert.True(t, matched)
	assert.Equal(t, "ESCALATE", outcome)
}

func TestFirstMatchNoneMatch(t *testing.T) {
	c, err := NewCompiler([]string{"severity"}, DefaultBudget())
	assert.NoError(t, err)

	rule, err := c.Compile("critical", `severity == "CRITICAL"`, "DENY")
	assert.NoError(t, err)

	outcome, matched := FirstMatch([]*Rule{rule}, map[string]any{"severity": "LOW"})
	assert.False(t, matched)
	assert.Empty(t, outcome)
}
