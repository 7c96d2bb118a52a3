// Package ruleext provides the bounded, deterministic CEL extension arm
// shared by L3 (action validation) and L8 (policy/scope). It never runs
// ahead of a layer's closed decision table: callers invoke it only after
// the table has already reached its default arm, and its verdict is always
// one of the calling layer's own closed outcomes — it cannot invent a new
// result kind.
//
// The CEL environment here is cel.StdLib() plus the declared variables. It
// registers no function that reads the wall clock or performs I/O, in the
// spirit of the deterministic tier the teacher calls CEL-DP; the standard
// library's double arithmetic and its comprehension macros over maps are
// not removed.
package ruleext

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Budget bounds a compiled program's runtime cost. Expressions exceeding it
// fail closed.
type Budget struct {
	MaxEvaluationCost uint64
}

// DefaultBudget mirrors the deterministic-tier defaults used elsewhere in
// the pack: bounded cost, no wall clock, no I/O functions registered.
func DefaultBudget() Budget {
	return Budget{MaxEvaluationCost: 100000}
}

// Rule is a single compiled supplementary rule: a boolean CEL expression
// over the declared variable names, naming which closed outcome it asserts
// when true.
type Rule struct {
	name    string
	program cel.Program
	Outcome string
}

// Compiler compiles Rule expressions against a fixed set of declared
// variable names. One Compiler is constructed once per caller (L3 and L8
// each own one) and reused purely thereafter — compilation never happens
// mid-evaluation.
type Compiler struct {
	env    *cel.Env
	budget Budget
}

// NewCompiler declares the given variable names as dyn-typed and returns a
// Compiler ready to compile Rule expressions referencing them.
func NewCompiler(variables []string, budget Budget) (*Compiler, error) {
	opts := []cel.EnvOption{cel.StdLib()}
	for _, v := range variables {
		opts = append(opts, cel.Variable(v, cel.DynType))
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("ruleext: failed to construct CEL environment: %w", err)
	}
	return &Compiler{env: env, budget: budget}, nil
}

// Compile parses and type-checks expr, binding it to outcome — the closed
// result the rule asserts when it evaluates true.
func (c *Compiler) Compile(name, expr, outcome string) (*Rule, error) {
	ast, issues := c.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("ruleext: compile %q: %w", name, issues.Err())
	}
	prog, err := c.env.Program(ast, cel.CostLimit(c.budget.MaxEvaluationCost))
	if err != nil {
		return nil, fmt.Errorf("ruleext: program %q: %w", name, err)
	}
	return &Rule{name: name, program: prog, Outcome: outcome}, nil
}

// Eval evaluates the rule purely against the given bindings. A non-boolean
// result, or an evaluation error (cost-limit exceeded, unbound variable),
// is treated as "did not match" — the extension arm fails closed, never
// open.
func (r *Rule) Eval(bindings map[string]any) (matched bool) {
	out, _, err := r.program.Eval(bindings)
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false
	}
	return b
}

// FirstMatch evaluates rules in order and returns the Outcome of the first
// one whose expression evaluates true, or ("", false) if none match.
func FirstMatch(rules []*Rule, bindings map[string]any) (string, bool) {
	for _, r := range rules {
		if r.Eval(bindings) {
			return r.Outcome, true
		}
	}
	return "", false
}
