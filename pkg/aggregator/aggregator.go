// Package aggregator implements L5: composing L2–L4 verdicts into a single
// FinalDecision via a strict, exhaustive priority order. The first matching
// rule wins; HUMAN's ALLOW cannot be overridden by SYSTEM outputs, but a
// terminal workflow state (workflow truth) overrides even HUMAN.
package aggregator

import (
	"github.com/google/uuid"

	"github.com/northwood-systems/govkernel/pkg/action"
	"github.com/northwood-systems/govkernel/pkg/foundation"
	"github.com/northwood-systems/govkernel/pkg/trust"
	"github.com/northwood-systems/govkernel/pkg/workflow"
)

// FinalDecision is the closed aggregate verdict.
type FinalDecision string

const (
	Allow    FinalDecision = "ALLOW"
	Deny     FinalDecision = "DENY"
	Escalate FinalDecision = "ESCALATE"
)

// DecisionContext mirrors spec's DecisionContext: validation result,
// workflow state & transition, actor, trust zone. Aggregate does not check
// that a context is complete: a zero-valued field is matched against the
// rules like any other value (an empty Validation.Result with an allowed
// transition and a non-EXTERNAL zone reaches rule 7, ALLOW).
type DecisionContext struct {
	ID             string
	Validation     action.Verdict
	WorkflowState  workflow.State
	WorkflowResult workflow.Result
	Actor          foundation.ActorKind
	Zone           trust.Zone
}

// NewDecisionContext stamps a DecisionContext with a fresh opaque ID. The
// core never reuses IDs for distinct contexts.
func NewDecisionContext(validation action.Verdict, state workflow.State, wr workflow.Result, actor foundation.ActorKind, zone trust.Zone) DecisionContext {
	return DecisionContext{
		ID:             uuid.NewString(),
		Validation:     validation,
		WorkflowState:  state,
		WorkflowResult: wr,
		Actor:          actor,
		Zone:           zone,
	}
}

// Aggregate implements aggregate(dctx) in the exact priority order of
// spec §4.5. The table is exhaustive: the final rule always fires if
// nothing above it does.
func Aggregate(dctx DecisionContext) FinalDecision {
	// 1. Terminal workflow state ⇒ DENY.
	if workflow.IsTerminal(dctx.WorkflowState) {
		return Deny
	}

	// 2. Workflow transition denied ⇒ DENY.
	if !dctx.WorkflowResult.Allowed {
		return Deny
	}

	// 3. Actor=HUMAN ∧ validation=ALLOW ⇒ ALLOW.
	if dctx.Actor == foundation.ActorHuman && dctx.Validation.Result == action.Allow {
		return Allow
	}

	// 4. validation=ESCALATE ⇒ ESCALATE.
	if dctx.Validation.Result == action.Escalate {
		return Escalate
	}

	// 5. validation=DENY ⇒ DENY.
	if dctx.Validation.Result == action.Deny {
		return Deny
	}

	// 6. trust zone = EXTERNAL ⇒ ESCALATE.
	if dctx.Zone == trust.External {
		return Escalate
	}

	// 7. Otherwise ⇒ ALLOW.
	return Allow
}
