// Package pipeline composes L2–L5 (trust crossing, action validation,
// workflow transition, aggregation) into one entry point for callers; the
// other layers are not called from here and are invoked directly. It
// contains no decision logic of its own — every verdict it returns was
// computed entirely by the layer package responsible for it; this package
// only sequences calls in dependency order and threads outputs to inputs.
package pipeline

import (
	"github.com/northwood-systems/govkernel/pkg/action"
	"github.com/northwood-systems/govkernel/pkg/aggregator"
	"github.com/northwood-systems/govkernel/pkg/foundation"
	"github.com/northwood-systems/govkernel/pkg/trust"
	"github.com/northwood-systems/govkernel/pkg/workflow"
)

// Input bundles what a caller must supply to run the L2–L5 chain in one
// call: an action request plus the workflow context it's evaluated against.
type Input struct {
	Request  action.Request
	Workflow workflow.Context
	// Transition is the workflow transition the caller is attempting
	// concurrently with this action request, e.g. VALIDATE when moving a
	// fresh request out of INIT.
	Transition workflow.Transition
}

// Output bundles every intermediate verdict alongside the FinalDecision so
// a caller (or the mirror comparator) can inspect each layer's reasoning.
type Output struct {
	Crossing      trust.Crossing
	Validation    action.Verdict
	WorkflowNext  workflow.Result
	Decision      aggregator.DecisionContext
	FinalDecision aggregator.FinalDecision
}

// Run sequences L2 (trust crossing), L3 (action validation), L4 (workflow
// transition), and L5 (aggregation) for a single request. It is a pure
// function of its input: calling it twice with the same Input produces the
// same Output.
func Run(in Input) Output {
	actorZone := trust.Human
	if in.Request.ActorKind == foundation.ActorSystem {
		actorZone = trust.System
	}

	crossing := trust.CheckCrossing(actorZone, in.Request.Zone)
	validation := action.Validate(in.Request)
	wfResult := workflow.Apply(in.Workflow, in.Transition)

	dctx := aggregator.NewDecisionContext(validation, in.Workflow.State, wfResult, in.Request.ActorKind, in.Request.Zone)
	final := aggregator.Aggregate(dctx)

	return Output{
		Crossing:      crossing,
		Validation:    validation,
		WorkflowNext:  wfResult,
		Decision:      dctx,
		FinalDecision: final,
	}
}
