// Package workflow implements the L4 finite state machine governing the
// execution lifecycle of a single request.
package workflow

import "github.com/northwood-systems/govkernel/pkg/foundation"

// State is the closed set of workflow states.
type State string

const (
	Init      State = "INIT"
	Validated State = "VALIDATED"
	Escalated State = "ESCALATED"
	Approved  State = "APPROVED"
	Completed State = "COMPLETED"
	Aborted   State = "ABORTED"
	Rejected  State = "REJECTED"
)

// Transition is the closed set of transitions.
type Transition string

const (
	Validate Transition = "VALIDATE"
	Approve  Transition = "APPROVE"
	Reject   Transition = "REJECT"
	Complete Transition = "COMPLETE"
	Abort    Transition = "ABORT"
	Escalate Transition = "ESCALATE"
)

var terminal = map[State]bool{
	Completed: true,
	Aborted:   true,
	Rejected:  true,
}

// IsTerminal reports whether a state accepts no further transitions.
func IsTerminal(s State) bool {
	return terminal[s]
}

type edge struct {
	from State
	tr   Transition
}

type rule struct {
	to            State
	requiredActor foundation.ActorKind
	anyActor      bool
}

var table = map[edge]rule{
	{Init, Validate}:      {to: Validated, anyActor: true},
	{Init, Abort}:         {to: Aborted, requiredActor: foundation.ActorHuman},
	{Validated, Escalate}: {to: Escalated, anyActor: true},
	{Validated, Complete}: {to: Completed, requiredActor: foundation.ActorHuman},
	{Validated, Abort}:    {to: Aborted, requiredActor: foundation.ActorHuman},
	{Escalated, Approve}:  {to: Approved, requiredActor: foundation.ActorHuman},
	{Escalated, Reject}:   {to: Rejected, requiredActor: foundation.ActorHuman},
	{Escalated, Abort}:    {to: Aborted, requiredActor: foundation.ActorHuman},
	{Approved, Complete}:  {to: Completed, requiredActor: foundation.ActorHuman},
	{Approved, Abort}:     {to: Aborted, requiredActor: foundation.ActorHuman},
}

// Context mirrors spec's WorkflowContext.
type Context struct {
	State State
	Actor foundation.ActorKind
}

// Result is the outcome of attempting a transition.
type Result struct {
	Allowed bool
	Next    State
	Reason  string
}

// Apply attempts transition tr from ctx.State on behalf of ctx.Actor.
// Terminal states reject every transition. Any (from, transition) pair not
// present in the table denies with reason "no such transition". A
// transition requiring HUMAN denies for any other actor.
func Apply(ctx Context, tr Transition) Result {
	if IsTerminal(ctx.State) {
		return Result{Allowed: false, Next: ctx.State, Reason: "terminal state accepts no transitions"}
	}

	r, ok := table[edge{ctx.State, tr}]
	if !ok {
		return Result{Allowed: false, Next: ctx.State, Reason: "no such transition"}
	}

	if !r.anyActor && ctx.Actor != r.requiredActor {
		return Result{Allowed: false, Next: ctx.State, Reason: "transition requires HUMAN actor"}
	}

	return Result{Allowed: true, Next: r.to, Reason: "transition applied"}
}
