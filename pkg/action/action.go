// Package action implements L3 action validation: the closed ALLOW/DENY/
// ESCALATE table over actor, action kind, and trust zone, plus an optional
// CEL-compiled extension arm for caller-supplied supplementary rules. The
// closed table below is evaluated first and always wins; the extension arm
// only adjudicates cases the table leaves at its default.
package action

import (
	"github.com/northwood-systems/govkernel/pkg/foundation"
	"github.com/northwood-systems/govkernel/pkg/ruleext"
	"github.com/northwood-systems/govkernel/pkg/trust"
)

// Kind is the closed set of action kinds a request may carry.
type Kind string

const (
	Read      Kind = "READ"
	Write     Kind = "WRITE"
	Delete    Kind = "DELETE"
	Execute   Kind = "EXECUTE"
	Configure Kind = "CONFIGURE"
)

var knownKinds = map[Kind]bool{Read: true, Write: true, Delete: true, Execute: true, Configure: true}

// Result is the closed validation verdict.
type Result string

const (
	Allow    Result = "ALLOW"
	Deny     Result = "DENY"
	Escalate Result = "ESCALATE"
)

// Request mirrors spec's ActionRequest: all fields required, no defaults.
// Extensions is optional: caller-supplied CEL rules (pkg/ruleext) that may
// only adjudicate requests the closed table below leaves at its own
// default arm — they never run ahead of, or override, rules 1-5.
type Request struct {
	ActorKind  foundation.ActorKind
	ActorZone  trust.Zone
	Action     Kind
	Zone       trust.Zone
	Target     string
	Extensions []*ruleext.Rule
}

// resultOutcomes bounds what an extension rule may assert: its Outcome
// must name one of this layer's own closed Result values, never an
// invented one.
var resultOutcomes = map[string]Result{
	string(Allow):    Allow,
	string(Deny):     Deny,
	string(Escalate): Escalate,
}

// Verdict is the outcome of validate_action.
type Verdict struct {
	Result        Result
	Reason        string
	RequiresHuman bool
}

func writeDeleteExecute(k Kind) bool {
	return k == Write || k == Delete || k == Execute
}

func writeDeleteExecuteConfigure(k Kind) bool {
	return writeDeleteExecute(k) || k == Configure
}

// Validate implements validate_action's priority-ordered rules. Unknown
// inputs (unrecognized actor kind, action kind, or zone) deny.
func Validate(req Request) Verdict {
	if _, ok := foundation.ResolveActor(req.ActorKind); !ok {
		return Verdict{Result: Deny, Reason: "unknown actor kind", RequiresHuman: false}
	}
	if !knownKinds[req.Action] {
		return Verdict{Result: Deny, Reason: "unknown action kind", RequiresHuman: false}
	}
	if _, ok := trust.Level(req.Zone); !ok {
		return Verdict{Result: Deny, Reason: "unknown trust zone", RequiresHuman: false}
	}

	// Rule 1: HUMAN actor or HUMAN zone ⇒ ALLOW.
	if req.ActorKind == foundation.ActorHuman || req.Zone == trust.Human {
		return Verdict{Result: Allow, Reason: "HUMAN actor or zone overrides", RequiresHuman: false}
	}

	// Rule 2: EXTERNAL zone with WRITE/DELETE/EXECUTE ⇒ DENY.
	if req.Zone == trust.External && writeDeleteExecute(req.Action) {
		return Verdict{Result: Deny, Reason: "mutating action in EXTERNAL zone", RequiresHuman: false}
	}

	// Rule 3: GOVERNANCE zone with WRITE ⇒ DENY.
	if req.Zone == trust.Governance && req.Action == Write {
		return Verdict{Result: Deny, Reason: "WRITE in GOVERNANCE zone", RequiresHuman: false}
	}

	// Rule 4: SYSTEM actor with WRITE/DELETE/EXECUTE/CONFIGURE ⇒ ESCALATE.
	if req.ActorKind == foundation.ActorSystem && writeDeleteExecuteConfigure(req.Action) {
		return Verdict{Result: Escalate, Reason: "SYSTEM actor requesting mutating action", RequiresHuman: true}
	}

	// Rule 5: GOVERNANCE with CONFIGURE ⇒ ESCALATE.
	if req.Zone == trust.Governance && req.Action == Configure {
		return Verdict{Result: Escalate, Reason: "CONFIGURE in GOVERNANCE zone", RequiresHuman: true}
	}

	// Rule 6: otherwise ⇒ ALLOW, unless a caller-supplied extension rule
	// asserts a different closed outcome for this exact request.
	if outcome, ok := evaluateExtensions(req); ok {
		return Verdict{Result: outcome, Reason: "extension rule matched"}
	}
	return Verdict{Result: Allow, Reason: "no restricting rule matched", RequiresHuman: false}
}

func evaluateExtensions(req Request) (Result, bool) {
	if len(req.Extensions) == 0 {
		return "", false
	}
	outcome, matched := ruleext.FirstMatch(req.Extensions, map[string]any{
		"actor_kind": string(req.ActorKind),
		"actor_zone": string(req.ActorZone),
		"action":     string(req.Action),
		"zone":       string(req.Zone),
		"target":     req.Target,
	})
	if !matched {
		return "", false
	}
	result, known := resultOutcomes[outcome]
	if !known {
		return "", false
	}
	return result, true
}
