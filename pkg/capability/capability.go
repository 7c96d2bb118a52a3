// Package capability implements L12: browser/native action risk
// classification and the capability governance decision table.
package capability

import (
	"github.com/Masterminds/semver/v3"

	"github.com/northwood-systems/govkernel/pkg/workflow"
)

// Action is the closed set of capability-governed actions.
type Action string

const (
	Click         Action = "CLICK"
	Read          Action = "READ"
	Scroll        Action = "SCROLL"
	Extract       Action = "EXTRACT"
	Screenshot    Action = "SCREENSHOT"
	Navigate      Action = "NAVIGATE"
	FillInput     Action = "FILL_INPUT"
	SubmitForm    Action = "SUBMIT_FORM"
	FileUpload    Action = "FILE_UPLOAD"
	ScriptExecute Action = "SCRIPT_EXECUTE"
)

// Risk is the closed risk classification.
type Risk string

const (
	Low       Risk = "LOW"
	Medium    Risk = "MEDIUM"
	High      Risk = "HIGH"
	Forbidden Risk = "FORBIDDEN"
)

var riskTable = map[Action]Risk{
	Click:         Low,
	Read:          Low,
	Scroll:        Low,
	Extract:       Low,
	Screenshot:    Low,
	Navigate:      Medium,
	FillInput:     Medium,
	SubmitForm:    High,
	FileUpload:    Forbidden,
	ScriptExecute: Forbidden,
}

// ClassifyRisk returns the closed risk class of an action. An action
// outside the closed Action constants reports ok=false.
func ClassifyRisk(a Action) (Risk, bool) {
	r, ok := riskTable[a]
	return r, ok
}

// Decision is the closed capability governance decision.
type Decision string

const (
	Allowed       Decision = "ALLOWED"
	Denied        Decision = "DENIED"
	HumanRequired Decision = "HUMAN_REQUIRED"
)

// Attempting mirrors spec's "attempting" flag: whether the action is
// currently being attempted by the caller (as opposed to merely described).
type Attempting bool

// Evaluate implements spec §4.9's capability governance table:
// FORBIDDEN ⇒ DENIED; any terminal workflow state ⇒ DENIED; ESCALATED
// state ⇒ HUMAN_REQUIRED; HIGH risk while attempting ⇒ HUMAN_REQUIRED;
// MEDIUM/LOW risk while attempting ⇒ ALLOWED; unknown ⇒ DENIED.
func Evaluate(a Action, attempting Attempting, state workflow.State) Decision {
	risk, known := ClassifyRisk(a)
	if !known {
		return Denied
	}
	if risk == Forbidden {
		return Denied
	}
	if workflow.IsTerminal(state) {
		return Denied
	}
	if state == workflow.Escalated {
		return HumanRequired
	}
	if risk == High && bool(attempting) {
		return HumanRequired
	}
	if (risk == Medium || risk == Low) && bool(attempting) {
		return Allowed
	}
	return Denied
}

// CatalogVersion identifies the edition of the closed action→risk table,
// the same role Masterminds/semver plays for the teacher's installed
// capability packs.
var CatalogVersion = semver.MustParse("1.0.0")
