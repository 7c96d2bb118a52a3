// Package readiness implements L11: the pre-handoff human safety gate.
package readiness

import "github.com/northwood-systems/govkernel/pkg/evidence"

// Handoff is the closed handoff-readiness classification.
type Handoff string

const (
	ReadyForBrowser Handoff = "READY_FOR_BROWSER"
	ReviewRequired  Handoff = "REVIEW_REQUIRED"
	NotReady        Handoff = "NOT_READY"
)

// EvaluateHandoff implements spec §4.9's handoff readiness rule.
func EvaluateHandoff(confidence evidence.Confidence, state evidence.State, explicitlyReviewed bool) Handoff {
	if confidence == evidence.High && state == evidence.Consistent && explicitlyReviewed {
		return ReadyForBrowser
	}
	if confidence == evidence.High {
		return ReviewRequired
	}
	return NotReady
}

// HumanPresence is the closed human-presence requirement.
type HumanPresence string

const (
	Blocking HumanPresence = "BLOCKING"
	Required HumanPresence = "REQUIRED"
	Optional HumanPresence = "OPTIONAL"
)

// Severity and target mirror the target classes policy eligibility uses, to
// avoid requiring callers cross-import pkg/policy just for these two
// constants.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityOther    Severity = "OTHER"
)

type Target string

const (
	TargetProduction Target = "PRODUCTION"
	TargetOther      Target = "OTHER"
)

// EvaluateHumanPresence implements spec §4.9's human-presence rule: BLOCKING
// if NOT_READY; REQUIRED for CRITICAL severity or PRODUCTION target;
// OPTIONAL otherwise. Severity has only CRITICAL and OTHER, so every
// non-CRITICAL severity on a non-production target gets OPTIONAL; levels
// below CRITICAL are not told apart.
func EvaluateHumanPresence(h Handoff, sev Severity, target Target) HumanPresence {
	if h == NotReady {
		return Blocking
	}
	if sev == SeverityCritical || target == TargetProduction {
		return Required
	}
	return Optional
}
