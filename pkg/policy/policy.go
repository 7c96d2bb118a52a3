// Package policy implements L8: in-scope / eligibility decisions, reduced
// to a closed four-member outcome set.
package policy

import "github.com/northwood-systems/govkernel/pkg/ruleext"

// Eligibility is the closed decision set.
type Eligibility string

const (
	Eligible    Eligibility = "ELIGIBLE"
	NotEligible Eligibility = "NOT_ELIGIBLE"
	Duplicate   Eligibility = "DUPLICATE"
	NeedsReview Eligibility = "NEEDS_REVIEW"
)

// Severity is a closed severity classification used by eligibility rules.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// TargetClass is a closed classification of the eligibility target.
type TargetClass string

const (
	TargetProduction  TargetClass = "PRODUCTION"
	TargetStaging     TargetClass = "STAGING"
	TargetDevelopment TargetClass = "DEVELOPMENT"
)

// Input mirrors the four-field eligibility computation in spec §4.7.
// Extensions is optional: caller-supplied CEL rules (pkg/ruleext) that may
// only adjudicate inputs the table below leaves at its own default arm.
type Input struct {
	InScope        bool
	KnownDuplicate bool
	Severity       Severity
	Target         TargetClass
	Extensions     []*ruleext.Rule
}

// eligibilityOutcomes bounds what an extension rule may assert: its
// Outcome must name one of this layer's own closed Eligibility values.
var eligibilityOutcomes = map[string]Eligibility{
	string(Eligible):    Eligible,
	string(NotEligible): NotEligible,
	string(Duplicate):   Duplicate,
	string(NeedsReview): NeedsReview,
}

// Evaluate computes eligibility deterministically from the four input
// fields. Duplicate detection here only consults the caller-supplied flag:
// the core never computes similarity scores itself.
func Evaluate(in Input) Eligibility {
	if !in.InScope {
		return NotEligible
	}
	if in.KnownDuplicate {
		return Duplicate
	}
	if in.Severity == SeverityCritical || in.Target == TargetProduction {
		return NeedsReview
	}
	if outcome, ok := evaluateExtensions(in); ok {
		return outcome
	}
	return Eligible
}

func evaluateExtensions(in Input) (Eligibility, bool) {
	if len(in.Extensions) == 0 {
		return "", false
	}
	outcome, matched := ruleext.FirstMatch(in.Extensions, map[string]any{
		"in_scope":        in.InScope,
		"known_duplicate": in.KnownDuplicate,
		"severity":        string(in.Severity),
		"target":          string(in.Target),
	})
	if !matched {
		return "", false
	}
	result, known := eligibilityOutcomes[outcome]
	if !known {
		return "", false
	}
	return result, true
}
