// Package narrative implements L7: deterministic explanation composition
// keyed by {FinalDecision, BugType}. There is no free-form generation and
// no model inference — every step sequence is a fixed lookup.
package narrative

import (
	"github.com/northwood-systems/govkernel/pkg/aggregator"
	"github.com/northwood-systems/govkernel/pkg/knowledge"
)

// Step is one entry of a narrative, bilingual like everything user-facing.
type Step struct {
	English string
	Hindi   string
}

type key struct {
	decision aggregator.FinalDecision
	bugType  knowledge.BugType
}

var steps = map[key][]Step{}

func register(d aggregator.FinalDecision, bt knowledge.BugType, english []string, hindi []string) {
	seq := make([]Step, len(english))
	for i := range english {
		seq[i] = Step{English: english[i], Hindi: hindi[i]}
	}
	steps[key{d, bt}] = seq
}

func init() {
	register(aggregator.Allow, knowledge.Unknown,
		[]string{"Request validated.", "No known bug pattern matched.", "Proceeding is permitted."},
		[]string{"अनुरोध मान्य किया गया।", "कोई ज्ञात बग पैटर्न मेल नहीं खाया।", "आगे बढ़ने की अनुमति है।"})
	register(aggregator.Escalate, knowledge.Unknown,
		[]string{"Request requires human review.", "No known bug pattern matched.", "Escalating for confirmation."},
		[]string{"अनुरोध को मानव समीक्षा की आवश्यकता है।", "कोई ज्ञात बग पैटर्न मेल नहीं खाया।", "पुष्टि के लिए आगे बढ़ाया जा रहा है।"})
	register(aggregator.Deny, knowledge.Unknown,
		[]string{"Request denied by policy.", "No known bug pattern matched."},
		[]string{"नीति द्वारा अनुरोध अस्वीकृत।", "कोई ज्ञात बग पैटर्न मेल नहीं खाया।"})
}

// Compose returns the deterministic step sequence for the given decision
// and bug type, or a generic closed-form fallback sequence if no specific
// narrative is registered for that exact pair.
func Compose(d aggregator.FinalDecision, bt knowledge.BugType) []Step {
	if seq, ok := steps[key{d, bt}]; ok {
		return seq
	}
	explanation := knowledge.LookupBugType(string(bt))
	return []Step{
		{English: "Decision: " + string(d) + ".", Hindi: "निर्णय: " + string(d) + "।"},
		{English: explanation.English, Hindi: explanation.Hindi},
	}
}
