// Package mirror is the structurally independent re-implementation of
// L2–L16 required by spec §4.13. It shares data-model type definitions
// with the primary pipeline packages (trust.Zone, action.Kind, and so on)
// but none of their algorithmic code: every rule below is re-derived from
// the component design tables directly, using different control-flow
// shapes (switch over if-chains, explicit loops over map lookups) so that
// a bug shared by construction between the two trees is implausible. On
// well-formed inputs it never reaches a different conclusion than the
// primary pipeline; divergence is a bug and is externally comparable by a
// caller holding both verdicts side by side.
package mirror

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/northwood-systems/govkernel/pkg/action"
	"github.com/northwood-systems/govkernel/pkg/aggregator"
	"github.com/northwood-systems/govkernel/pkg/authorization"
	"github.com/northwood-systems/govkernel/pkg/canonicalize"
	"github.com/northwood-systems/govkernel/pkg/capability"
	"github.com/northwood-systems/govkernel/pkg/chain"
	"github.com/northwood-systems/govkernel/pkg/coordination"
	"github.com/northwood-systems/govkernel/pkg/evidence"
	"github.com/northwood-systems/govkernel/pkg/execready"
	"github.com/northwood-systems/govkernel/pkg/foundation"
	"github.com/northwood-systems/govkernel/pkg/intent"
	"github.com/northwood-systems/govkernel/pkg/knowledge"
	"github.com/northwood-systems/govkernel/pkg/narrative"
	"github.com/northwood-systems/govkernel/pkg/policy"
	"github.com/northwood-systems/govkernel/pkg/readiness"
	"github.com/northwood-systems/govkernel/pkg/trust"
	"github.com/northwood-systems/govkernel/pkg/workflow"
)

// CrossZone re-derives check_crossing without consulting trust.CheckCrossing.
func CrossZone(from, to trust.Zone) (allowed bool, reason string) {
	order := []trust.Zone{trust.External, trust.System, trust.Governance, trust.Human}
	indexOf := func(z trust.Zone) int {
		for i, candidate := range order {
			if candidate == z {
				return i
			}
		}
		return -1
	}
	fi, ti := indexOf(from), indexOf(to)
	if fi < 0 || ti < 0 {
		return false, "unknown zone"
	}
	switch {
	case from == to:
		return true, "same zone"
	case from == trust.Human:
		return true, "HUMAN origin"
	case fi > ti:
		return true, "descending trust crossing"
	default:
		return false, "ascending trust crossing blocked"
	}
}

// ValidateAction re-derives validate_action as a single switch over a
// synthetic case key, rather than the primary package's sequential if
// chain.
func ValidateAction(req action.Request) action.Verdict {
	if _, known := foundation.ResolveActor(req.ActorKind); !known {
		return action.Verdict{Result: action.Deny, Reason: "unknown actor"}
	}
	if _, known := trust.Level(req.Zone); !known {
		return action.Verdict{Result: action.Deny, Reason: "unknown zone"}
	}

	isMutating := req.Action == action.Write || req.Action == action.Delete || req.Action == action.Execute
	isMutatingOrConfigure := isMutating || req.Action == action.Configure

	switch {
	case req.ActorKind == foundation.ActorHuman:
		return action.Verdict{Result: action.Allow, Reason: "human actor"}
	case req.Zone == trust.Human:
		return action.Verdict{Result: action.Allow, Reason: "human zone"}
	case req.Zone == trust.External && isMutating:
		return action.Verdict{Result: action.Deny, Reason: "external mutation"}
	case req.Zone == trust.Governance && req.Action == action.Write:
		return action.Verdict{Result: action.Deny, Reason: "governance write"}
	case req.ActorKind == foundation.ActorSystem && isMutatingOrConfigure:
		return action.Verdict{Result: action.Escalate, Reason: "system mutation", RequiresHuman: true}
	case req.Zone == trust.Governance && req.Action == action.Configure:
		return action.Verdict{Result: action.Escalate, Reason: "governance configure", RequiresHuman: true}
	default:
		return action.Verdict{Result: action.Allow, Reason: "default allow"}
	}
}

// transitions re-encodes the workflow table as an adjacency list keyed by
// from-state, a different shape from the primary package's edge-keyed map.
var transitions = map[workflow.State][]struct {
	tr        workflow.Transition
	to        workflow.State
	humanOnly bool
}{
	workflow.Init: {
		{workflow.Validate, workflow.Validated, false},
		{workflow.Abort, workflow.Aborted, true},
	},
	workflow.Validated: {
		{workflow.Escalate, workflow.Escalated, false},
		{workflow.Complete, workflow.Completed, true},
		{workflow.Abort, workflow.Aborted, true},
	},
	workflow.Escalated: {
		{workflow.Approve, workflow.Approved, true},
		{workflow.Reject, workflow.Rejected, true},
		{workflow.Abort, workflow.Aborted, true},
	},
	workflow.Approved: {
		{workflow.Complete, workflow.Completed, true},
		{workflow.Abort, workflow.Aborted, true},
	},
}

// TransitionWorkflow re-derives workflow.Apply.
func TransitionWorkflow(ctx workflow.Context, tr workflow.Transition) workflow.Result {
	if ctx.State == workflow.Completed || ctx.State == workflow.Aborted || ctx.State == workflow.Rejected {
		return workflow.Result{Allowed: false, Next: ctx.State, Reason: "terminal"}
	}
	for _, edge := range transitions[ctx.State] {
		if edge.tr != tr {
			continue
		}
		if edge.humanOnly && ctx.Actor != foundation.ActorHuman {
			return workflow.Result{Allowed: false, Next: ctx.State, Reason: "requires human"}
		}
		return workflow.Result{Allowed: true, Next: edge.to, Reason: "applied"}
	}
	return workflow.Result{Allowed: false, Next: ctx.State, Reason: "no such transition"}
}

// AggregateFinal re-derives aggregator.Aggregate as a loop over an ordered
// rule list instead of the primary package's sequential if-chain.
func AggregateFinal(validation action.Verdict, state workflow.State, wr workflow.Result, actorKind foundation.ActorKind, zone trust.Zone) string {
	rules := []func() (string, bool){
		func() (string, bool) {
			if state == workflow.Completed || state == workflow.Aborted || state == workflow.Rejected {
				return "DENY", true
			}
			return "", false
		},
		func() (string, bool) {
			if !wr.Allowed {
				return "DENY", true
			}
			return "", false
		},
		func() (string, bool) {
			if actorKind == foundation.ActorHuman && validation.Result == action.Allow {
				return "ALLOW", true
			}
			return "", false
		},
		func() (string, bool) {
			if validation.Result == action.Escalate {
				return "ESCALATE", true
			}
			return "", false
		},
		func() (string, bool) {
			if validation.Result == action.Deny {
				return "DENY", true
			}
			return "", false
		},
		func() (string, bool) {
			if zone == trust.External {
				return "ESCALATE", true
			}
			return "", false
		},
	}
	for _, rule := range rules {
		if verdict, matched := rule(); matched {
			return verdict
		}
	}
	return "ALLOW"
}

// ClassifyCapability re-derives capability.Evaluate.
func ClassifyCapability(a capability.Action, attempting bool, state workflow.State) capability.Decision {
	risk, known := capability.ClassifyRisk(a)
	if !known || risk == capability.Forbidden {
		return capability.Denied
	}
	if state == workflow.Completed || state == workflow.Aborted || state == workflow.Rejected {
		return capability.Denied
	}
	if state == workflow.Escalated {
		return capability.HumanRequired
	}
	if attempting {
		if risk == capability.High {
			return capability.HumanRequired
		}
		return capability.Allowed
	}
	return capability.Denied
}

// ClassifyEvidence re-derives evidence.Classify/AssignConfidence using
// counting instead of the primary package's pairwise-match loop.
func ClassifyEvidence(sources []evidence.Source) (evidence.State, error) {
	n := len(sources)
	if n == 0 {
		return evidence.Unverified, nil
	}
	if n == 1 {
		return evidence.Raw, nil
	}
	mismatches := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			eq, err := equalPayload(sources[i], sources[j])
			if err != nil {
				return "", err
			}
			if !eq {
				mismatches++
			}
		}
	}
	if mismatches == 0 {
		return evidence.Consistent, nil
	}
	return evidence.Inconsistent, nil
}

func equalPayload(a, b evidence.Source) (bool, error) {
	return canonicalize.Equal(a.Payload, b.Payload)
}

// NormalizeResponse re-derives execready.Normalize from a switch rather
// than a map lookup.
func NormalizeResponse(reported execready.ReportedStatus) execready.NormalizedResult {
	switch reported {
	case execready.Success:
		return execready.NormalizedResult{Decision: execready.NormAccept, Reason: "SUCCESS", Confidence: 0.85}
	case execready.Failure:
		return execready.NormalizedResult{Decision: execready.NormReject, Reason: "FAILURE", Confidence: 0.30}
	case execready.Timeout:
		return execready.NormalizedResult{Decision: execready.NormReject, Reason: "TIMEOUT", Confidence: 0.20}
	case execready.Partial:
		return execready.NormalizedResult{Decision: execready.NormEscalate, Reason: "PARTIAL", Confidence: 0.50}
	default:
		return execready.NormalizedResult{Decision: execready.NormReject, Reason: "MALFORMED", Confidence: 0.10}
	}
}

// ToDecision re-derives authorization.ToDecision.
func ToDecision(s authorization.Status) authorization.Decision {
	switch s {
	case authorization.Authorized:
		return authorization.Allow
	default:
		return authorization.Deny
	}
}

// bugRegistry duplicates L6's closed bilingual registry as switch-driven
// data rather than the primary package's map literal, so no piece of
// mirror's classification depends on knowledge's internal table.
func bugRegistry(t knowledge.BugType) (knowledge.Explanation, bool) {
	switch t {
	case knowledge.SQLInjection:
		return knowledge.Explanation{
			Type:    knowledge.SQLInjection,
			English: "Untrusted input is concatenated into a SQL statement without parameterization.",
			Hindi:   "असुरक्षित इनपुट को बिना पैरामीटरीकरण के SQL कथन में जोड़ा गया है।",
			CWE:     "CWE-89",
		}, true
	case knowledge.XSS:
		return knowledge.Explanation{
			Type:    knowledge.XSS,
			English: "Untrusted input is rendered into a page without output encoding.",
			Hindi:   "असुरक्षित इनपुट को आउटपुट एन्कोडिंग के बिना पृष्ठ में प्रस्तुत किया गया है।",
			CWE:     "CWE-79",
		}, true
	case knowledge.CSRF:
		return knowledge.Explanation{
			Type:    knowledge.CSRF,
			English: "A state-changing request lacks a per-session anti-forgery token.",
			Hindi:   "एक स्थिति-परिवर्तनकारी अनुरोध में प्रति-सत्र एंटी-फोर्जरी टोकन का अभाव है।",
			CWE:     "CWE-352",
		}, true
	case knowledge.PathTraversal:
		return knowledge.Explanation{
			Type:    knowledge.PathTraversal,
			English: "A file path is built from untrusted input without normalization or containment.",
			Hindi:   "एक फ़ाइल पथ सामान्यीकरण या रोकथाम के बिना असुरक्षित इनपुट से बनाया गया है।",
			CWE:     "CWE-22",
		}, true
	case knowledge.InsecureDeserial:
		return knowledge.Explanation{
			Type:    knowledge.InsecureDeserial,
			English: "Untrusted bytes are deserialized into live objects without type restriction.",
			Hindi:   "असुरक्षित बाइट्स को प्रकार प्रतिबंध के बिना सक्रिय वस्तुओं में डिसेरियलाइज़ किया गया है।",
			CWE:     "CWE-502",
		}, true
	case knowledge.BrokenAuth:
		return knowledge.Explanation{
			Type:    knowledge.BrokenAuth,
			English: "Session or credential handling allows an attacker to assume another identity.",
			Hindi:   "सत्र या क्रेडेंशियल प्रबंधन किसी हमलावर को दूसरी पहचान अपनाने की अनुमति देता है।",
			CWE:     "CWE-287",
		}, true
	case knowledge.SensitiveDataExpose:
		return knowledge.Explanation{
			Type:    knowledge.SensitiveDataExpose,
			English: "Sensitive data is transmitted or stored without adequate protection.",
			Hindi:   "संवेदनशील डेटा को पर्याप्त सुरक्षा के बिना प्रसारित या संग्रहीत किया गया है।",
			CWE:     "CWE-200",
		}, true
	case knowledge.SSRF:
		return knowledge.Explanation{
			Type:    knowledge.SSRF,
			English: "A server-side request target is influenced by untrusted input without allow-listing.",
			Hindi:   "एक सर्वर-साइड अनुरोध लक्ष्य अनुमति-सूची के बिना असुरक्षित इनपुट से प्रभावित है।",
			CWE:     "CWE-918",
		}, true
	case knowledge.RaceCondition:
		return knowledge.Explanation{
			Type:    knowledge.RaceCondition,
			English: "A shared resource is accessed without sufficient synchronization, producing a time-of-check/time-of-use gap.",
			Hindi:   "एक साझा संसाधन को पर्याप्त सिंक्रनाइज़ेशन के बिना एक्सेस किया गया है।",
			CWE:     "CWE-362",
		}, true
	case knowledge.BufferOverflow:
		return knowledge.Explanation{
			Type:    knowledge.BufferOverflow,
			English: "A write exceeds the bounds of its allocated buffer.",
			Hindi:   "एक राइट अपने आवंटित बफर की सीमाओं से अधिक है।",
			CWE:     "CWE-120",
		}, true
	case knowledge.PrivilegeEscalation:
		return knowledge.Explanation{
			Type:    knowledge.PrivilegeEscalation,
			English: "A lower-privileged actor obtains higher-privileged capability without an authorization check.",
			Hindi:   "एक कम-विशेषाधिकार प्राप्त अभिनेता प्राधिकरण जांच के बिना उच्च-विशेषाधिकार क्षमता प्राप्त करता है।",
			CWE:     "CWE-269",
		}, true
	default:
		return knowledge.Explanation{}, false
	}
}

// MirrorLookupBugType re-derives knowledge.LookupBugType: an exhaustive
// switch over the closed BugType set rather than a map lookup, falling
// back to UNKNOWN for anything not named by a case, never a near match.
func MirrorLookupBugType(s string) knowledge.Explanation {
	if e, ok := bugRegistry(knowledge.BugType(s)); ok {
		return e
	}
	return knowledge.Explanation{
		Type:    knowledge.Unknown,
		English: "No registered bug type matches the supplied identifier.",
		Hindi:   "आपूर्ति किए गए पहचानकर्ता से कोई पंजीकृत बग प्रकार मेल नहीं खाता।",
		CWE:     "",
	}
}

// MirrorCompose re-derives narrative.Compose as a switch over the
// registered {decision, bug type} pairs rather than a map keyed by a
// composite struct.
func MirrorCompose(d aggregator.FinalDecision, bt knowledge.BugType) []narrative.Step {
	switch {
	case d == aggregator.Allow && bt == knowledge.Unknown:
		return []narrative.Step{
			{English: "Request validated.", Hindi: "अनुरोध मान्य किया गया।"},
			{English: "No known bug pattern matched.", Hindi: "कोई ज्ञात बग पैटर्न मेल नहीं खाया।"},
			{English: "Proceeding is permitted.", Hindi: "आगे बढ़ने की अनुमति है।"},
		}
	case d == aggregator.Escalate && bt == knowledge.Unknown:
		return []narrative.Step{
			{English: "Request requires human review.", Hindi: "अनुरोध को मानव समीक्षा की आवश्यकता है।"},
			{English: "No known bug pattern matched.", Hindi: "कोई ज्ञात बग पैटर्न मेल नहीं खाया।"},
			{English: "Escalating for confirmation.", Hindi: "पुष्टि के लिए आगे बढ़ाया जा रहा है।"},
		}
	case d == aggregator.Deny && bt == knowledge.Unknown:
		return []narrative.Step{
			{English: "Request denied by policy.", Hindi: "नीति द्वारा अनुरोध अस्वीकृत।"},
			{English: "No known bug pattern matched.", Hindi: "कोई ज्ञात बग पैटर्न मेल नहीं खाया।"},
		}
	default:
		explanation := MirrorLookupBugType(string(bt))
		return []narrative.Step{
			{English: "Decision: " + string(d) + ".", Hindi: "निर्णय: " + string(d) + "।"},
			{English: explanation.English, Hindi: explanation.Hindi},
		}
	}
}

// MirrorEvaluatePolicy re-derives policy.Evaluate's four-field eligibility
// table as a single switch rather than a sequential if-chain. The optional
// CEL extension arm is outside this closed table and, like the other
// mirrored layers, is not re-derived here.
func MirrorEvaluatePolicy(in policy.Input) policy.Eligibility {
	switch {
	case !in.InScope:
		return policy.NotEligible
	case in.KnownDuplicate:
		return policy.Duplicate
	case in.Severity == policy.SeverityCritical:
		return policy.NeedsReview
	case in.Target == policy.TargetProduction:
		return policy.NeedsReview
	default:
		return policy.Eligible
	}
}

// MirrorIsDuplicate re-derives coordination.Ledger.IsDuplicate as a linear
// scan over a caller-supplied slice of fingerprints rather than a map
// lookup against the primary package's private internal set.
func MirrorIsDuplicate(seen []string, fingerprint string) bool {
	for _, s := range seen {
		if s == fingerprint {
			return true
		}
	}
	return false
}

func mirrorSubmissionLess(a, b coordination.Submission) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if a.SubmittedAt != b.SubmittedAt {
		return a.SubmittedAt < b.SubmittedAt
	}
	return a.Fingerprint < b.Fingerprint
}

// MirrorFairOrder re-derives coordination.FairOrder with a selection sort
// instead of the primary package's insertion sort; both are stable under
// the same three-key tie-break, so the resulting order always agrees.
func MirrorFairOrder(subs []coordination.Submission) []coordination.Submission {
	out := make([]coordination.Submission, len(subs))
	copy(out, subs)
	for i := 0; i < len(out); i++ {
		best := i
		for j := i + 1; j < len(out); j++ {
			if mirrorSubmissionLess(out[j], out[best]) {
				best = j
			}
		}
		out[i], out[best] = out[best], out[i]
	}
	return out
}

// MirrorReplayReady re-derives evidence.ReplayReady as three guarded
// returns rather than a single boolean expression.
func MirrorReplayReady(b evidence.Bundle, steps []string) bool {
	if len(steps) == 0 {
		return false
	}
	if !b.Deterministic {
		return false
	}
	return !b.ExternalDependencies
}

// MirrorAssignConfidence re-derives evidence.AssignConfidence as a
// two-dimensional table lookup rather than the primary package's nested
// switch.
func MirrorAssignConfidence(state evidence.State, replayable bool) evidence.Confidence {
	table := map[evidence.State]map[bool]evidence.Confidence{
		evidence.Unverified:   {true: evidence.Low, false: evidence.Low},
		evidence.Inconsistent: {true: evidence.Low, false: evidence.Low},
		evidence.Raw:          {true: evidence.Medium, false: evidence.Low},
		evidence.Consistent:   {true: evidence.High, false: evidence.Medium},
	}
	byReplay, known := table[state]
	if !known {
		return evidence.Low
	}
	return byReplay[replayable]
}

// MirrorEvaluateHandoff re-derives readiness.EvaluateHandoff.
func MirrorEvaluateHandoff(confidence evidence.Confidence, state evidence.State, explicitlyReviewed bool) readiness.Handoff {
	switch {
	case confidence == evidence.High && state == evidence.Consistent && explicitlyReviewed:
		return readiness.ReadyForBrowser
	case confidence == evidence.High:
		return readiness.ReviewRequired
	default:
		return readiness.NotReady
	}
}

// MirrorEvaluateHumanPresence re-derives readiness.EvaluateHumanPresence.
func MirrorEvaluateHumanPresence(h readiness.Handoff, sev readiness.Severity, target readiness.Target) readiness.HumanPresence {
	if h == readiness.NotReady {
		return readiness.Blocking
	}
	if sev == readiness.SeverityCritical || target == readiness.TargetProduction {
		return readiness.Required
	}
	return readiness.Optional
}

// mirrorEncodeField writes a length-prefixed field the way chain's
// encodeField does, but builds the length prefix by hand with bit shifts
// instead of encoding/binary, so the two encoders never share a line of
// code while still producing byte-identical output (required: this
// encoding is the chain's hashing interop contract, not just a
// classification with a small outcome set).
func mirrorEncodeField(out []byte, f []byte) []byte {
	n := len(f)
	out = append(out, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	out = append(out, f...)
	return append(out, 0x00)
}

func mirrorEncodeRecord(recordID, point, evidenceType, timestamp string, payload []byte, priorHash string) []byte {
	var out []byte
	out = mirrorEncodeField(out, []byte(recordID))
	out = mirrorEncodeField(out, []byte(point))
	out = mirrorEncodeField(out, []byte(evidenceType))
	out = mirrorEncodeField(out, []byte(timestamp))
	out = mirrorEncodeField(out, payload)
	out = mirrorEncodeField(out, []byte(priorHash))
	return out
}

// MirrorSelfHash re-derives chain's unexported selfHash/encodeRecord pair.
func MirrorSelfHash(recordID string, point chain.ObservationPoint, typ chain.EvidenceType, timestamp string, payload []byte, priorHash string) string {
	sum := sha256.Sum256(mirrorEncodeRecord(recordID, string(point), string(typ), timestamp, payload, priorHash))
	return hex.EncodeToString(sum[:])
}

// MirrorValidateChain re-derives chain.Validate using an accumulator flag
// that keeps scanning every record rather than the primary package's
// early-return loop.
func MirrorValidateChain(c chain.Chain) bool {
	records := c.Records()
	prior := foundation.ZeroHash
	ok := true
	for _, rec := range records {
		if rec.PriorHash != prior {
			ok = false
		}
		if MirrorSelfHash(rec.RecordID, rec.Point, rec.Type, rec.Timestamp, rec.Payload, rec.PriorHash) != rec.SelfHash {
			ok = false
		}
		prior = rec.SelfHash
	}
	if !ok {
		return false
	}
	if len(records) == 0 {
		return c.HeadHash() == foundation.ZeroHash
	}
	return c.HeadHash() == records[len(records)-1].SelfHash
}

// MirrorIntentHash re-derives intent's unexported intentHash using a
// streaming sha256.New()/Write hasher instead of the primary package's
// buffer-then-Sum256 approach.
func MirrorIntentHash(intentID, decisionID string, decisionType intent.DecisionKind, chainHash, session string, state intent.ExecutionState, createdAt, createdBy string) string {
	h := sha256.New()
	for _, f := range []string{intentID, decisionID, string(decisionType), chainHash, session, string(state), createdAt, createdBy} {
		h.Write([]byte(f))
		h.Write([]byte{foundation.FieldSeparator})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// MirrorVerifyIntentHash re-derives intent.ExecutionIntent.VerifyHash.
func MirrorVerifyIntentHash(ei intent.ExecutionIntent) bool {
	return ei.IntentHash == MirrorIntentHash(ei.IntentID, ei.DecisionID, ei.DecisionType, ei.EvidenceChainHash, ei.SessionID, ei.State, ei.CreatedAt, ei.CreatedBy)
}

func mirrorKnownDecisionKind(k intent.DecisionKind) bool {
	switch k {
	case intent.Continue, intent.Retry, intent.Abort, intent.Escalate:
		return true
	default:
		return false
	}
}

// MirrorBindValidate re-derives the precondition checks of
// intent.Binder.Bind (missing fields, unknown decision kind, duplicate
// binding). Bind's minted IntentID/IntentHash are random per call and
// cannot be reproduced, so the mirror only re-derives the validation
// verdict; the caller supplies already-bound decision IDs directly since
// Binder's internal set is private.
func MirrorBindValidate(d intent.DecisionRecord, alreadyBound []string) error {
	switch {
	case d.DecisionID == "" || d.RequestID == "" || d.HumanID == "" || d.Timestamp == "" || d.EvidenceChainHash == "":
		return foundation.NewError(foundation.MissingFieldError, "decision record incomplete")
	case !mirrorKnownDecisionKind(d.Decision):
		return foundation.NewError(foundation.UnknownInputError, "invalid decision kind")
	case mirrorContains(alreadyBound, d.DecisionID):
		return foundation.NewError(foundation.DuplicateBindingError, "decision already bound to an intent")
	default:
		return nil
	}
}

func mirrorContains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func mirrorAllowedContains(allowed []intent.DecisionKind, k intent.DecisionKind) bool {
	for _, a := range allowed {
		if a == k {
			return true
		}
	}
	return false
}

// MirrorAcceptDecision re-derives intent.AcceptDecision. Unlike Bind, this
// operation is fully deterministic (no minted ID), so its result is
// directly comparable field-for-field against the primary's output.
func MirrorAcceptDecision(req intent.DecisionRequest, kind intent.DecisionKind, humanID, reason, escalationTarget, now string) (intent.DecisionRecord, error) {
	if now > req.TimeoutAt {
		return intent.DecisionRecord{
			DecisionID:        req.RequestID + "-timeout",
			RequestID:         req.RequestID,
			HumanID:           humanID,
			Decision:          req.TimeoutDecision,
			Reason:            "timeout exceeded",
			Timestamp:         now,
			EvidenceChainHash: req.Summary.ChainHash,
		}, nil
	}

	checks := []func() error{
		func() error {
			if !mirrorKnownDecisionKind(kind) {
				return foundation.NewError(foundation.UnknownInputError, "unknown decision kind")
			}
			return nil
		},
		func() error {
			if !mirrorAllowedContains(req.Allowed, kind) {
				return foundation.NewError(foundation.UnauthorizedActorError, "decision kind not in allowed set")
			}
			return nil
		},
		func() error {
			if (kind == intent.Retry || kind == intent.Escalate) && reason == "" {
				return foundation.NewError(foundation.MissingFieldError, "reason required for RETRY/ESCALATE")
			}
			return nil
		},
		func() error {
			if kind == intent.Escalate && escalationTarget == "" {
				return foundation.NewError(foundation.MissingFieldError, "escalation_target required for ESCALATE")
			}
			return nil
		},
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return intent.DecisionRecord{}, err
		}
	}

	return intent.DecisionRecord{
		DecisionID:        req.RequestID + "-decision",
		RequestID:         req.RequestID,
		HumanID:           humanID,
		Decision:          kind,
		Reason:            reason,
		EscalationTarget:  escalationTarget,
		Timestamp:         now,
		EvidenceChainHash: req.Summary.ChainHash,
	}, nil
}

// MirrorAuthorizeExecution re-derives authorization.Registry.AuthorizeExecution
// as a priority list of failure predicates rather than a fallthrough
// switch. The primary registry's already-authorized index is private, so
// the caller supplies alreadyAuthorized/revoked directly — both are
// derivable from the real Registry/RevocationRegistry's own exported
// accessors (a prior lookup's Status field, and IsRevoked).
func MirrorAuthorizeExecution(ei *intent.ExecutionIntent, revoked, alreadyAuthorized bool, authorizer, session string) authorization.Status {
	fails := []func() bool{
		func() bool { return ei == nil },
		func() bool {
			return ei.IntentID == "" || ei.DecisionID == "" || ei.EvidenceChainHash == "" ||
				ei.SessionID == "" || ei.CreatedBy == "" || authorizer == "" || session == ""
		},
		func() bool { return !MirrorVerifyIntentHash(*ei) },
		func() bool { return revoked },
		func() bool { return alreadyAuthorized },
	}
	for _, fail := range fails {
		if fail() {
			return authorization.Rejected
		}
	}
	return authorization.Authorized
}

// MirrorEvaluateReadiness re-derives execready.EvaluateReadiness as a
// table of ordered conditions walked in a loop rather than a sequential
// if-chain.
func MirrorEvaluateReadiness(in execready.ReadinessInputs) execready.Readiness {
	if !in.ExecutorRegistered || !in.ObservationInitialized {
		return execready.NotReady
	}
	blocked := []bool{
		in.ExecutorIdentity != execready.IdentityVerified,
		!in.EnvelopeHashMatches,
		in.ObservationHalted,
		in.AuthorizationStatus != authorization.Authorized || in.IntentRevoked,
		in.ExecutionPending,
	}
	for _, b := range blocked {
		if b {
			return execready.Blocked
		}
	}
	return execready.Ready
}

// MirrorHandshake re-derives execready.Handshake.
func MirrorHandshake(identity execready.ExecutorIdentity, hashMatches bool) execready.HandshakeDecision {
	if identity != execready.IdentityVerified {
		return execready.Reject
	}
	if !hashMatches {
		return execready.Reject
	}
	return execready.Accept
}
