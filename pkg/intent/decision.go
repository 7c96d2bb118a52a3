// Package intent implements L14: human decision recording and
// decision→intent binding. present_evidence, create_request, and
// accept_decision govern how a human is asked to decide; bind governs how
// an accepted decision becomes an immutable ExecutionIntent.
package intent

import (
	"github.com/northwood-systems/govkernel/pkg/chain"
	"github.com/northwood-systems/govkernel/pkg/evidence"
	"github.com/northwood-systems/govkernel/pkg/foundation"
)

// EvidenceSummary exposes only the VISIBLE fields of a chain to a human
// decision-maker. Raw bytes are never included.
type EvidenceSummary struct {
	ObservationPoint chain.ObservationPoint
	Type             chain.EvidenceType
	Timestamp        string
	ChainLength      int
	ExecutionState   string
	Confidence       evidence.Confidence
	ChainHash        string
}

// OverrideField names a field that demands higher authority to reveal than
// the default presentation grants.
type OverrideField string

const (
	OverrideRawPayload OverrideField = "RAW_PAYLOAD"
)

// PresentEvidence extracts the VISIBLE EvidenceSummary of the last record
// in c. Raw bytes never appear here regardless of who calls it — revealing
// them requires a separate override path the caller must invoke
// explicitly, named by OverrideRawPayload.
func PresentEvidence(c chain.Chain, executionState string, conf evidence.Confidence) EvidenceSummary {
	records := c.Records()
	if len(records) == 0 {
		return EvidenceSummary{ChainLength: 0, ExecutionState: executionState, Confidence: conf, ChainHash: c.HeadHash()}
	}
	last := records[len(records)-1]
	return EvidenceSummary{
		ObservationPoint: last.Point,
		Type:             last.Type,
		Timestamp:        last.Timestamp,
		ChainLength:      c.Length(),
		ExecutionState:   executionState,
		Confidence:       conf,
		ChainHash:        c.HeadHash(),
	}
}

// DecisionKind is the closed set of decisions a human may render.
type DecisionKind string

const (
	Continue DecisionKind = "CONTINUE"
	Retry    DecisionKind = "RETRY"
	Abort    DecisionKind = "ABORT"
	Escalate DecisionKind = "ESCALATE"
)

var knownDecisionKinds = map[DecisionKind]bool{Continue: true, Retry: true, Abort: true, Escalate: true}

// DecisionRequest mirrors spec's DecisionRequest. timeout_decision is
// always ABORT.
type DecisionRequest struct {
	RequestID       string
	SessionID       string
	Summary         EvidenceSummary
	Allowed         []DecisionKind
	CreatedAt       string
	TimeoutAt       string
	TimeoutDecision DecisionKind
}

// CreateRequest constructs a DecisionRequest presented to a human.
func CreateRequest(requestID, sessionID string, summary EvidenceSummary, allowed []DecisionKind, createdAt, timeoutAt string) DecisionRequest {
	return DecisionRequest{
		RequestID:       requestID,
		SessionID:       sessionID,
		Summary:         summary,
		Allowed:         allowed,
		CreatedAt:       createdAt,
		TimeoutAt:       timeoutAt,
		TimeoutDecision: Abort,
	}
}

// DecisionRecord mirrors spec's DecisionRecord.
type DecisionRecord struct {
	DecisionID        string
	RequestID         string
	HumanID           string
	Decision          DecisionKind
	Reason            string
	EscalationTarget  string
	Timestamp         string
	EvidenceChainHash string
}

func allowedContains(allowed []DecisionKind, k DecisionKind) bool {
	for _, a := range allowed {
		if a == k {
			return true
		}
	}
	return false
}

// AcceptDecision implements accept_decision's enforced preconditions:
// timestamp past timeout synthesizes a TIMEOUT → ABORT record; a decision
// kind outside the request's allowed set is REJECTED (represented here as
// an error); RETRY and ESCALATE both require a reason; ESCALATE
// additionally requires an escalation target.
func AcceptDecision(req DecisionRequest, kind DecisionKind, humanID, reason, escalationTarget, now string) (DecisionRecord, error) {
	if now > req.TimeoutAt {
		return DecisionRecord{
			DecisionID:        req.RequestID + "-timeout",
			RequestID:         req.RequestID,
			HumanID:           humanID,
			Decision:          req.TimeoutDecision,
			Reason:            "timeout exceeded",
			Timestamp:         now,
			EvidenceChainHash: req.Summary.ChainHash,
		}, nil
	}

	if !knownDecisionKinds[kind] {
		return DecisionRecord{}, foundation.NewError(foundation.UnknownInputError, "unknown decision kind")
	}
	if !allowedContains(req.Allowed, kind) {
		return DecisionRecord{}, foundation.NewError(foundation.UnauthorizedActorError, "decision kind not in allowed set")
	}
	if (kind == Retry || kind == Escalate) && reason == "" {
		return DecisionRecord{}, foundation.NewError(foundation.MissingFieldError, "reason required for RETRY/ESCALATE")
	}
	if kind == Escalate && escalationTarget == "" {
		return DecisionRecord{}, foundation.NewError(foundation.MissingFieldError, "escalation_target required for ESCALATE")
	}

	return DecisionRecord{
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
