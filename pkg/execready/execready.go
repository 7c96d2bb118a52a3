// Package execready implements L16: pre-execution gatekeeping, the
// handshake decision table, the (never-executed) execution loop
// definition, and executor response normalization.
package execready

import (
	"github.com/northwood-systems/govkernel/pkg/authorization"
	"github.com/northwood-systems/govkernel/pkg/envelope"
)

// ExecutorIdentity is the closed set of executor identity states.
type ExecutorIdentity string

const (
	IdentityUnknown  ExecutorIdentity = "UNKNOWN"
	IdentityRevoked  ExecutorIdentity = "REVOKED"
	IdentityVerified ExecutorIdentity = "VERIFIED"
	Unverified       ExecutorIdentity = "UNVERIFIED"
)

// Readiness is the closed pre-execution readiness verdict.
type Readiness string

const (
	Ready    Readiness = "READY"
	NotReady Readiness = "NOT_READY"
	Blocked  Readiness = "BLOCKED"
)

// ReadinessInputs mirrors the conjunction spec §4.12 requires: every
// condition must hold for READY; any missing condition is NOT_READY; any
// violated condition is BLOCKED; the default is BLOCKED.
type ReadinessInputs struct {
	ExecutorRegistered     bool
	ExecutorIdentity       ExecutorIdentity
	EnvelopeHashMatches    bool
	ObservationInitialized bool
	ObservationHalted      bool
	AuthorizationStatus    authorization.Status
	IntentRevoked          bool
	ExecutionPending       bool
}

// EvaluateReadiness implements spec §4.12's readiness gate.
func EvaluateReadiness(in ReadinessInputs) Readiness {
	if !in.ExecutorRegistered || !in.ObservationInitialized {
		return NotReady
	}
	if in.ExecutorIdentity != IdentityVerified {
		return Blocked
	}
	if !in.EnvelopeHashMatches {
		return Blocked
	}
	if in.ObservationHalted {
		return Blocked
	}
	if in.AuthorizationStatus != authorization.Authorized || in.IntentRevoked {
		return Blocked
	}
	if in.ExecutionPending {
		return Blocked
	}
	return Ready
}

// HandshakeDecision is the closed handshake outcome.
type HandshakeDecision string

const (
	Accept HandshakeDecision = "ACCEPT"
	Reject HandshakeDecision = "REJECT"
)

// Handshake implements spec §4.12's handshake table: only a VERIFIED
// identity with a matching hash is ACCEPTed; everything else is REJECTed.
func Handshake(identity ExecutorIdentity, hashMatches bool) HandshakeDecision {
	if identity == IdentityVerified && hashMatches {
		return Accept
	}
	return Reject
}

// LoopState is the closed set of execution-loop states. This loop is
// defined, never executed, by this layer — it exists so downstream
// executors share a common vocabulary with the kernel's readiness gate.
type LoopState string

const (
	Initialized      LoopState = "INITIALIZED"
	LoopReady        LoopState = "READY"
	Dispatched       LoopState = "DISPATCHED"
	AwaitingResponse LoopState = "AWAITING_RESPONSE"
	Halted           LoopState = "HALTED"
)

// LoopTransition is the closed set of loop transitions.
type LoopTransition string

const (
	Init     LoopTransition = "INIT"
	Dispatch LoopTransition = "DISPATCH"
	Receive  LoopTransition = "RECEIVE"
	Halt     LoopTransition = "HALT"
)

// LoopTransitionTable implements spec §4.12's execution loop table. Any
// transition not present in the table resolves to HALTED — including every
// transition once the loop is already HALTED.
func LoopTransitionTable(from LoopState, t LoopTransition) LoopState {
	if t == Halt {
		return Halted
	}
	if from == Halted {
		return Halted
	}
	switch {
	case from == Initialized && t == Init:
		return LoopReady
	case from == LoopReady && t == Dispatch:
		return Dispatched
	case from == Dispatched && t == Receive:
		return AwaitingResponse
	case from == AwaitingResponse && t == Dispatch:
		return Dispatched
	default:
		return Halted
	}
}

// ReportedStatus is the closed set of statuses an executor may report.
// spec is explicit: the executor's claim is data, never truth.
type ReportedStatus string

const (
	Success   ReportedStatus = "SUCCESS"
	Failure   ReportedStatus = "FAILURE"
	Timeout   ReportedStatus = "TIMEOUT"
	Partial   ReportedStatus = "PARTIAL"
	Malformed ReportedStatus = "MALFORMED"
)

// NormalizedDecision is the closed outcome of response normalization.
type NormalizedDecision string

const (
	NormAccept   NormalizedDecision = "ACCEPT"
	NormReject   NormalizedDecision = "REJECT"
	NormEscalate NormalizedDecision = "ESCALATE"
)

// NormalizedResult mirrors spec's NormalizedResult. Confidence is always
// strictly below 1.0; raising it to 1.0 requires a separate human
// decision, never this layer.
type NormalizedResult struct {
	Decision   NormalizedDecision
	Reason     string
	Confidence float64
}

var normalizationTable = map[ReportedStatus]NormalizedResult{
	Success:   {Decision: NormAccept, Reason: "executor reported SUCCESS", Confidence: 0.85},
	Failure:   {Decision: NormReject, Reason: "executor reported FAILURE", Confidence: 0.30},
	Timeout:   {Decision: NormReject, Reason: "executor reported TIMEOUT", Confidence: 0.20},
	Partial:   {Decision: NormEscalate, Reason: "executor reported PARTIAL", Confidence: 0.50},
	Malformed: {Decision: NormReject, Reason: "executor reported MALFORMED", Confidence: 0.10},
}

// Normalize implements spec §4.12's fixed response table. An unrecognized
// reported status is treated as MALFORMED — the lowest-confidence, deny-
// leaning outcome — rather than silently passing through.
func Normalize(reported ReportedStatus) NormalizedResult {
	if r, ok := normalizationTable[reported]; ok {
		return r
	}
	return normalizationTable[Malformed]
}

// NormalizeRaw validates a decoded ExecutorRawResponse envelope against
// its schema before extracting reported_status and normalizing it. A
// malformed envelope never reaches Normalize at all — it is treated the
// same as an unrecognized reported status, rather than panicking or
// propagating a decode error into the pure decision table.
func NormalizeRaw(raw map[string]any) NormalizedResult {
	if err := envelope.ValidateExecutorRawResponse(raw); err != nil {
		return normalizationTable[Malformed]
	}
	status, _ := raw["status"].(string)
	return Normalize(ReportedStatus(status))
}
