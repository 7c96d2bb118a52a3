// Package chain implements L13: the append-only, SHA-256 hash-chained
// evidence/audit store. A Chain is an immutable value: capture returns a
// new Chain built from an old one plus an appended record, never mutating
// the receiver. There is no internal lock — the core holds no mutable
// shared state at all, per the concurrency model.
package chain

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/northwood-systems/govkernel/pkg/foundation"
)

// ObservationPoint is the closed set of points at which evidence may be
// captured.
type ObservationPoint string

const (
	PreDispatch  ObservationPoint = "PRE_DISPATCH"
	PostDispatch ObservationPoint = "POST_DISPATCH"
	PreEvaluate  ObservationPoint = "PRE_EVALUATE"
	PostEvaluate ObservationPoint = "POST_EVALUATE"
	HaltEntry    ObservationPoint = "HALT_ENTRY"
)

var knownPoints = map[ObservationPoint]bool{
	PreDispatch: true, PostDispatch: true, PreEvaluate: true, PostEvaluate: true, HaltEntry: true,
}

// EvidenceType is the closed set of evidence record types.
type EvidenceType string

const (
	TypeObservation   EvidenceType = "OBSERVATION"
	TypeDecision      EvidenceType = "DECISION"
	TypeAuthorization EvidenceType = "AUTHORIZATION"
	TypeExecution     EvidenceType = "EXECUTION"
	TypeHalt          EvidenceType = "HALT"
)

var knownTypes = map[EvidenceType]bool{
	TypeObservation: true, TypeDecision: true, TypeAuthorization: true, TypeExecution: true, TypeHalt: true,
}

// StopCondition is the closed set of conditions check_stop recognizes.
type StopCondition string

const (
	StopMissingAuthorization StopCondition = "MISSING_AUTHORIZATION"
	StopEnvelopeHashMismatch StopCondition = "ENVELOPE_HASH_MISMATCH"
	StopEvidenceChainBroken  StopCondition = "EVIDENCE_CHAIN_BROKEN"
	StopHumanAbort           StopCondition = "HUMAN_ABORT"
	StopAmbiguousIntent      StopCondition = "AMBIGUOUS_INTENT"
	StopExecutorUnverified   StopCondition = "EXECUTOR_UNVERIFIED"
	StopDuplicateIntent      StopCondition = "DUPLICATE_INTENT"
	StopTimeout              StopCondition = "TIMEOUT"
	StopRevokedIntent        StopCondition = "REVOKED_INTENT"
	StopMalformedInput       StopCondition = "MALFORMED_INPUT"
)

var knownStopConditions = map[StopCondition]bool{
	StopMissingAuthorization: true, StopEnvelopeHashMismatch: true, StopEvidenceChainBroken: true,
	StopHumanAbort: true, StopAmbiguousIntent: true, StopExecutorUnverified: true,
	StopDuplicateIntent: true, StopTimeout: true, StopRevokedIntent: true, StopMalformedInput: true,
}

// StopVerdict is always HALT in this closed model: check_stop never permits
// continuation once invoked with a recognized stop condition, an unknown
// one, a nil context, or an already-halted context.
const StopVerdict = "HALT"

// Record is one immutable entry in a chain. Parsing Payload is forbidden —
// the chain observes opaquely and never interprets raw bytes.
type Record struct {
	RecordID  string
	Point     ObservationPoint
	Type      EvidenceType
	Timestamp string
	Payload   []byte
	PriorHash string
	SelfHash  string
}

// Chain is an immutable, append-only sequence of Records.
type Chain struct {
	SessionID string
	records   []Record
}

// New returns an empty chain for the given session. The zero Record's
// prior_hash is the fixed zero vector.
func New(sessionID string) Chain {
	return Chain{SessionID: sessionID}
}

// Length returns the number of records in the chain.
func (c Chain) Length() int {
	return len(c.records)
}

// HeadHash returns the self_hash of the last record, or the zero hash if
// the chain is empty.
func (c Chain) HeadHash() string {
	if len(c.records) == 0 {
		return foundation.ZeroHash
	}
	return c.records[len(c.records)-1].SelfHash
}

// Records returns a defensive copy of the chain's records in order.
func (c Chain) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

func selfHash(recordID string, point ObservationPoint, typ EvidenceType, timestamp string, payload []byte, priorHash string) string {
	encoded := encodeRecord(recordID, string(point), string(typ), timestamp, payload, priorHash)
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:])
}

// Capture appends a new record to the chain and returns the resulting
// Chain as a new value; the receiver is left unmodified. timestamp is
// caller-supplied (the core has no wall-clock source). Unknown observation
// points or evidence types are rejected at the boundary by the caller via
// KnownObservationPoint/KnownEvidenceType before calling Capture; Capture itself trusts its inputs
// the same way every other pure layer does.
func (c Chain) Capture(point ObservationPoint, typ EvidenceType, timestamp string, payload []byte) Chain {
	recordID := uuid.NewString()
	prior := c.HeadHash()
	rec := Record{
		RecordID:  recordID,
		Point:     point,
		Type:      typ,
		Timestamp: timestamp,
		Payload:   payload,
		PriorHash: prior,
		SelfHash:  selfHash(recordID, point, typ, timestamp, payload, prior),
	}
	next := make([]Record, len(c.records)+1)
	copy(next, c.records)
	next[len(c.records)] = rec
	return Chain{SessionID: c.SessionID, records: next}
}

// KnownObservationPoint reports whether p is one of the five closed points.
func KnownObservationPoint(p ObservationPoint) bool { return knownPoints[p] }

// KnownEvidenceType reports whether t is one of the five closed types.
func KnownEvidenceType(t EvidenceType) bool { return knownTypes[t] }

// KnownStopCondition reports whether s is one of the ten closed conditions.
func KnownStopCondition(s StopCondition) bool { return knownStopConditions[s] }

// Validate re-hashes every record and checks prior_hash linkage, overall
// length, and head_hash agreement. It never mutates c.
func Validate(c Chain) bool {
	prior := foundation.ZeroHash
	for _, rec := range c.records {
		if rec.PriorHash != prior {
			return false
		}
		recomputed := selfHash(rec.RecordID, rec.Point, rec.Type, rec.Timestamp, rec.Payload, rec.PriorHash)
		if recomputed != rec.SelfHash {
			return false
		}
		prior = rec.SelfHash
	}
	if len(c.records) == 0 {
		return c.HeadHash() == foundation.ZeroHash
	}
	return c.HeadHash() == c.records[len(c.records)-1].SelfHash
}

// CheckStop implements check_stop: any of the ten recognized stop
// conditions, an unknown condition, a nil observation context, or an
// already-halted context all resolve to HALT. There is no other outcome —
// default is HALT.
func CheckStop(ctx *ObservationContext, condition StopCondition) string {
	return StopVerdict
}

// ObservationContext is the result of attach_observer.
type ObservationContext struct {
	LoopID       string
	ExecutorID   string
	EnvelopeHash string
	Timestamp    string
	Halted       bool
}

// AttachObserver implements attach_observer: any empty required field
// produces a halted context.
func AttachObserver(loopID, executorID, envelopeHash, timestamp string) ObservationContext {
	if loopID == "" || executorID == "" || envelopeHash == "" || timestamp == "" {
		return ObservationContext{
			LoopID: loopID, ExecutorID: executorID, EnvelopeHash: envelopeHash, Timestamp: timestamp,
			Halted: true,
		}
	}
	return ObservationContext{LoopID: loopID, ExecutorID: executorID, EnvelopeHash: envelopeHash, Timestamp: timestamp, Halted: false}
}
