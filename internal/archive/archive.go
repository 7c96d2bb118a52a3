// Package archive persists evidence-bundle payloads to durable blob
// storage behind one interface with two backends, the way the teacher
// splits its ledger implementations (postgres_ledger.go next to
// sql_ledger.go) by storage technology rather than by domain concept.
// This is a caller-side concern: pkg/evidence classifies bundles purely
// in memory and never writes anything itself.
package archive

import "context"

// Archive durably stores the raw bytes behind an evidence bundle's
// sources so a REVIEW_REQUIRED or ESCALATE verdict can later be
// re-examined by a human without depending on the process that produced
// it still being alive.
type Archive interface {
	// Put stores payload under key and returns the storage-qualified
	// location (e.g. "s3://bucket/key" or "gs://bucket/key").
	Put(ctx context.Context, key string, payload []byte) (location string, err error)

	// Get retrieves the payload previously stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
}
