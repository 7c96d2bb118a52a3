// Package store persists pkg/chain.Record values durably — an ambient
// concern the pure core never performs itself (pkg/chain holds records
// only in memory, for the lifetime of one Chain value). Adapted from the
// teacher's AuditStore/receipt-store split: one interface, two SQL
// backends, each opened through its own constructor (NewSQLiteStore,
// NewPostgresStore); this package does not pick a backend from the DSN.
package store

import (
	"context"
	"errors"

	"github.com/northwood-systems/govkernel/pkg/chain"
)

// ErrNotFound is returned when a lookup finds no matching record.
var ErrNotFound = errors.New("store: record not found")

// AuditTrailStore persists the append-only records a Chain produces so
// they survive past one process's lifetime and can be replayed into a
// fresh chain.Chain for verification.
type AuditTrailStore interface {
	// Append durably records one chain.Record for sessionID. Callers are
	// expected to have already validated the record via chain.Validate
	// before it reaches the store — this interface does not re-derive
	// hashes, it only persists what the core already certified.
	Append(ctx context.Context, sessionID string, record chain.Record) error

	// Records returns every record stored for sessionID in capture order.
	Records(ctx context.Context, sessionID string) ([]chain.Record, error)

	// Close releases the underlying connection.
	Close() error
}
