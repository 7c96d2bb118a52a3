package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/northwood-systems/govkernel/pkg/chain"
)

// PostgresStore is the production AuditTrailStore backend. Adapted from
// the teacher's PostgresLedger: schema-on-Init, context-scoped queries.
// Unlike the teacher's ledger, this store has no tenant column or
// row-level-security policy — spec.md has no multi-tenancy concept, so
// carrying RLS/tenant_id forward here would be an ungrounded addition.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a Postgres-backed store and runs its migration.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres store: %w", err)
	}
	s := &PostgresStore{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS chain_records (
	session_id TEXT NOT NULL,
	record_id TEXT PRIMARY KEY,
	seq BIGSERIAL,
	point TEXT NOT NULL,
	evidence_type TEXT NOT NULL,
	timestamp TEXT NOT NULL,
	payload BYTEA,
	prior_hash TEXT NOT NULL,
	self_hash TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chain_records_session ON chain_records(session_id, seq);
`

func (s *PostgresStore) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, postgresSchema)
	return err
}

// Append implements AuditTrailStore.
func (s *PostgresStore) Append(ctx context.Context, sessionID string, record chain.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chain_records (session_id, record_id, point, evidence_type, timestamp, payload, prior_hash, self_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		sessionID, record.RecordID, string(record.Point), string(record.Type),
		record.Timestamp, record.Payload, record.PriorHash, record.SelfHash,
	)
	if err != nil {
		return fmt.Errorf("append chain record: %w", err)
	}
	return nil
}

// Records implements AuditTrailStore.
func (s *PostgresStore) Records(ctx context.Context, sessionID string) ([]chain.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT record_id, point, evidence_type, timestamp, payload, prior_hash, self_hash
		FROM chain_records WHERE session_id = $1 ORDER BY seq ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query chain records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []chain.Record
	for rows.Next() {
		var r chain.Record
		var point, typ string
		if err := rows.Scan(&r.RecordID, &point, &typ, &r.Timestamp, &r.Payload, &r.PriorHash, &r.SelfHash); err != nil {
			return nil, fmt.Errorf("scan chain record: %w", err)
		}
		r.Point = chain.ObservationPoint(point)
		r.Type = chain.EvidenceType(typ)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// Close implements AuditTrailStore.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
