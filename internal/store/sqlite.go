package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/northwood-systems/govkernel/pkg/chain"
)

// SQLiteStore is the embedded, dev/demo-friendly AuditTrailStore backend:
// pure-Go, no cgo, one file on disk. Adapted from the teacher's
// SQLiteReceiptStore (schema-on-construct migration, positional binds).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite-backed store at dsn and runs
// its migration.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS chain_records (
		session_id TEXT NOT NULL,
		record_id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL,
		point TEXT NOT NULL,
		evidence_type TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		payload BLOB,
		prior_hash TEXT NOT NULL,
		self_hash TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_chain_records_session ON chain_records(session_id, seq);
	`
	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Append implements AuditTrailStore.
func (s *SQLiteStore) Append(ctx context.Context, sessionID string, record chain.Record) error {
	var seq int
	row := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), -1) + 1 FROM chain_records WHERE session_id = ?`, sessionID)
	if err := row.Scan(&seq); err != nil {
		return fmt.Errorf("append chain record: %w", err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chain_records (session_id, record_id, seq, point, evidence_type, timestamp, payload, prior_hash, self_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, record.RecordID, seq, string(record.Point), string(record.Type),
		record.Timestamp, record.Payload, record.PriorHash, record.SelfHash,
	)
	if err != nil {
		return fmt.Errorf("append chain record: %w", err)
	}
	return nil
}

// Records implements AuditTrailStore.
func (s *SQLiteStore) Records(ctx context.Context, sessionID string) ([]chain.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT record_id, point, evidence_type, timestamp, payload, prior_hash, self_hash
		FROM chain_records WHERE session_id = ? ORDER BY seq ASC`, sessionID)
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
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
