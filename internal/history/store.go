// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a record of every CLI operation in a local
// SQLite database so past runs can be listed and exported.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/AnjaneyaKaushik/docsmart-backend/pkg/types"
)

const defaultMaxResults = 20

// Store manages the operation history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at cfg.Path, creating the
// parent directory and schema as needed.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("history database path not configured")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS operations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			op TEXT NOT NULL,
			input TEXT,
			output TEXT,
			status TEXT NOT NULL,
			error TEXT,
			started_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_operations_op ON operations(op)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Append records one finished operation.
func (s *Store) Append(ctx context.Context, rec types.Operation) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO operations (op, input, output, status, error, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Op, rec.Input, rec.Output, string(rec.Status), rec.Error,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("inserting history record: %w", err)
	}
	return nil
}

// QueryOptions filters a history listing.
type QueryOptions struct {
	// Op restricts results to one operation name (empty = all).
	Op string

	// Limit caps the number of records (0 = store default).
	Limit int
}

// List returns the most recent operations, newest first.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.Operation, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	query := `SELECT id, op, input, output, status, error, started_at, duration_ms
		 FROM operations`
	args := []any{}
	if opts.Op != "" {
		query += ` WHERE op = ?`
		args = append(args, opts.Op)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty history serializes as an empty list, not null.
	records := []types.Operation{}
	for rows.Next() {
		var rec types.Operation
		var status, startedAt string
		var durationMs int64
		if err := rows.Scan(&rec.ID, &rec.Op, &rec.Input, &rec.Output,
			&status, &rec.Error, &startedAt, &durationMs); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		rec.Status = types.OpStatus(status)
		if ts, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			rec.StartedAt = ts
		}
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		records = append(records, rec)
	}
	return records, rows.Err()
}
