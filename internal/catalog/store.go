// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists conversion outcomes in a SQLite database and
// renders reports and exports from them.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/spectext/pkg/types"
)

const dbFile = "spectext.db"

// Store manages the conversion catalog database.
type Store struct {
	db         *sql.DB
	catalogDir string
}

// NewStore opens or creates the catalog database at
// catalogDir/spectext.db, creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dir := cfg.CatalogDir
	if dir == "" {
		dir = "catalog"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, catalogDir: dir}
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
		`CREATE TABLE IF NOT EXISTS conversions (
			id TEXT PRIMARY KEY,
			source_path TEXT NOT NULL,
			output_path TEXT,
			pages INTEGER NOT NULL DEFAULT 0,
			bytes INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			error TEXT,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_status ON conversions(status)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record upserts the outcome of one conversion, keyed by the page-range
// identifier. Re-converting a chapter replaces its previous record. A
// skipped outcome means the prior output is still current, so it only
// inserts when no record exists and never overwrites one.
func (s *Store) Record(ctx context.Context, rec types.ConversionRecord) error {
	if rec.Status == types.ConversionSkipped {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO conversions (id, source_path, output_path, pages, bytes, status, error, converted_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING`,
			rec.ID, rec.SourcePath, rec.OutputPath, rec.Pages, rec.Bytes,
			string(rec.Status), rec.Error, rec.ConvertedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("recording conversion %s: %w", rec.ID, err)
		}
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, source_path, output_path, pages, bytes, status, error, converted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source_path = excluded.source_path,
			output_path = excluded.output_path,
			pages = excluded.pages,
			bytes = excluded.bytes,
			status = excluded.status,
			error = excluded.error,
			converted_at = excluded.converted_at`,
		rec.ID, rec.SourcePath, rec.OutputPath, rec.Pages, rec.Bytes,
		string(rec.Status), rec.Error, rec.ConvertedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording conversion %s: %w", rec.ID, err)
	}
	return nil
}

// RecordBatch records every conversion outcome of a batch run.
func (s *Store) RecordBatch(ctx context.Context, recs []types.ConversionRecord) error {
	for _, rec := range recs {
		if err := s.Record(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// All returns every catalogued conversion ordered by identifier.
func (s *Store) All(ctx context.Context) ([]types.ConversionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_path, output_path, pages, bytes, status, error, converted_at
		FROM conversions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var recs []types.ConversionRecord
	for rows.Next() {
		var rec types.ConversionRecord
		var status, convertedAt string
		var outputPath, errMsg sql.NullString
		if err := rows.Scan(&rec.ID, &rec.SourcePath, &outputPath, &rec.Pages,
			&rec.Bytes, &status, &errMsg, &convertedAt); err != nil {
			return nil, fmt.Errorf("scanning conversion row: %w", err)
		}
		rec.OutputPath = outputPath.String
		rec.Error = errMsg.String
		rec.Status = types.ConversionStatus(status)
		if ts, err := time.Parse(time.RFC3339, convertedAt); err == nil {
			rec.ConvertedAt = ts
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
