// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index keeps a SQLite index of the JSON corpus so reviewers can
// search sentences and count what has been collected. The index is derived
// data: Rebuild replaces it wholesale from the corpus records.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/kurmanji-corpus/pkg/types"
)

const defaultMaxResults = 20

// Store manages the corpus index database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the index database at cfg.Path and creates the
// schema if it does not exist.
func Open(cfg types.IndexConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("no index path configured")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
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
		`CREATE TABLE IF NOT EXISTS documents (
			position INTEGER PRIMARY KEY,
			file_name TEXT NOT NULL,
			char_count INTEGER NOT NULL,
			word_count INTEGER NOT NULL,
			text TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sentences (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			document_position INTEGER NOT NULL REFERENCES documents(position) ON DELETE CASCADE,
			line_no INTEGER NOT NULL,
			text TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sentences_document ON sentences(document_position)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_file_name ON documents(file_name)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RebuildSummary holds counts from an index rebuild.
type RebuildSummary struct {
	Documents int
	Sentences int
}

// Rebuild replaces the index contents with records, in corpus order, inside
// a single transaction. Each non-blank line of a record's text becomes one
// sentence row.
func (s *Store) Rebuild(ctx context.Context, records []types.Record, w io.Writer) (RebuildSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RebuildSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM sentences`, `DELETE FROM documents`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return RebuildSummary{}, fmt.Errorf("clearing index: %w", err)
		}
	}

	docStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO documents (position, file_name, char_count, word_count, text) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return RebuildSummary{}, fmt.Errorf("preparing document insert: %w", err)
	}
	defer docStmt.Close()

	sentStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO sentences (document_position, line_no, text) VALUES (?, ?, ?)`)
	if err != nil {
		return RebuildSummary{}, fmt.Errorf("preparing sentence insert: %w", err)
	}
	defer sentStmt.Close()

	var summary RebuildSummary
	for pos, rec := range records {
		if _, err := docStmt.ExecContext(ctx, pos, rec.FileName, rec.CharCount, rec.WordCount, rec.Text); err != nil {
			return RebuildSummary{}, fmt.Errorf("inserting document %d (%s): %w", pos, rec.FileName, err)
		}

		lines := 0
		for i, line := range strings.Split(rec.Text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if _, err := sentStmt.ExecContext(ctx, pos, i+1, line); err != nil {
				return RebuildSummary{}, fmt.Errorf("inserting sentence %d of %s: %w", i+1, rec.FileName, err)
			}
			lines++
		}

		fmt.Fprintf(w, "indexed %s (%d sentences)\n", rec.FileName, lines)
		summary.Documents++
		summary.Sentences += lines
	}

	if err := tx.Commit(); err != nil {
		return RebuildSummary{}, fmt.Errorf("committing index: %w", err)
	}

	fmt.Fprintf(w, "\ndocuments: %d, sentences: %d\n", summary.Documents, summary.Sentences)
	return summary, nil
}
