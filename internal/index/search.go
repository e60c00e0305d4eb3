// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyQuery is returned by Search when neither a query nor a filter is
// given.
var ErrEmptyQuery = errors.New("query or filter required")

// QueryOptions holds parameters for sentence searches.
type QueryOptions struct {
	// Query is a substring to look for. Matching ignores ASCII case.
	Query string

	// FileName restricts hits to one source document.
	FileName string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search term or filter.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.FileName == ""
}

// Hit is one matching sentence with its provenance.
type Hit struct {
	FileName string `json:"file_name" yaml:"file_name"`
	Position int    `json:"position" yaml:"position"`
	LineNo   int    `json:"line_no" yaml:"line_no"`
	Text     string `json:"text" yaml:"text"`
}

// Search returns sentences matching opts in corpus order.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]Hit, error) {
	if opts.IsEmpty() {
		return nil, ErrEmptyQuery
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT d.file_name, d.position, se.line_no, se.text
		FROM sentences se
		JOIN documents d ON d.position = se.document_position
		WHERE 1=1`)

	if opts.Query != "" {
		qb.WriteString(` AND se.text LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(opts.Query)+"%")
	}
	if opts.FileName != "" {
		qb.WriteString(` AND d.file_name = ?`)
		args = append(args, opts.FileName)
	}

	qb.WriteString(` ORDER BY d.position, se.line_no LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.FileName, &h.Position, &h.LineNo, &h.Text); err != nil {
			return nil, fmt.Errorf("scanning hit: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// escapeLike escapes LIKE wildcards so the query matches literally.
func escapeLike(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(q)
}

// Stats holds index totals.
type Stats struct {
	Documents int `json:"documents" yaml:"documents"`
	Sentences int `json:"sentences" yaml:"sentences"`
	Chars     int `json:"chars" yaml:"chars"`
	Words     int `json:"words" yaml:"words"`
}

// Stats returns document, sentence, character and word totals.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*), coalesce(sum(char_count), 0), coalesce(sum(word_count), 0) FROM documents`,
	).Scan(&st.Documents, &st.Chars, &st.Words)
	if err != nil {
		return Stats{}, fmt.Errorf("counting documents: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM sentences`).Scan(&st.Sentences); err != nil {
		return Stats{}, fmt.Errorf("counting sentences: %w", err)
	}
	return st, nil
}
