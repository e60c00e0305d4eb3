// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus maintains the append-only Kurmanji corpus: a JSON array of
// per-document records and a flat text file holding every reviewed document.
//
// Both files have a single writer. Append holds an exclusive lock file for
// the whole read-append-rewrite sequence and replaces each file through a
// temp-file rename, so an interrupted run leaves the previous corpus intact.
package corpus

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/kurmanji-corpus/pkg/types"
)

// NewRecord builds the corpus record for a reviewed document. Counts are
// taken over the trimmed text that is stored in the record.
func NewRecord(fileName, content string) types.Record {
	text := strings.TrimSpace(content)
	return types.Record{
		FileName:  fileName,
		CharCount: utf8.RuneCountInString(text),
		WordCount: len(strings.Fields(text)),
		Text:      text,
	}
}

// Load reads the records of the JSON corpus at path in corpus order. A
// missing file is an empty corpus.
func Load(path string) ([]types.Record, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []types.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}

	var records []types.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing corpus %s: %w", path, err)
	}
	if records == nil {
		records = []types.Record{}
	}
	return records, nil
}

// loadRaw reads the JSON corpus keeping every entry byte-for-byte, so keys
// added by hand during review survive a rewrite.
func loadRaw(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing corpus %s: %w", path, err)
	}
	if entries == nil {
		entries = []json.RawMessage{}
	}
	return entries, nil
}

// marshalIndent encodes v with 4-space indentation, leaving non-ASCII and
// HTML characters unescaped. No trailing newline is written.
func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Summary holds corpus totals.
type Summary struct {
	Documents int `json:"documents" yaml:"documents"`
	Chars     int `json:"chars" yaml:"chars"`
	Words     int `json:"words" yaml:"words"`
}

// Summarize totals the stored counts of records.
func Summarize(records []types.Record) Summary {
	s := Summary{Documents: len(records)}
	for _, r := range records {
		s.Chars += r.CharCount
		s.Words += r.WordCount
	}
	return s
}
