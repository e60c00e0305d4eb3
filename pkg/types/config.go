// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Default file locations, relative to the working directory.
const (
	DefaultStagingPath    = "data/raw/raw_kurmanji.txt"
	DefaultCorpusTextPath = "data/processed/kurmanji.txt"
	DefaultCorpusJSONPath = "data/processed/kurmanji.json"
	DefaultIndexPath      = "data/processed/kurmanji.db"
	DefaultExportPath     = "data/processed/kurmanji.yaml"
)

// PageRange selects an inclusive, 1-indexed range of pages. A zero bound
// means the bound is unset; a range is applied only when both are set.
type PageRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// IsSet reports whether both bounds are given.
func (r PageRange) IsSet() bool {
	return r.Start > 0 && r.End > 0
}

// Partial reports whether exactly one bound is given.
func (r PageRange) Partial() bool {
	return (r.Start > 0) != (r.End > 0)
}

// Contains reports whether the 1-indexed page n falls inside the range.
// An unset range contains every page.
func (r PageRange) Contains(n int) bool {
	if !r.IsSet() {
		return true
	}
	return n >= r.Start && n <= r.End
}

func (r PageRange) String() string {
	if !r.IsSet() {
		return "all"
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// StagingMode controls how extraction writes the staging file.
type StagingMode string

const (
	// StagingOverwrite replaces the staging file on every extraction run.
	StagingOverwrite StagingMode = "overwrite"
	// StagingAppend adds each extraction to the end of the staging file so
	// several documents can be reviewed before a single append.
	StagingAppend StagingMode = "append"
)

// CorpusConfig holds every path the extractor and appender touch.
type CorpusConfig struct {
	// PDFPath is the source document. Its base name becomes the record's file_name.
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`

	// StagingPath is the human-editable intermediate text file.
	StagingPath string `json:"staging_path" yaml:"staging_path"`

	// CorpusTextPath is the append-only plain-text corpus.
	CorpusTextPath string `json:"corpus_text_path" yaml:"corpus_text_path"`

	// CorpusJSONPath is the append-only JSON array of records.
	CorpusJSONPath string `json:"corpus_json_path" yaml:"corpus_json_path"`

	// Pages restricts extraction to a page range.
	Pages PageRange `json:"page_range" yaml:"page_range"`

	// StagingMode selects overwrite (default) or append for the staging file.
	StagingMode StagingMode `json:"staging_mode,omitempty" yaml:"staging_mode,omitempty"`
}

// DefaultCorpusConfig returns a config with the default file locations and
// no source document.
func DefaultCorpusConfig() CorpusConfig {
	return CorpusConfig{
		StagingPath:    DefaultStagingPath,
		CorpusTextPath: DefaultCorpusTextPath,
		CorpusJSONPath: DefaultCorpusJSONPath,
		StagingMode:    StagingOverwrite,
	}
}

// IndexConfig holds settings for the SQLite corpus index.
type IndexConfig struct {
	// Path is the SQLite database file.
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of search hits (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
