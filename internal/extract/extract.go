// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns a PDF into cleaned, sentence-per-line text and
// stages it on disk for manual review.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/kurmanji-corpus/internal/fsutil"
	"github.com/pdiddy/kurmanji-corpus/pkg/types"
)

// ErrInvalidPageRange is returned for negative bounds or a start page after
// the end page.
var ErrInvalidPageRange = errors.New("invalid page range")

// Extractor reads one source document and writes its normalized text to the
// staging file.
type Extractor struct {
	cfg    types.CorpusConfig
	source LayoutSource
	log    zerolog.Logger
}

// New creates an Extractor for cfg.PDFPath reading layout from source. It
// rejects malformed page ranges before any file is opened.
func New(cfg types.CorpusConfig, source LayoutSource, log zerolog.Logger) (*Extractor, error) {
	if cfg.PDFPath == "" {
		return nil, errors.New("no PDF path configured")
	}
	if cfg.StagingPath == "" {
		return nil, errors.New("no staging path configured")
	}
	if err := validateRange(cfg.Pages); err != nil {
		return nil, err
	}
	if cfg.Pages.Partial() {
		log.Warn().Int("start", cfg.Pages.Start).Int("end", cfg.Pages.End).
			Msg("page range needs both bounds; extracting all pages")
		cfg.Pages = types.PageRange{}
	}
	if cfg.StagingMode == "" {
		cfg.StagingMode = types.StagingOverwrite
	}

	switch cfg.StagingMode {
	case types.StagingOverwrite, types.StagingAppend:
	default:
		return nil, fmt.Errorf("unsupported staging mode %q: use overwrite or append", cfg.StagingMode)
	}

	return &Extractor{cfg: cfg, source: source, log: log}, nil
}

func validateRange(r types.PageRange) error {
	if r.Start < 0 || r.End < 0 {
		return fmt.Errorf("%w: bounds must be positive, got %d-%d", ErrInvalidPageRange, r.Start, r.End)
	}
	if r.IsSet() && r.Start > r.End {
		return fmt.Errorf("%w: start page %d is after end page %d", ErrInvalidPageRange, r.Start, r.End)
	}
	return nil
}

// Run extracts the document and writes the result to the staging file.
// It returns the normalized text.
func (e *Extractor) Run(ctx context.Context) (string, error) {
	text, err := e.Extract(ctx)
	if err != nil {
		return "", err
	}
	if err := e.Stage(text); err != nil {
		return "", err
	}
	return text, nil
}

// Extract concatenates the text elements of every selected page and
// normalizes the result. It does not touch the staging file.
func (e *Extractor) Extract(ctx context.Context) (string, error) {
	pages, err := e.source.Pages(ctx, e.cfg.PDFPath, e.cfg.Pages)
	if err != nil {
		return "", err
	}

	var raw strings.Builder
	elements := 0
	for _, p := range pages {
		for _, el := range p.Elements {
			if el.Kind != KindText {
				continue
			}
			raw.WriteString(el.Text)
			elements++
		}
	}

	text := Normalize(raw.String())
	e.log.Debug().
		Str("pdf", e.cfg.PDFPath).
		Str("pages", e.cfg.Pages.String()).
		Int("page_count", len(pages)).
		Int("text_elements", elements).
		Int("raw_bytes", raw.Len()).
		Int("clean_bytes", len(text)).
		Msg("extracted text")
	return text, nil
}

// Stage writes text plus a trailing newline to the staging file, replacing
// or extending it according to the configured staging mode.
func (e *Extractor) Stage(text string) error {
	data := []byte(text + "\n")

	var err error
	if e.cfg.StagingMode == types.StagingAppend {
		err = fsutil.AppendFileAtomic(e.cfg.StagingPath, data)
	} else {
		err = fsutil.WriteFileAtomic(e.cfg.StagingPath, data)
	}
	if err != nil {
		return fmt.Errorf("writing staging file %s: %w", e.cfg.StagingPath, err)
	}

	e.log.Debug().Str("staging", e.cfg.StagingPath).Str("mode", string(e.cfg.StagingMode)).Msg("staged text")
	return nil
}
