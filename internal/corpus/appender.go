// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"

	"github.com/pdiddy/kurmanji-corpus/internal/fsutil"
	"github.com/pdiddy/kurmanji-corpus/pkg/types"
)

// ErrCorpusLocked is returned when another process holds the corpus lock.
var ErrCorpusLocked = errors.New("corpus is locked by another writer")

// Appender folds the reviewed staging file into the permanent corpus.
type Appender struct {
	cfg types.CorpusConfig
	log zerolog.Logger
}

// NewAppender creates an Appender for the paths in cfg. PDFPath supplies the
// record's file name.
func NewAppender(cfg types.CorpusConfig, log zerolog.Logger) (*Appender, error) {
	switch {
	case cfg.PDFPath == "":
		return nil, errors.New("no PDF path configured")
	case cfg.StagingPath == "":
		return nil, errors.New("no staging path configured")
	case cfg.CorpusTextPath == "":
		return nil, errors.New("no corpus text path configured")
	case cfg.CorpusJSONPath == "":
		return nil, errors.New("no corpus JSON path configured")
	}
	return &Appender{cfg: cfg, log: log}, nil
}

// Append reads the staging file, appends its record to the JSON corpus and
// its text to the text corpus, and returns the new record. The staging file
// is left in place; appending it again adds a second, identical record.
func (a *Appender) Append(w io.Writer) (types.Record, error) {
	unlock, err := a.lock()
	if err != nil {
		return types.Record{}, err
	}
	defer unlock()

	data, err := os.ReadFile(a.cfg.StagingPath)
	if err != nil {
		return types.Record{}, fmt.Errorf("reading staging file: %w", err)
	}
	content := string(data)
	rec := NewRecord(filepath.Base(a.cfg.PDFPath), content)

	entries, err := loadRaw(a.cfg.CorpusJSONPath)
	if err != nil {
		return types.Record{}, err
	}

	encoded, err := marshalIndent(rec)
	if err != nil {
		return types.Record{}, fmt.Errorf("encoding record: %w", err)
	}
	entries = append(entries, json.RawMessage(encoded))

	out, err := marshalIndent(entries)
	if err != nil {
		return types.Record{}, fmt.Errorf("encoding corpus: %w", err)
	}
	if err := fsutil.WriteFileAtomic(a.cfg.CorpusJSONPath, out); err != nil {
		return types.Record{}, fmt.Errorf("writing corpus %s: %w", a.cfg.CorpusJSONPath, err)
	}

	if err := fsutil.AppendFileAtomic(a.cfg.CorpusTextPath, []byte(content+"\n")); err != nil {
		return types.Record{}, fmt.Errorf("appending to text corpus %s: %w", a.cfg.CorpusTextPath, err)
	}

	a.log.Debug().
		Str("corpus_json", a.cfg.CorpusJSONPath).
		Str("corpus_text", a.cfg.CorpusTextPath).
		Int("records", len(entries)).
		Msg("corpus updated")
	fmt.Fprintf(w, "appended: %s (%d words, %d chars, record %d)\n",
		rec.FileName, rec.WordCount, rec.CharCount, len(entries))
	return rec, nil
}

// lock takes the exclusive corpus lock next to the JSON corpus and returns
// the function that releases it.
func (a *Appender) lock() (func(), error) {
	dir := filepath.Dir(a.cfg.CorpusJSONPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	fl := flock.New(a.cfg.CorpusJSONPath + ".lock")
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking corpus: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrCorpusLocked, fl.Path())
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			a.log.Warn().Err(err).Str("lock", fl.Path()).Msg("releasing corpus lock")
		}
	}, nil
}
