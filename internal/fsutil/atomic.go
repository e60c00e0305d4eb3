// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fsutil provides crash-safe file writes shared across stages.
// Every write lands in a temporary file in the destination directory and is
// renamed over the target, so readers see either the old or the new content.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const filePerm = 0o644

// WriteFileAtomic replaces path with data. Missing parent directories are
// created.
func WriteFileAtomic(path string, data []byte) error {
	return replace(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// AppendFileAtomic replaces path with its current content followed by data.
// A missing file is treated as empty.
func AppendFileAtomic(path string, data []byte) error {
	return replace(path, func(w io.Writer) error {
		existing, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return err
		default:
			_, copyErr := io.Copy(w, existing)
			existing.Close()
			if copyErr != nil {
				return copyErr
			}
		}
		_, err = w.Write(data)
		return err
	})
}

// replace streams fill into a temp file next to path and renames it into
// place. The temp file is removed on any failure.
func replace(path string, fill func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	fillErr := fill(tmpFile)
	syncErr := tmpFile.Sync()
	closeErr := tmpFile.Close()
	if fillErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, fillErr)
	}
	if syncErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("syncing temp file: %w", syncErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, filePerm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions on temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
