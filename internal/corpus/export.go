// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/kurmanji-corpus/internal/fsutil"
	"github.com/pdiddy/kurmanji-corpus/pkg/types"
)

// ExportYAML writes records to path as a YAML sequence in corpus order.
func ExportYAML(records []types.Record, path string) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := fsutil.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("writing export %s: %w", path, err)
	}
	return nil
}
