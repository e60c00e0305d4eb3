// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pdiddy/kurmanji-corpus/internal/extract"
	"github.com/pdiddy/kurmanji-corpus/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract <pdf>",
	Short: "Extract and clean PDF text into the staging file",
	Long: `Extract reads the text of a PDF (optionally a page range), strips
punctuation noise, collapses whitespace, and writes one sentence per line to
the staging file for manual review. The staging file is overwritten unless
--append-staging is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	addExtractFlags(extractCmd)
	rootCmd.AddCommand(extractCmd)
}

// addExtractFlags registers the page range and staging flags shared by
// extract and process.
func addExtractFlags(cmd *cobra.Command) {
	cmd.Flags().Int("start", 0, "first page to extract (1-indexed, requires --end)")
	cmd.Flags().Int("end", 0, "last page to extract (inclusive, requires --start)")
	cmd.Flags().Bool("append-staging", false, "append to the staging file instead of overwriting it")
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, err := extractToStaging(cmd, args[0])
	if err != nil {
		return err
	}
	cfg := corpusConfig(args[0])
	lines := 0
	if text != "" {
		lines = strings.Count(text, "\n") + 1
	}
	fmt.Fprintf(os.Stdout, "staged: %s (%d lines, %d bytes) -> %s\n",
		args[0], lines, len(text), cfg.StagingPath)
	return nil
}

// extractToStaging runs the extractor for pdfPath with the page range and
// staging flags of cmd.
func extractToStaging(cmd *cobra.Command, pdfPath string) (string, error) {
	start, _ := cmd.Flags().GetInt("start")
	end, _ := cmd.Flags().GetInt("end")
	appendStaging, _ := cmd.Flags().GetBool("append-staging")

	cfg := corpusConfig(pdfPath)
	cfg.Pages = types.PageRange{Start: start, End: end}
	if appendStaging {
		cfg.StagingMode = types.StagingAppend
	}

	ex, err := extract.New(cfg, extract.PDFSource{}, log.Logger)
	if err != nil {
		return "", err
	}
	return ex.Run(cmd.Context())
}
