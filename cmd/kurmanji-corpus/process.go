// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pdiddy/kurmanji-corpus/internal/corpus"
)

var processCmd = &cobra.Command{
	Use:   "process <pdf>",
	Short: "Extract a PDF and append it to the corpus without a review pause",
	Long: `Process runs extract followed immediately by append. Use it for
documents that need no manual correction; otherwise run extract, review the
staging file, and then run append.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	addExtractFlags(processCmd)
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if _, err := extractToStaging(cmd, args[0]); err != nil {
		return fmt.Errorf("extracting: %w", err)
	}

	a, err := corpus.NewAppender(corpusConfig(args[0]), log.Logger)
	if err != nil {
		return err
	}
	if _, err := a.Append(os.Stdout); err != nil {
		return fmt.Errorf("appending: %w", err)
	}
	return nil
}
