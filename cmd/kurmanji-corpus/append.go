// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pdiddy/kurmanji-corpus/internal/corpus"
)

var appendCmd = &cobra.Command{
	Use:   "append <pdf>",
	Short: "Append the reviewed staging file to the corpus",
	Long: `Append reads the reviewed staging file and adds one record to the JSON
corpus (file name, character count, word count, text) and the text to the
plain text corpus. The PDF argument names the source document; only its base
name is recorded.

Running append twice on the same staging file adds two identical records.`,
	Args: cobra.ExactArgs(1),
	RunE: runAppend,
}

func init() {
	rootCmd.AddCommand(appendCmd)
}

func runAppend(cmd *cobra.Command, args []string) error {
	a, err := corpus.NewAppender(corpusConfig(args[0]), log.Logger)
	if err != nil {
		return err
	}
	_, err = a.Append(os.Stdout)
	return err
}
