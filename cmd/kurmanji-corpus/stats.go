// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/kurmanji-corpus/internal/corpus"
	"github.com/pdiddy/kurmanji-corpus/internal/index"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print corpus totals",
	Long: `Stats reads the JSON corpus and prints the number of documents and the
total character and word counts, followed by one line per document.
With --from-index the totals come from the SQLite index instead and include
the number of indexed sentence lines.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if fromIndex, _ := cmd.Flags().GetBool("from-index"); fromIndex {
			st, err := indexStats(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(st)
			}
			fmt.Printf("documents: %d, sentences: %d, words: %d, chars: %d\n",
				st.Documents, st.Sentences, st.Words, st.Chars)
			return nil
		}

		records, err := corpus.Load(viper.GetString(keyCorpusJSONPath))
		if err != nil {
			return err
		}
		summary := corpus.Summarize(records)

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		}

		for i, r := range records {
			fmt.Printf("%4d  %-40s  %8d words  %9d chars\n", i+1, r.FileName, r.WordCount, r.CharCount)
		}
		fmt.Printf("\ndocuments: %d, words: %d, chars: %d\n", summary.Documents, summary.Words, summary.Chars)
		return nil
	},
}

// indexStats reads totals from the SQLite index. Run index first.
func indexStats(ctx context.Context) (index.Stats, error) {
	store, err := index.Open(indexConfig())
	if err != nil {
		return index.Stats{}, err
	}
	defer store.Close()
	return store.Stats(ctx)
}

func init() {
	statsCmd.Flags().Bool("json", false, "output totals as JSON")
	statsCmd.Flags().Bool("from-index", false, "read totals from the SQLite index")
	rootCmd.AddCommand(statsCmd)
}
