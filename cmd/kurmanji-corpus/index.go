// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/kurmanji-corpus/internal/corpus"
	"github.com/pdiddy/kurmanji-corpus/internal/index"
)

// --- index subcommand ---

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the SQLite search index from the JSON corpus",
	Long: `Index reads the JSON corpus and replaces the contents of the SQLite
index with one row per document and one row per sentence line. The index is
derived data and can be deleted at any time.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	records, err := corpus.Load(viper.GetString(keyCorpusJSONPath))
	if err != nil {
		return err
	}

	store, err := index.Open(indexConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Rebuild(cmd.Context(), records, os.Stdout)
	return err
}

// --- search subcommand ---

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed sentences",
	Long: `Search looks up sentences in the SQLite index that contain the query
text, optionally limited to one source document. Run index first.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	fileName, _ := cmd.Flags().GetString("file")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	opts := index.QueryOptions{
		Query:      strings.Join(args, " "),
		FileName:   fileName,
		MaxResults: limit,
	}
	if opts.IsEmpty() {
		return fmt.Errorf("%w: provide a search query or --file", index.ErrEmptyQuery)
	}

	store, err := index.Open(indexConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	hits, err := store.Search(cmd.Context(), opts)
	if err != nil {
		return err
	}
	return formatSearchOutput(hits, jsonOutput)
}

func formatSearchOutput(hits []index.Hit, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-30s  %-5s  %s\n", "File", "Line", "Sentence")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, h := range hits {
		fmt.Fprintf(os.Stdout, "%-30s  %-5d  %s\n", truncateName(h.FileName, 30), h.LineNo, h.Text)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(hits))
	return nil
}

// truncateName shortens name to at most width characters, marking the cut
// with "...". It counts runes so multi-byte letters are never split.
func truncateName(name string, width int) string {
	runes := []rune(name)
	if len(runes) <= width {
		return name
	}
	return string(runes[:width-3]) + "..."
}

func init() {
	searchCmd.Flags().String("file", "", "only search sentences from this source file name")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(searchCmd)
}
