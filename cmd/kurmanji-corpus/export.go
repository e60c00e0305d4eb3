// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/kurmanji-corpus/internal/corpus"
	"github.com/pdiddy/kurmanji-corpus/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the JSON corpus to YAML",
	Long: `Export writes every corpus record, in corpus order, to a YAML file.
Multi-line text is written as literal blocks, which is easier to read and
diff during review than the JSON corpus.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		records, err := corpus.Load(viper.GetString(keyCorpusJSONPath))
		if err != nil {
			return err
		}
		if err := corpus.ExportYAML(records, out); err != nil {
			return err
		}
		fmt.Printf("Exported %d records to %s\n", len(records), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", types.DefaultExportPath, "YAML output file")
	rootCmd.AddCommand(exportCmd)
}
