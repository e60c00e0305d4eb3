// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/kurmanji-corpus/internal/extract"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pdf>...",
	Short: "Print the page count of PDF files",
	Long: `Inspect validates each PDF and prints its page count, which helps pick
--start and --end for extract.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			n, err := extract.PageCount(path)
			if err != nil {
				fmt.Printf("failed:  %s (%v)\n", path, err)
				failed++
				continue
			}
			fmt.Printf("%s: %d pages\n", path, n)
		}
		if failed > 0 {
			return fmt.Errorf("%d file(s) could not be read", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
