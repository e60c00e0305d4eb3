// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the kurmanji-corpus CLI.
// Subcommands cover the two-step review workflow (extract, then append
// after manual correction) and read-only tooling over the finished corpus.
package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/kurmanji-corpus/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Config keys shared by flags, the config file, and KURMANJI_* env vars.
const (
	keyStagingPath    = "staging_path"
	keyCorpusTextPath = "corpus_text_path"
	keyCorpusJSONPath = "corpus_json_path"
	keyIndexPath      = "index_path"
	keyStagingMode    = "staging_mode"
	keyMaxResults     = "max_results"
)

// rootCmd is the base command for the kurmanji-corpus CLI.
var rootCmd = &cobra.Command{
	Use:   "kurmanji-corpus",
	Short: "Build a reviewed Kurmanji text corpus from PDF documents",
	Long: `kurmanji-corpus extracts text from PDF documents into a staging file for
manual review, then appends the reviewed text to a JSON corpus and a plain
text corpus.

Typical workflow:
  kurmanji-corpus extract data/data_files/ciroka_rovi_u_ser.pdf
  (edit data/raw/raw_kurmanji.txt by hand)
  kurmanji-corpus append data/data_files/ciroka_rovi_u_ser.pdf

The corpus files have a single writer: append takes a lock next to the JSON
corpus and fails if another run holds it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		if used := viper.ConfigFileUsed(); used != "" {
			log.Debug().Str("file", used).Msg("using config file")
		}
		return nil
	},
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./kurmanji-corpus.yaml or ~/.config/kurmanji-corpus/config.yaml)")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.String("staging", types.DefaultStagingPath, "staging text file for manual review")
	flags.String("corpus-text", types.DefaultCorpusTextPath, "plain text corpus file")
	flags.String("corpus-json", types.DefaultCorpusJSONPath, "JSON corpus file")
	flags.String("index", types.DefaultIndexPath, "SQLite corpus index")

	_ = viper.BindPFlag(keyStagingPath, flags.Lookup("staging"))
	_ = viper.BindPFlag(keyCorpusTextPath, flags.Lookup("corpus-text"))
	_ = viper.BindPFlag(keyCorpusJSONPath, flags.Lookup("corpus-json"))
	_ = viper.BindPFlag(keyIndexPath, flags.Lookup("index"))

	viper.SetDefault(keyStagingMode, string(types.StagingOverwrite))
	viper.SetDefault(keyMaxResults, 20)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("kurmanji-corpus")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "kurmanji-corpus"))
		}
	}

	viper.SetEnvPrefix("KURMANJI")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			log.Warn().Err(err).Str("file", cfgFile).Msg("reading config file")
		}
	}
}

// corpusConfig assembles the corpus paths for pdfPath from flags, config
// file, and environment.
func corpusConfig(pdfPath string) types.CorpusConfig {
	return types.CorpusConfig{
		PDFPath:        pdfPath,
		StagingPath:    viper.GetString(keyStagingPath),
		CorpusTextPath: viper.GetString(keyCorpusTextPath),
		CorpusJSONPath: viper.GetString(keyCorpusJSONPath),
		StagingMode:    types.StagingMode(viper.GetString(keyStagingMode)),
	}
}

// indexConfig assembles the index settings.
func indexConfig() types.IndexConfig {
	return types.IndexConfig{
		Path:       viper.GetString(keyIndexPath),
		MaxResults: viper.GetInt(keyMaxResults),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
