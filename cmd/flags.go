package cmd

import (
	"fmt"
	"os"

	app "github.com/gnames/gnpokedex/pkg"
	"github.com/gnames/gnpokedex/pkg/config"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", app.Version, app.Build)
		os.Exit(0)
	}
}

// corpusFlags converts explicitly set --corpus and --format flags into
// options.
func corpusFlags(cmd *cobra.Command) []config.Option {
	var res []config.Option
	if cmd.Flags().Changed("corpus") {
		s, _ := cmd.Flags().GetString("corpus")
		res = append(res, config.OptCorpusPath(s))
	}
	if cmd.Flags().Changed("format") {
		s, _ := cmd.Flags().GetString("format")
		res = append(res, config.OptCorpusFormat(s))
	}
	return res
}

// languageFlag adds the --lang flag shared by commands that localize
// their output.
func languageFlag(cmd *cobra.Command, lang *string) {
	cmd.Flags().StringVarP(
		lang, "lang", "l", "",
		"language id, identifier or ISO code (default from config)",
	)
}

// outputFlag adds the --output flag for machine-readable formats.
func outputFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(
		format, "output", "o", "json",
		"output format: json or yaml",
	)
}
