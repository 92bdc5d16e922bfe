/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnpokedex/internal/iofs"
	"github.com/gnames/gnpokedex/internal/iologger"
	app "github.com/gnames/gnpokedex/pkg"
	"github.com/gnames/gnpokedex/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
// Extracted as a function to facilitate testing.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnpokedex",
		Short:   "GNpokedex resolves Pokédex species into species cards",
		Long: `GNpokedex answers questions about Pokédex species from a local,
read-only corpus of veekun-style tables.

A species can be requested by its National Dex number, its identifier,
a localized name or a form identifier. The answer is a species card with
localized name and genus, types, base stats, evolution line, alternative
forms, asset paths and optionally Pokédex entries.

Commands:
  - card: Show a species card
  - chain: Show the evolution line of a species
  - flavor: Show Pokédex entries of a species
  - languages: List languages for the language selector
  - convert: Convert a CSV corpus into a SQLite snapshot
  - serve: Serve cards over HTTP

Configuration precedence (highest to lowest):
  1. CLI flags (--corpus, --format, etc.)
  2. Environment variables (GNPOKEDEX_*)
  3. Config file (~/.config/gnpokedex/config.yaml)
  4. Built-in defaults

  See 'go doc github.com/gnames/gnpokedex/pkg/config' for complete list.`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnpokedex version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnpokedex")

	rootCmd.PersistentFlags().String(
		"corpus", "", "corpus location (CSV directory or SQLite file)",
	)
	rootCmd.PersistentFlags().String(
		"format", "", "corpus format: csv or sqlite",
	)

	rootCmd.AddCommand(
		getCardCmd(),
		getChainCmd(),
		getFlavorCmd(),
		getLanguagesCmd(),
		getConvertCmd(),
		getServeCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// CLI flags have the highest precedence
	cfg.Update(corpusFlags(cmd))

	// Reconfigure logging with user's settings, appending to the log
	// file created above.
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"corpus", cfg.Corpus.Path,
		"format", cfg.Corpus.Format,
	)

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNPOKEDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Corpus configuration
	v.BindEnv("corpus.path", "GNPOKEDEX_CORPUS_PATH")
	v.BindEnv("corpus.format", "GNPOKEDEX_CORPUS_FORMAT")

	// Assets configuration
	v.BindEnv("assets.sprites_dir", "GNPOKEDEX_ASSETS_SPRITES_DIR")
	v.BindEnv("assets.cries_dir", "GNPOKEDEX_ASSETS_CRIES_DIR")

	// Language configuration
	v.BindEnv("language.default_id", "GNPOKEDEX_LANGUAGE_DEFAULT_ID")
	v.BindEnv("language.display_id", "GNPOKEDEX_LANGUAGE_DISPLAY_ID")

	// Cache configuration
	v.BindEnv("cache.size", "GNPOKEDEX_CACHE_SIZE")

	// Server configuration
	v.BindEnv("server.port", "GNPOKEDEX_SERVER_PORT")
	v.BindEnv("server.rate_limit", "GNPOKEDEX_SERVER_RATE_LIMIT")
	v.BindEnv("server.rate_burst", "GNPOKEDEX_SERVER_RATE_BURST")
	v.BindEnv("server.cors_origins", "GNPOKEDEX_SERVER_CORS_ORIGINS")

	// Log configuration
	v.BindEnv("log.level", "GNPOKEDEX_LOG_LEVEL")
	v.BindEnv("log.format", "GNPOKEDEX_LOG_FORMAT")
	v.BindEnv("log.destination", "GNPOKEDEX_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNPOKEDEX_JOBS_NUMBER")

	v.AutomaticEnv()
}
