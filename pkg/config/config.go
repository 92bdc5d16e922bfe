// Package config provides configuration management for gnpokedex.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Corpus: path, format
//   - Assets: sprites_dir, cries_dir
//   - Language: default_id, display_id
//   - Cache: size
//   - Server: port, rate_limit, rate_burst, cors_origins
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNPOKEDEX_ prefix with underscores for nesting:
//
//	GNPOKEDEX_CORPUS_PATH=/data/pokedex/csv
//	GNPOKEDEX_CORPUS_FORMAT=csv
//	GNPOKEDEX_LANGUAGE_DEFAULT_ID=9
//	GNPOKEDEX_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete gnpokedex configuration.
type Config struct {
	// Corpus determines where the Pokédex tables are read from.
	Corpus CorpusConfig `mapstructure:"corpus" yaml:"corpus"`

	// Assets contains locations of sprites and cries referenced by cards.
	Assets AssetsConfig `mapstructure:"assets" yaml:"assets"`

	// Language contains default language settings.
	Language LanguageConfig `mapstructure:"language" yaml:"language"`

	// Cache contains settings of the species card cache.
	Cache CacheConfig `mapstructure:"cache" yaml:"cache"`

	// Server contains settings for the HTTP surface.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// CorpusConfig describes the read-only Pokédex corpus.
type CorpusConfig struct {
	// Path is a directory with CSV tables (format "csv") or a SQLite
	// file (format "sqlite").
	Path string `mapstructure:"path" yaml:"path"`

	// Format is either "csv" or "sqlite".
	Format string `mapstructure:"format" yaml:"format"`
}

// AssetsConfig contains locations used to build asset references.
// The paths are not checked, they are returned to callers as is.
type AssetsConfig struct {
	// SpritesDir is a directory with <form id>.png sprites.
	SpritesDir string `mapstructure:"sprites_dir" yaml:"sprites_dir"`

	// CriesDir is a directory with latest/<form id>.ogg and
	// legacy/<form id>.ogg cries.
	CriesDir string `mapstructure:"cries_dir" yaml:"cries_dir"`
}

// LanguageConfig contains language defaults. Values are corpus
// language ids.
type LanguageConfig struct {
	// DefaultID is used when a request does not specify a language.
	DefaultID int `mapstructure:"default_id" yaml:"default_id"`

	// DisplayID is the secondary language used for autonyms of languages
	// that have no name written in themselves.
	DisplayID int `mapstructure:"display_id" yaml:"display_id"`
}

// CacheConfig sets the species card cache.
type CacheConfig struct {
	// Size is the maximum number of cards kept in memory.
	Size int `mapstructure:"size" yaml:"size"`
}

// ServerConfig contains settings of the HTTP surface.
type ServerConfig struct {
	// Port to listen on.
	Port int `mapstructure:"port" yaml:"port"`

	// RateLimit is the number of requests per second allowed per client.
	RateLimit int `mapstructure:"rate_limit" yaml:"rate_limit"`

	// RateBurst is the token bucket size per client.
	RateBurst int `mapstructure:"rate_burst" yaml:"rate_burst"`

	// CORSOrigins are allowed origins for browser clients.
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Corpus: CorpusConfig{
			Path:   "data/csv",
			Format: "csv",
		},
		Assets: AssetsConfig{
			SpritesDir: "data/sprites/sprites/pokemon",
			CriesDir:   "data/cries/cries/pokemon",
		},
		Language: LanguageConfig{
			DefaultID: EnglishID,
			DisplayID: EnglishID,
		},
		Cache: CacheConfig{
			Size: 4096,
		},
		Server: ServerConfig{
			Port:        8080,
			RateLimit:   20,
			RateBurst:   40,
			CORSOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
