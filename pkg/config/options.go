package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptCorpusPath sets the location of the corpus: a directory with CSV
// tables or a SQLite file.
func OptCorpusPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Corpus Path", s) {
			c.Corpus.Path = s
		}
	}
}

// OptCorpusFormat sets the corpus format.
// Valid values: "csv", "sqlite".
func OptCorpusFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Corpus.Format", s) {
			c.Corpus.Format = s
		}
	}
}

// OptAssetsSpritesDir sets the directory used to build sprite paths.
func OptAssetsSpritesDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Sprites Directory", s) {
			c.Assets.SpritesDir = s
		}
	}
}

// OptAssetsCriesDir sets the directory used to build cry paths.
func OptAssetsCriesDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Cries Directory", s) {
			c.Assets.CriesDir = s
		}
	}
}

// OptLanguageDefaultID sets the language used when a request has none.
func OptLanguageDefaultID(i int) Option {
	return func(c *Config) {
		if isValidInt("Default Language ID", i) {
			c.Language.DefaultID = i
		}
	}
}

// OptLanguageDisplayID sets the secondary language of autonyms.
func OptLanguageDisplayID(i int) Option {
	return func(c *Config) {
		if isValidInt("Display Language ID", i) {
			c.Language.DisplayID = i
		}
	}
}

// OptCacheSize sets the maximum number of cached species cards.
func OptCacheSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Cache Size", i) {
			c.Cache.Size = i
		}
	}
}

// OptServerPort sets the port of the HTTP surface.
func OptServerPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Server Port", i) {
			c.Server.Port = i
		}
	}
}

// OptServerRateLimit sets allowed requests per second per client.
func OptServerRateLimit(i int) Option {
	return func(c *Config) {
		if isValidInt("Server Rate Limit", i) {
			c.Server.RateLimit = i
		}
	}
}

// OptServerRateBurst sets the token bucket size per client.
func OptServerRateBurst(i int) Option {
	return func(c *Config) {
		if isValidInt("Server Rate Burst", i) {
			c.Server.RateBurst = i
		}
	}
}

// OptServerCORSOrigins sets origins allowed to call the HTTP surface.
// Empty entries are dropped, an empty result is ignored.
func OptServerCORSOrigins(ss []string) Option {
	var origins []string
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v != "" {
			origins = append(origins, v)
		}
	}
	return func(c *Config) {
		if len(origins) > 0 {
			c.Server.CORSOrigins = origins
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel operations.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
