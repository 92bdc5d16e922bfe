package config

import (
	"path/filepath"
)

const (
	// EnglishID is the corpus id of English, the default display language.
	EnglishID = 9
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnpokedex"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnpokedex by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnpokedex by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnpokedex/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnpokedex/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
