// Package iofs prepares the local directories of gnpokedex: config,
// cache and logs under the user's home, and the config.yaml template.
package iofs

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/gnames/gnpokedex/pkg/config"
)

// ConfigYAML is the commented config.yaml written on the first run.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates the config, cache and log directories of gnpokedex
// under homeDir. Existing directories are left as they are.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// touchDir creates dir with its parents. A regular file in place of dir
// is an error.
func touchDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return CreateDirError(dir, fmt.Errorf("%s is not a directory", dir))
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

// EnsureConfigFile writes the embedded config.yaml template unless a
// config file already exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}
