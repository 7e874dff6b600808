package config

import (
	// Stdlib
	"os"
	"path/filepath"

	// Internal
	"github.com/cascii/verflow/errs"

	// Other
	"gopkg.in/yaml.v2"
)

// LocalConfigFilename is the filename of the configuration file that
// represents project-specific verflow configuration.
//
// This file is expected to be placed in the repository root.
const LocalConfigFilename = ".verflow.yml"

// Config lists the configuration artifacts that carry the project version
// and the command used to refresh the dependency lock file.
// All paths are relative to the repository root.
type Config struct {
	// BackendManifest is the canonical artifact, the source of truth
	// for the current project version.
	BackendManifest    string   `yaml:"backend_manifest"`
	SecondaryManifest  string   `yaml:"secondary_manifest"`
	Descriptor         string   `yaml:"descriptor"`
	LockFile           string   `yaml:"lock_file"`
	LockRefreshCommand []string `yaml:"lock_refresh_command"`
}

// The decorator repository layout.
var defaults = Config{
	BackendManifest:    "Cargo.toml",
	SecondaryManifest:  filepath.Join("src-tauri", "Cargo.toml"),
	Descriptor:         filepath.Join("src-tauri", "tauri.conf.json"),
	LockFile:           "Cargo.lock",
	LockRefreshCommand: []string{"cargo", "check", "--quiet"},
}

var configCache *Config

// Load returns the project configuration for the repository rooted at root.
// A missing config file is not an error, the defaults cover the standard
// decorator layout. Fields left out of the config file keep their defaults.
func Load(root string) (*Config, error) {
	// Try the cache first.
	if configCache != nil {
		return configCache, nil
	}

	config := defaults

	task := "Read the local config file"
	content, err := os.ReadFile(filepath.Join(root, LocalConfigFilename))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errs.NewError(task, err)
		}
	} else {
		// Unmarshalling over the prefilled struct keeps the defaults
		// for the keys the config file does not mention.
		task := "Unmarshal the local config file"
		if err := yaml.Unmarshal(content, &config); err != nil {
			return nil, errs.NewErrorWithHint(
				task, err, "Make sure "+LocalConfigFilename+" is valid YAML\n")
		}
	}

	configCache = &config
	return configCache, nil
}

func flushCache() {
	configCache = nil
}
