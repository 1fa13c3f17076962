// Package config loads optional scopegraph.yaml settings.
//
// The config file supplies defaults for flags; command-line flags always
// win. A missing file is not an error.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the conventional config file name, looked up in the
// current directory.
const DefaultFile = "scopegraph.yaml"

// Config holds tool defaults. Zero values mean "not set" and leave the
// built-in default in place.
type Config struct {
	// Depth is the default traversal depth.
	Depth int `yaml:"depth"`
	// Dedup selects the visited-set traversal policy by default.
	Dedup bool `yaml:"dedup"`
	// StrictKeys keys the index by (file, name) instead of bare name.
	StrictKeys bool `yaml:"strict_keys"`
	// LegacyLines reproduces the original fixed-capacity line buffer.
	LegacyLines bool `yaml:"legacy_lines"`
	// Languages restricts scan mode to the listed languages.
	Languages []string `yaml:"languages"`
}

// Load reads path, or DefaultFile when path is empty. A missing default
// file yields a zero Config; a missing explicit file is an error.
func Load(path string, logger *slog.Logger) (Config, error) {
	if logger == nil {
		logger = slog.Default()
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	logger.Debug("loaded config", "path", path)
	return cfg, nil
}
