// Package config loads run configuration for mixtint from a TOML file,
// with every value overridable from the command line.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jmylchreest/mixtint/internal/mix"
)

// Config holds the tunable parameters of an analysis run.
type Config struct {
	// Threshold is the maximum residual error, in normalized space,
	// for a decomposition to count as successful.
	Threshold float64 `toml:"threshold"`

	// Cutoff is the negligibility cutoff below which coefficients are
	// treated as zero.
	Cutoff float64 `toml:"cutoff"`

	// Workers sets parallel fan-out across targets (0 or 1 = sequential).
	Workers int `toml:"workers"`

	// Preview enables ANSI colour previews in table output.
	Preview bool `toml:"preview"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Threshold: mix.DefaultThreshold,
		Cutoff:    mix.DefaultCutoff,
		Workers:   1,
		Preview:   false,
	}
}

// Path returns the default config file location, using the platform
// user config dir (XDG_CONFIG_HOME on Linux).
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "mixtint", "config.toml"), nil
}

// Load reads the config file at path, falling back to the default
// location when path is empty. A missing file is not an error: the
// defaults apply. Values absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			// No resolvable config dir; run on defaults.
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for structural validity.
func (c Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("threshold must be non-negative, got %v", c.Threshold)
	}
	if c.Cutoff < 0 {
		return fmt.Errorf("cutoff must be non-negative, got %v", c.Cutoff)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	return nil
}

// Options converts the configuration into solver options.
func (c Config) Options() mix.Options {
	return mix.Options{
		Threshold: c.Threshold,
		Cutoff:    c.Cutoff,
		Workers:   c.Workers,
	}
}
