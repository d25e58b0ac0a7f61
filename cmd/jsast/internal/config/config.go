// Package config loads jsast's persistent settings, mirroring jscan's
// internal/config: a defaults-first struct unmarshaled by viper, with
// cobra flags overriding whatever the config file set.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is jsast's full configuration surface.
type Config struct {
	Print PrintConfig `mapstructure:"print" yaml:"print"`
	Batch BatchConfig `mapstructure:"batch" yaml:"batch"`
}

// PrintConfig controls the default printer.Options a bare `jsast print`
// invocation uses when no flag overrides them.
type PrintConfig struct {
	// Pretty turns on printer.Pretty by default.
	Pretty bool `mapstructure:"pretty" yaml:"pretty"`
	// MaintainLineno turns on printer.MaintainLineno by default.
	MaintainLineno bool `mapstructure:"maintain_lineno" yaml:"maintain_lineno"`
}

// BatchConfig controls `jsast print -r` / `jsast reduce -r` directory
// walks.
type BatchConfig struct {
	// IncludeGlobs are filepath.Match patterns a file's base name must
	// satisfy to be processed.
	IncludeGlobs []string `mapstructure:"include_globs" yaml:"include_globs"`
	// IgnoreFile is a gitignore-syntax file consulted (relative to the
	// walked root) before IncludeGlobs, e.g. ".jsastignore".
	IgnoreFile string `mapstructure:"ignore_file" yaml:"ignore_file"`
}

// DefaultConfig returns jsast's built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Print: PrintConfig{
			Pretty:         false,
			MaintainLineno: false,
		},
		Batch: BatchConfig{
			IncludeGlobs: []string{"*.ast.json"},
			IgnoreFile:   ".jsastignore",
		},
	}
}

// Load reads configPath (or discovers ".jsast.yaml" in the working
// directory, then $HOME, when configPath is empty) and unmarshals it
// over DefaultConfig. A missing config file is not an error: Load
// silently falls back to defaults, the same as jscan's LoadConfig.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = discover()
	}
	cfg := DefaultConfig()
	if configPath == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate reports a malformed configuration.
func (c *Config) Validate() error {
	if len(c.Batch.IncludeGlobs) == 0 {
		return fmt.Errorf("batch.include_globs cannot be empty")
	}
	for _, pattern := range c.Batch.IncludeGlobs {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			return fmt.Errorf("batch.include_globs: invalid pattern %q: %w", pattern, err)
		}
	}
	return nil
}

func discover() string {
	candidates := []string{".jsast.yaml", ".jsast.yml"}
	for _, name := range candidates {
		if path := filepath.Join(".", name); fileExists(path) {
			return path
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range candidates {
			if path := filepath.Join(home, name); fileExists(path) {
				return path
			}
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
