// Package config loads the studio configuration from YAML with environment
// overrides for secrets and paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all studio configuration.
type Config struct {
	// Gemini backend configuration
	Gemini GeminiConfig `yaml:"gemini"`

	// History persistence
	History HistoryConfig `yaml:"history"`

	// Studio defaults
	Studio StudioConfig `yaml:"studio"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// GeminiConfig configures the generation backend.
type GeminiConfig struct {
	APIKey     string `yaml:"api_key"`
	Model      string `yaml:"model"`
	FlashModel string `yaml:"flash_model"`
}

// HistoryConfig configures where the generation history lives.
type HistoryConfig struct {
	Backend string `yaml:"backend"` // file, sqlite
	Path    string `yaml:"path"`
}

// StudioConfig configures session defaults.
type StudioConfig struct {
	Language    string `yaml:"language"` // es, en
	Persona     string `yaml:"persona"`
	CatalogPath string `yaml:"catalog_path"` // optional YAML catalog override
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
	File   string `yaml:"file"`   // empty means stderr
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			Model:      "gemini-2.5-pro",
			FlashModel: "gemini-2.5-flash",
		},
		History: HistoryConfig{
			Backend: "file",
			Path:    "data/history.json",
		},
		Studio: StudioConfig{
			Language: "es",
			Persona:  "Aria",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks the fields that would otherwise fail deep inside a
// session.
func (c *Config) Validate() error {
	switch c.History.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("invalid history backend %q (want file or sqlite)", c.History.Backend)
	}
	switch c.Studio.Language {
	case "es", "en":
	default:
		return fmt.Errorf("invalid language %q (want es or en)", c.Studio.Language)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// API key from environment, in priority order
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Gemini.APIKey = key
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" && c.Gemini.APIKey == "" {
		c.Gemini.APIKey = key
	}

	if path := os.Getenv("STUDIO_HISTORY_PATH"); path != "" {
		c.History.Path = path
	}
	if lang := os.Getenv("STUDIO_LANG"); lang != "" {
		c.Studio.Language = lang
	}
}
