// Package config loads application settings from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/storage"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = ".recipebox/config.yaml"

// Config holds all recipebox settings.
type Config struct {
	Store       StoreConfig   `yaml:"store"`
	RecipesFile string        `yaml:"recipes_file"`
	SearchDelay string        `yaml:"search_delay"`
	PageSize    int           `yaml:"page_size"`
	MaxServings int           `yaml:"max_servings"`
	Logging     LoggingConfig `yaml:"logging"`
}

// StoreConfig selects where persisted state lives.
type StoreConfig struct {
	Backend string `yaml:"backend"` // memory, file, or sqlite
	Dir     string `yaml:"dir"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // off, normal, verbose
	File  string `yaml:"file"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: storage.BackendFile,
			Dir:     ".recipebox",
		},
		SearchDelay: "200ms",
		PageSize:    6,
		MaxServings: domain.ServingsLimit,
		Logging: LoggingConfig{
			Level: "normal",
			File:  filepath.Join(".recipebox", "logs", "recipebox.log"),
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("RECIPEBOX_STORE"); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv("RECIPEBOX_DIR"); v != "" {
		c.Store.Dir = v
	}
	if v := os.Getenv("RECIPEBOX_RECIPES"); v != "" {
		c.RecipesFile = v
	}
	if v := os.Getenv("RECIPEBOX_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("RECIPEBOX_SEARCH_DELAY"); v != "" {
		c.SearchDelay = v
	}
	if v := os.Getenv("RECIPEBOX_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PageSize = n
		}
	}
}

// GetSearchDelay returns the search debounce delay, defaulting to 200ms.
func (c *Config) GetSearchDelay() time.Duration {
	if d, err := time.ParseDuration(c.SearchDelay); err == nil {
		return d
	}
	return 200 * time.Millisecond
}

// GetLogLevel returns the parsed log level.
func (c *Config) GetLogLevel() logger.Level {
	l, _ := logger.ParseLevel(c.Logging.Level)
	return l
}

// ValidBackends lists the supported store backends.
var ValidBackends = []string{storage.BackendMemory, storage.BackendFile, storage.BackendSQLite}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(ValidBackends, c.Store.Backend) {
		return fmt.Errorf("invalid store backend: %s (valid: %v)", c.Store.Backend, ValidBackends)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.PageSize)
	}
	if c.MaxServings < 1 || c.MaxServings > domain.ServingsLimit {
		return fmt.Errorf("max_servings must be 1..%d, got %d", domain.ServingsLimit, c.MaxServings)
	}
	if d, err := time.ParseDuration(c.SearchDelay); err != nil || d < 0 {
		return fmt.Errorf("invalid search_delay %q", c.SearchDelay)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}
