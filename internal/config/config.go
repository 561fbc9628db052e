package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"readctags/internal/locator"
	"readctags/pkg/util"
)

// Environment variables that override the configuration file.
const (
	EnvPaths    = "READCTAGS_PATHS"
	EnvRoot     = "READCTAGS_ROOT"
	EnvLogLevel = "READCTAGS_LOG_LEVEL"
	EnvLogFile  = "READCTAGS_LOG_FILE"
	EnvNoColor  = "NO_COLOR"
)

// Config holds the application configuration
type Config struct {
	// Tags file search
	SearchPaths []string `yaml:"search_paths"`
	Root        string   `yaml:"root,omitempty"`

	// Log configuration
	LogFile   string `yaml:"log_file,omitempty"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogSilent bool   `yaml:"log_silent"`

	// Output
	NoColor       bool          `yaml:"no_color"`
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		SearchPaths:   locator.DefaultPaths(),
		LogLevel:      "warn",
		LogFormat:     "text",
		WatchDebounce: 250 * time.Millisecond,
	}
}

// DefaultPath is where the configuration file is looked up when no path is
// given.
func DefaultPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// LoadConfig loads configuration from a YAML file, then applies .env and
// environment overrides. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// A missing .env is the common case
	_ = godotenv.Load()
	config.applyEnv(os.Getenv)

	if len(config.SearchPaths) == 0 {
		config.SearchPaths = locator.DefaultPaths()
	}

	return config, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if paths := getenv(EnvPaths); paths != "" {
		c.SearchPaths = util.SplitList(paths, string(os.PathListSeparator))
	}
	if root := getenv(EnvRoot); root != "" {
		c.Root = root
	}
	if level := getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if file := getenv(EnvLogFile); file != "" {
		c.LogFile = file
	}
	if getenv(EnvNoColor) != "" {
		c.NoColor = true
	}
}

// SaveConfig saves configuration to a file
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigDir returns the directory for configuration files
func getConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "./config"
	}

	return filepath.Join(configDir, "readctags")
}
