package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all configuration for the application
type Config struct {
	// Workspace settings
	Workspaces   []string `toml:"workspaces"`
	SettingsFile string   `toml:"settings_file"`
	SettingsKey  string   `toml:"settings_key"`
	LegacyConfig string   `toml:"legacy_config"`

	// Discovery settings
	TestPatterns  []string `toml:"test_patterns"`
	PathsToIgnore []string `toml:"paths_to_ignore"`

	// Execution settings
	Processors int `toml:"processors"`

	// Command flags
	Flags Flags `toml:"-"`
}

// Flags holds command-line flags
type Flags struct {
	Workspaces []string
	Verbose    bool
	Debug      bool
	UseDefault bool
	Processors int
	NameFilter string
	FailFast   bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		SettingsFile: DefaultSettingsFile,
		SettingsKey:  DefaultSettingsKey,
		LegacyConfig: DefaultLegacyConfig,
		Processors:   DefaultProcessors,
		Flags:        Flags{Processors: DefaultProcessors},
	}
	cfg.Workspaces = append([]string(nil), DefaultWorkspaces...)
	cfg.TestPatterns = append([]string(nil), DefaultTestPatterns...)
	cfg.PathsToIgnore = append([]string(nil), DefaultPathsToIgnore...)
	return cfg
}

// Load creates a config with defaults and overlays the TOML file at path.
// A missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	// Relative workspace roots are relative to the config file
	base := filepath.Dir(path)
	for i, ws := range cfg.Workspaces {
		if !filepath.IsAbs(ws) {
			cfg.Workspaces[i] = filepath.Join(base, ws)
		}
	}
	if cfg.Processors <= 0 {
		cfg.Processors = DefaultProcessors
	}
	return cfg, nil
}

// Apply copies flags into the config, letting them override file values
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if len(flags.Workspaces) > 0 {
		c.Workspaces = append([]string(nil), flags.Workspaces...)
	}
	if flags.Processors > 0 {
		c.Processors = flags.Processors
	}
}

// GetWorkspaces returns the workspace roots as absolute paths
func (c *Config) GetWorkspaces() []string {
	roots := make([]string, 0, len(c.Workspaces))
	for _, ws := range c.Workspaces {
		if abs, err := filepath.Abs(ws); err == nil {
			ws = abs
		}
		roots = append(roots, filepath.Clean(ws))
	}
	return roots
}
