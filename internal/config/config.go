// Package config handles tool configuration for grove.
// It supports XDG config paths, project-level overrides, and environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/grovekit/grove/internal/state"
)

// Config holds all configuration for grove.
type Config struct {
	Export ExportConfig `mapstructure:"export"`
	State  StateConfig  `mapstructure:"state"`
	TUI    TUIConfig    `mapstructure:"tui"`
}

// ExportConfig holds table-export settings.
type ExportConfig struct {
	// OutputDir is where dump writes its CSV/JSON artifacts.
	OutputDir string `mapstructure:"output_dir"`
	// Tables lists the tables dump snapshots by default.
	Tables []string `mapstructure:"tables"`
}

// StateConfig holds run-state store settings.
type StateConfig struct {
	// DBPath is the project-local run-state database.
	DBPath string `mapstructure:"db_path"`
}

// TUIConfig holds TUI display settings.
type TUIConfig struct {
	RefreshRate time.Duration `mapstructure:"refresh_rate"`
}

// Load loads configuration from XDG paths, project overrides, and
// environment variables. Precedence (highest to lowest):
// 1. Environment variables (GROVE_*)
// 2. Project config (.grove.yaml in current directory or parent)
// 3. User config (~/.config/grove/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("GROVE")
	v.AutomaticEnv()
	v.BindEnv("export.output_dir", "GROVE_EXPORT_DIR")
	v.BindEnv("state.db_path", "GROVE_STATE_DB")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific file (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			OutputDir: "./exports",
			Tables:    []string{"sessions", "states"},
		},
		State: StateConfig{
			DBPath: state.DefaultPath,
		},
		TUI: TUIConfig{
			RefreshRate: 100 * time.Millisecond,
		},
	}
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("export.output_dir", "./exports")
	v.SetDefault("export.tables", []string{"sessions", "states"})
	v.SetDefault("state.db_path", state.DefaultPath)
	v.SetDefault("tui.refresh_rate", "100ms")
}

// getUserConfigDir returns the XDG config directory for grove.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "grove")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "grove")
	}
	return filepath.Join(home, ".config", "grove")
}

// findProjectConfig searches for .grove.yaml in the current directory and
// parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".grove.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}
