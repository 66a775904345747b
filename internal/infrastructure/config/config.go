// Package config loads springboard configuration from environment
// variables with sensible defaults.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all springboard configuration.
type Config struct {
	Home    HomeConfig
	Folder  FolderConfig
	Logging LogConfig
}

// HomeConfig holds home screen geometry and seeding.
type HomeConfig struct {
	Columns       int      `envconfig:"HOME_COLUMNS" default:"3"`
	Rows          int      `envconfig:"HOME_ROWS" default:"4"`
	MaxPages      int      `envconfig:"HOME_MAX_PAGES" default:"5"`
	DockCapacity  int      `envconfig:"DOCK_CAPACITY" default:"4"`
	DefaultApps   []string `envconfig:"DEFAULT_APPS" default:"Phone,Mail,Safari,Music,Maps,Clock,Settings,Camera,Notes"`
	ProtectedApps []string `envconfig:"PROTECTED_APPS" default:"Phone,Settings,Clock,Camera"`
}

// FolderConfig holds the nested geometry new folders get.
type FolderConfig struct {
	Columns  int `envconfig:"FOLDER_COLUMNS" default:"3"`
	Rows     int `envconfig:"FOLDER_ROWS" default:"3"`
	MaxPages int `envconfig:"FOLDER_MAX_PAGES" default:"3"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("springboard", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Home: HomeConfig{
			Columns:       3,
			Rows:          4,
			MaxPages:      5,
			DockCapacity:  4,
			DefaultApps:   []string{"Phone", "Mail", "Safari", "Music", "Maps", "Clock", "Settings", "Camera", "Notes"},
			ProtectedApps: []string{"Phone", "Settings", "Clock", "Camera"},
		},
		Folder: FolderConfig{
			Columns:  3,
			Rows:     3,
			MaxPages: 3,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
