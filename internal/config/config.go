// Package config loads and validates the airdash configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/EladdadMahdi/Data-visualization/internal/plotpage"
)

// Defaults applied before any config source is read.
const (
	DefaultListen = ":8050"
	DefaultTheme  = string(plotpage.ThemeLight)
	DefaultLevel  = "info"
)

// ErrNoDataPath is returned when no dataset path is configured.
var ErrNoDataPath = errors.New("dataset path is required (set data in config or AIRDASH_DATA)")

// Config is the top-level configuration. Field tags use mapstructure for
// viper unmarshalling.
type Config struct {
	// Data is the path to the flight records file (.csv, .csv.gz, .csv.lz4).
	Data string `mapstructure:"data"`

	// Listen is the serve-mode bind address.
	Listen string `mapstructure:"listen"`

	// Theme selects the dashboard color theme: light or dark.
	Theme string `mapstructure:"theme"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Validate checks settings that every command depends on.
func (c *Config) Validate() error {
	if c.Data == "" {
		return ErrNoDataPath
	}

	if c.Theme != string(plotpage.ThemeLight) && c.Theme != string(plotpage.ThemeDark) {
		return fmt.Errorf("unknown theme %q (want light or dark)", c.Theme)
	}

	return nil
}

// PageTheme returns the configured plotpage theme.
func (c *Config) PageTheme() plotpage.Theme {
	return plotpage.ParseTheme(c.Theme)
}
