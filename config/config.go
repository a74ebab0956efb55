// Package config provides Viper-based configuration loading for the game.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// GameConfig selects the scenario and how the world behaves.
type GameConfig struct {
	// Scenario is a directory of Lua files. Empty means the built-in Hyrule scenario.
	Scenario string `mapstructure:"scenario"`
	// Randomness is "hash" (position-derived) or "seeded" (reproducible RNG).
	Randomness string `mapstructure:"randomness"`
	// Seed feeds the seeded RNG.
	Seed int64 `mapstructure:"seed"`
	// ViewWidth and ViewHeight are the map viewport size in tiles.
	ViewWidth  int `mapstructure:"view_width"`
	ViewHeight int `mapstructure:"view_height"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File receives the log. Empty disables logging so the terminal stays clean.
	File string `mapstructure:"file"`
}

// UIConfig holds driver settings.
type UIConfig struct {
	Plain bool `mapstructure:"plain"`
	Trace bool `mapstructure:"trace"`
}

// Config is the top-level application configuration.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
	UI      UIConfig      `mapstructure:"ui"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	errs = append(errs, validateGame(c.Game)...)
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) []string {
	var errs []string
	validModes := map[string]bool{"hash": true, "seeded": true}
	if !validModes[g.Randomness] {
		errs = append(errs, fmt.Sprintf("game.randomness must be one of [hash, seeded], got %q", g.Randomness))
	}
	if !validViewSize(g.ViewWidth) {
		errs = append(errs, fmt.Sprintf("game.view_width must be odd and 5-99, got %d", g.ViewWidth))
	}
	if !validViewSize(g.ViewHeight) {
		errs = append(errs, fmt.Sprintf("game.view_height must be odd and 5-99, got %d", g.ViewHeight))
	}
	return errs
}

// validViewSize keeps the player on the centre tile.
func validViewSize(n int) bool {
	return n >= 5 && n <= 99 && n%2 == 1
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given YAML file, applies LEGEND_*
// environment overrides, and validates the result. An empty path skips the
// file and uses defaults plus the environment.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with LEGEND_ prefix
	v.SetEnvPrefix("LEGEND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// defaults returns the configuration used when nothing is set.
func defaults() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.scenario", "")
	v.SetDefault("game.randomness", "hash")
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.view_width", 21)
	v.SetDefault("game.view_height", 11)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")

	v.SetDefault("ui.plain", false)
	v.SetDefault("ui.trace", false)
}
