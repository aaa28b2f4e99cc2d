// Package config provides Viper-based configuration loading for the arena showcase.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ContentConfig points at optional YAML content registered on top of the built-in catalog.
type ContentConfig struct {
	// ClassesDir holds extra class definitions; empty means built-ins only.
	ClassesDir string `mapstructure:"classes_dir"`
	// WeaponsDir holds extra weapon definitions; empty means built-ins only.
	WeaponsDir string `mapstructure:"weapons_dir"`
}

// RosterEntry names one character and the class it is built from.
type RosterEntry struct {
	Name  string `mapstructure:"name"`
	Class string `mapstructure:"class"`
}

// DummyConfig describes the plain combatant every roster member attacks.
type DummyConfig struct {
	Name     string `mapstructure:"name"`
	Health   int    `mapstructure:"health"`
	Strength int    `mapstructure:"strength"`
	Magic    int    `mapstructure:"magic"`
}

// ShowcaseConfig holds the demo roster and target.
type ShowcaseConfig struct {
	Roster []RosterEntry `mapstructure:"roster"`
	Dummy  DummyConfig   `mapstructure:"dummy"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Content  ContentConfig  `mapstructure:"content"`
	Showcase ShowcaseConfig `mapstructure:"showcase"`
}

// DefaultRoster is the party used when no roster is configured.
func DefaultRoster() []RosterEntry {
	return []RosterEntry{
		{Name: "Ari", Class: "warrior"},
		{Name: "Daniel", Class: "mage"},
		{Name: "Will", Class: "rogue"},
	}
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateShowcase(c.Showcase); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
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

func validateShowcase(s ShowcaseConfig) error {
	var errs []string
	if len(s.Roster) == 0 {
		errs = append(errs, "showcase.roster must not be empty")
	}
	for i, e := range s.Roster {
		if e.Name == "" {
			errs = append(errs, fmt.Sprintf("showcase.roster[%d].name must not be empty", i))
		}
		if e.Class == "" {
			errs = append(errs, fmt.Sprintf("showcase.roster[%d].class must not be empty", i))
		}
	}
	if s.Dummy.Name == "" {
		errs = append(errs, "showcase.dummy.name must not be empty")
	}
	if s.Dummy.Health < 1 {
		errs = append(errs, fmt.Sprintf("showcase.dummy.health must be >= 1, got %d", s.Dummy.Health))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path loads defaults only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with ARENA_ prefix
	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

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
// An unset roster is replaced by DefaultRoster.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if !v.IsSet("showcase.roster") {
		cfg.Showcase.Roster = DefaultRoster()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("content.classes_dir", "")
	v.SetDefault("content.weapons_dir", "")

	v.SetDefault("showcase.dummy.name", "Training Dummy")
	v.SetDefault("showcase.dummy.health", 100)
	v.SetDefault("showcase.dummy.strength", 5)
	v.SetDefault("showcase.dummy.magic", 5)
}
