// Package config loads avocado's settings from the config file and the
// environment
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ayoisaiah/avocado/internal/pathutil"
)

type (
	// Config holds all configuration settings
	Config struct {
		Files         FilesConfig        `mapstructure:"files"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
		Log           LogConfig          `mapstructure:"log"`
	}

	// FilesConfig holds the locations of the session files
	FilesConfig struct {
		Current string `mapstructure:"current"`
		History string `mapstructure:"history"`
	}

	// NotificationConfig holds the alerts for a completed session
	NotificationConfig struct {
		Sound   string `mapstructure:"sound"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		SessionCmd     string `mapstructure:"session_cmd"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var soundExts = []string{".mp3", ".ogg", ".flac", ".wav"}

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithDefaultPaths fills in session file locations left empty by earlier
// options and expands a leading ~ in all of them.
func WithDefaultPaths(current, history string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(c.Files.Current) == "" {
			c.Files.Current = current
		}

		if strings.TrimSpace(c.Files.History) == "" {
			c.Files.History = history
		}

		c.Files.Current = pathutil.Expand(c.Files.Current)
		c.Files.History = pathutil.Expand(c.Files.History)
		c.Notifications.Sound = pathutil.Expand(c.Notifications.Sound)

		return nil
	}
}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	if c.Notifications.Sound != "" {
		ext := strings.ToLower(filepath.Ext(c.Notifications.Sound))
		if !slices.Contains(soundExts, ext) {
			return errInvalidSoundFormat.Fmt(c.Notifications.Sound)
		}
	}

	if c.Files.Current != "" && c.Files.Current == c.Files.History {
		return errSameFiles.Fmt(c.Files.Current)
	}

	return nil
}

// LogLevel parses the configured log level. An empty level means info.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level

	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return level, errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return level, nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"current=%s history=%s notifications=%t sound=%q cmd=%q",
		c.Files.Current,
		c.Files.History,
		c.Notifications.Enabled,
		c.Notifications.Sound,
		c.Settings.SessionCmd,
	)
}
