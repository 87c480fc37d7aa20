package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "AVOCADO"

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyCurrentFile          = "files.current"
	keyHistoryFile          = "files.history"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationSound    = "notifications.sound"
	keySessionCmd           = "settings.session_cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyDarkTheme            = "display.dark_theme"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, creating it with default values if it does not exist.
// Every key can be overridden with an AVOCADO_ environment variable, e.g.
// AVOCADO_FILES_CURRENT for files.current.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return errReadConfig.Wrap(err)
			}

			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		// environment overrides are applied after the defaults are written
		// so they never end up in the config file
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyCurrentFile, "")
	v.SetDefault(keyHistoryFile, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationSound, "")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyLogLevel, "info")
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errUnmarshalConfig.Wrap(err)
	}

	return nil
}
