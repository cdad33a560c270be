// Package config loads the keycodec settings file with viper.
//
// Settings come, lowest priority first, from built-in defaults, an optional
// keycodec.toml (in $XDG_CONFIG_HOME/keycodec or the working directory) and
// KEYCODEC_* environment variables:
//
//	[logging]
//	level = "info"
//	format = "json"
//
//	[keymap]
//	path = "~/.config/keycodec/keys.yaml"
//
//	[bindings.save]
//	code = "s"
//	modifiers = "CONTROL"
//
// Binding tables are decoded with the key-event codec, so a malformed binding
// fails Load with the codec's error. Viper folds keys to lower case, which
// applies to action names under [bindings] as well.
package config

import (
	"maps"

	"github.com/rs/zerolog"

	"github.com/dshills/keycodec/internal/input/key"
	"github.com/dshills/keycodec/internal/input/keymap"
	"github.com/dshills/keycodec/internal/logging"
)

// KeymapName names the keymap built from [bindings].
const KeymapName = "config"

// Config is the decoded settings file.
type Config struct {
	Logging  LoggingConfig        `mapstructure:"logging"`
	Keymap   KeymapConfig         `mapstructure:"keymap"`
	Bindings map[string]key.Event `mapstructure:"bindings"`
}

// LoggingConfig selects log verbosity and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// KeymapConfig points at the user's keymap file.
type KeymapConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: logging.FormatConsole,
		},
		Bindings: map[string]key.Event{},
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Bindings = maps.Clone(c.Bindings)
	if out.Bindings == nil {
		out.Bindings = map[string]key.Event{}
	}
	return &out
}

// LoggerConfig converts the logging section. Validate has already checked
// the level, so a parse failure falls back to the default level.
func (c *Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if lvl, err := logging.ParseLevel(c.Logging.Level); err == nil {
		cfg.Level = lvl
	}
	if c.Logging.Format != "" {
		cfg.Format = c.Logging.Format
	}
	return cfg
}

// Logger builds a logger from the logging section.
func (c *Config) Logger() zerolog.Logger {
	return logging.New(c.LoggerConfig(), nil)
}

// BindingsKeymap returns the [bindings] table as a keymap.
func (c *Config) BindingsKeymap() *keymap.Keymap {
	km := keymap.NewKeymap(KeymapName)
	for action, ev := range c.Bindings {
		km.Set(action, ev)
	}
	return km
}

// Validate checks the settings that viper cannot type-check.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, &ValidationError{
			Path:    "logging.level",
			Message: "must be trace, debug, info, warn, error or disabled",
			Value:   c.Logging.Level,
		})
	}
	if !logging.ValidFormat(c.Logging.Format) {
		errs = append(errs, &ValidationError{
			Path:    "logging.format",
			Message: "must be console or json",
			Value:   c.Logging.Format,
		})
	}
	if c.Keymap.Path != "" {
		if _, err := keymap.FormatFromPath(c.Keymap.Path); err != nil {
			errs = append(errs, &ValidationError{
				Path:    "keymap.path",
				Message: "must end in .json, .yaml, .yml or .toml",
				Value:   c.Keymap.Path,
			})
		}
	}
	for action := range c.Bindings {
		if action == "" {
			errs = append(errs, &ValidationError{
				Path:    "bindings",
				Message: "action name must not be empty",
				Value:   action,
			})
		}
	}
	return joinValidation(errs)
}
