package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/dshills/keycodec/internal/input/keycodec"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "KEYCODEC"

	configName = "keycodec"
	configType = "toml"
)

// Manager loads and watches the settings file.
type Manager struct {
	viper      *viper.Viper
	configFile string
	logger     zerolog.Logger

	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
	watching  bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithConfigFile reads path instead of searching for keycodec.toml.
func WithConfigFile(path string) Option {
	return func(m *Manager) {
		m.configFile = path
	}
}

// WithLogger sets the logger used for reload diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// ConfigDir returns $XDG_CONFIG_HOME/keycodec.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configName), nil
}

// NewManager creates a manager. Nothing is read until Load.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{
		viper:  viper.New(),
		logger: zerolog.Nop(),
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(m)
	}

	v := m.viper
	v.SetConfigType(configType)
	if m.configFile != "" {
		v.SetConfigFile(m.configFile)
	} else {
		v.SetConfigName(configName)
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	envBindings := map[string]string{
		"logging.level":  "KEYCODEC_LOG_LEVEL",
		"logging.format": "KEYCODEC_LOG_FORMAT",
		"keymap.path":    "KEYCODEC_KEYMAP",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return m, nil
}

// Load reads defaults, the config file and the environment, then validates
// the result. A missing keycodec.toml is not an error; a missing file named
// with WithConfigFile is.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()
	if err := m.readConfigFile(); err != nil {
		return err
	}
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Clone()
}

// ConfigFileUsed returns the file Load read, or "" when none was found.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) setDefaults() {
	def := DefaultConfig()
	m.viper.SetDefault("logging.level", def.Logging.Level)
	m.viper.SetDefault("logging.format", def.Logging.Format)
	m.viper.SetDefault("keymap.path", def.Keymap.Path)
	m.viper.SetDefault("keymap.watch", def.Keymap.Watch)
}

func (m *Manager) readConfigFile() error {
	if m.configFile != "" {
		if _, err := os.Stat(m.configFile); err != nil {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, m.configFile)
		}
	}

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			m.logger.Debug().Msg("no config file found, using defaults")
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", m.viper.ConfigFileUsed(), err)
	}
	m.logger.Debug().Str("file", m.viper.ConfigFileUsed()).Msg("config loaded")
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	cfg := DefaultConfig()
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		keycodec.DecodeHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	))
	if err := m.viper.Unmarshal(cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", m.describeSource(), err)
	}
	if cfg.Bindings == nil {
		cfg.Bindings = DefaultConfig().Bindings
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (m *Manager) describeSource() string {
	if f := m.viper.ConfigFileUsed(); f != "" {
		return f
	}
	return "(defaults and environment)"
}
