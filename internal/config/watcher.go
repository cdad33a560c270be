package config

import (
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config file whenever it changes and notifies the
// callbacks registered with OnConfigChange. A reload that fails keeps the
// previous settings. Watch needs a file, so call it after a Load that found one.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return ErrAlreadyWatching
	}
	if m.viper.ConfigFileUsed() == "" {
		return ErrConfigNotFound
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		m.logger.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		m.mu.Lock()
		if err := m.reload(); err != nil {
			m.logger.Warn().Err(err).Str("file", e.Name).Msg("failed to reload config")
			m.mu.Unlock()
			return
		}
		m.logger.Info().Str("file", e.Name).Msg("config reloaded")
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers fn to receive a copy of each reloaded config.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, fn)
}

// reload must be called with m.mu held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// notifyCallbacksLocked releases m.mu before calling the callbacks.
func (m *Manager) notifyCallbacksLocked() {
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	cfg := m.config
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(cfg.Clone())
	}
}
