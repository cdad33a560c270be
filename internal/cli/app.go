// Package cli implements the keycodec command line tool.
package cli

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/dshills/keycodec/internal/config"
	"github.com/dshills/keycodec/internal/input/keymap"
)

// BuildInfo is stamped into the binary by the linker.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App is the state shared by every subcommand. It is filled in by the root
// command's PersistentPreRunE.
type App struct {
	Info   BuildInfo
	Config *config.Config
	Logger zerolog.Logger
	Styles *Styles

	configFile string
	logLevel   string
	logFormat  string

	openScreen func() (tcell.Screen, error)
}

func newApp(info BuildInfo) *App {
	return &App{
		Info:       info,
		Config:     config.DefaultConfig(),
		Logger:     zerolog.Nop(),
		Styles:     plainStyles(),
		openScreen: openTerminal,
	}
}

func openTerminal() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialize terminal: %w", err)
	}
	return screen, nil
}

// loadConfig reads the settings file and applies flag overrides.
func (a *App) loadConfig() error {
	var opts []config.Option
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	opts = append(opts, config.WithLogger(a.Logger))

	m, err := config.NewManager(opts...)
	if err != nil {
		return err
	}
	if err := m.Load(); err != nil {
		return err
	}

	cfg := m.Get()
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.Config = cfg
	return nil
}

// registry layers the built-in keymap, the user keymap file and the config
// file's [bindings]. path overrides keymap.path from the config.
func (a *App) registry(path string) (*keymap.Registry, error) {
	reg := keymap.NewRegistry()
	if err := reg.Register(keymap.Default(), keymap.PriorityDefault); err != nil {
		return nil, err
	}

	if path == "" {
		path = a.Config.Keymap.Path
	}
	if path != "" {
		km, err := keymap.Load(path)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(km, keymap.PriorityUser); err != nil {
			return nil, err
		}
		a.Logger.Debug().Str("path", path).Int("bindings", km.Len()).Msg("keymap loaded")
	}

	if len(a.Config.Bindings) > 0 {
		if err := reg.Register(a.Config.BindingsKeymap(), keymap.PriorityConfig); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
