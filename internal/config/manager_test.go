package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/keycodec/internal/input/key"
	"github.com/dshills/keycodec/internal/logging"
)

// isolate keeps the developer's own config out of the search path.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keycodec.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	m, err := NewManager()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Load(); err != nil {
		t.Fatalf("Load error = %v", err)
	}

	cfg := m.Get()
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != logging.FormatConsole {
		t.Errorf("logging = %+v, want warn/console", cfg.Logging)
	}
	if cfg.Keymap.Path != "" || len(cfg.Bindings) != 0 {
		t.Errorf("cfg = %+v, want empty keymap settings", cfg)
	}
	if m.ConfigFileUsed() != "" {
		t.Errorf("ConfigFileUsed = %q, want none", m.ConfigFileUsed())
	}
}

func TestLoadSearchPath(t *testing.T) {
	isolate(t)
	dir, err := ConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "keycodec.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"debug\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	m, _ := NewManager()
	if err := m.Load(); err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if got := m.Get().Logging.Level; got != "debug" {
		t.Errorf("level = %q, want debug", got)
	}
	if m.ConfigFileUsed() != path {
		t.Errorf("ConfigFileUsed = %q, want %q", m.ConfigFileUsed(), path)
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
[logging]
level = "Info"
format = "json"

[keymap]
path = "keys.yaml"
watch = true

[bindings.save]
code = "s"
modifiers = "CONTROL"

[bindings.cancel]
code = "Esc"
`)

	m, _ := NewManager(WithConfigFile(path))
	if err := m.Load(); err != nil {
		t.Fatalf("Load error = %v", err)
	}

	cfg := m.Get()
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Keymap.Path != "keys.yaml" || !cfg.Keymap.Watch {
		t.Errorf("keymap = %+v", cfg.Keymap)
	}

	want := map[string]key.Event{
		"save":   key.NewRuneEvent('s', key.ModCtrl),
		"cancel": key.NewSpecialEvent(key.KeyEscape, key.ModNone),
	}
	if len(cfg.Bindings) != len(want) {
		t.Fatalf("bindings = %v", cfg.Bindings)
	}
	for action, ev := range want {
		if got := cfg.Bindings[action]; got != ev {
			t.Errorf("bindings[%s] = %#v, want %#v", action, got, ev)
		}
	}

	km := cfg.BindingsKeymap()
	if km.Name != KeymapName || km.Len() != 2 {
		t.Errorf("BindingsKeymap = %s with %d bindings", km.Name, km.Len())
	}
	if lc := cfg.LoggerConfig(); lc.Format != logging.FormatJSON {
		t.Errorf("LoggerConfig format = %q", lc.Format)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "[logging]\nlevel = \"info\"\n")
	t.Setenv("KEYCODEC_LOG_LEVEL", "error")
	t.Setenv("KEYCODEC_LOG_FORMAT", "json")
	t.Setenv("KEYCODEC_KEYMAP", "/tmp/keys.toml")

	m, _ := NewManager(WithConfigFile(path))
	if err := m.Load(); err != nil {
		t.Fatalf("Load error = %v", err)
	}

	cfg := m.Get()
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" || cfg.Keymap.Path != "/tmp/keys.toml" {
		t.Errorf("cfg = %+v, want environment values", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "bad level",
			body:    "[logging]\nlevel = \"loud\"\n",
			wantErr: ErrValidationFailed,
			wantMsg: "logging.level",
		},
		{
			name:    "bad format",
			body:    "[logging]\nformat = \"xml\"\n",
			wantErr: ErrValidationFailed,
			wantMsg: "logging.format",
		},
		{
			name:    "bad keymap extension",
			body:    "[keymap]\npath = \"keys.ini\"\n",
			wantErr: ErrValidationFailed,
			wantMsg: "keymap.path",
		},
		{
			name:    "bad binding",
			body:    "[bindings.quit]\ncode = \"q\"\nmodifiers = \"WINDOWS\"\n",
			wantMsg: "WINDOWS",
		},
		{
			name:    "misspelled binding field",
			body:    "[bindings.save]\ncode = \"s\"\nmodifers = \"CONTROL\"\n",
			wantMsg: "modifers",
		},
		{
			name:    "syntax",
			body:    "[logging\n",
			wantMsg: "failed to read config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			m, _ := NewManager(WithConfigFile(writeConfig(t, tt.body)))
			err := m.Load()
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
			// The previous settings survive a failed load.
			if got := m.Get().Logging.Level; got != "warn" {
				t.Errorf("level after failed load = %q", got)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	m, _ := NewManager(WithConfigFile(filepath.Join(t.TempDir(), "nope.toml")))
	if err := m.Load(); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Load error = %v, want ErrConfigNotFound", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	isolate(t)
	m, _ := NewManager(WithConfigFile(writeConfig(t, "[bindings.up]\ncode = \"Up\"\n")))
	if err := m.Load(); err != nil {
		t.Fatal(err)
	}

	cfg := m.Get()
	cfg.Bindings["down"] = key.NewSpecialEvent(key.KeyDown, key.ModNone)
	cfg.Logging.Level = "trace"

	again := m.Get()
	if len(again.Bindings) != 1 || again.Logging.Level != "warn" {
		t.Errorf("Get leaked a mutable reference: %+v", again)
	}
}

func TestWatch(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "[logging]\nlevel = \"info\"\n")
	m, _ := NewManager(WithConfigFile(path))
	if err := m.Load(); err != nil {
		t.Fatal(err)
	}

	changed := make(chan *Config, 8)
	m.OnConfigChange(func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	if err := m.Watch(); err != nil {
		t.Fatalf("Watch error = %v", err)
	}
	if err := m.Watch(); !errors.Is(err, ErrAlreadyWatching) {
		t.Errorf("second Watch error = %v, want ErrAlreadyWatching", err)
	}

	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"debug\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changed:
			if cfg.Logging.Level == "debug" {
				if got := m.Get().Logging.Level; got != "debug" {
					t.Errorf("Get after reload = %q", got)
				}
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatchWithoutFile(t *testing.T) {
	isolate(t)
	m, _ := NewManager()
	if err := m.Load(); err != nil {
		t.Fatal(err)
	}
	if err := m.Watch(); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Watch error = %v, want ErrConfigNotFound", err)
	}
}
