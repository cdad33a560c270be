package plugin

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/keycodec/internal/input/key"
	"github.com/dshills/keycodec/internal/input/keymap"
	plua "github.com/dshills/keycodec/internal/plugin/lua"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lua")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestHostRunEditsKeymap(t *testing.T) {
	km := keymap.NewKeymap("test").Add("move_up", key.NewSpecialEvent(key.KeyUp, key.ModNone))
	var out bytes.Buffer
	host := NewHost(km, WithOutput(&out))

	path := writeScript(t, `
		keymap.set("move_up", "k")
		keymap.set("quit", "q", "CONTROL")
		print(keys.format("q", "CONTROL"))
	`)
	if err := host.Run(context.Background(), path); err != nil {
		t.Fatalf("Run error = %v", err)
	}

	if got, _ := km.Get("move_up"); got != key.NewRuneEvent('k', key.ModNone) {
		t.Errorf("move_up = %#v", got)
	}
	if got, _ := host.Keymap().Get("quit"); got != key.NewRuneEvent('q', key.ModCtrl) {
		t.Errorf("quit = %#v", got)
	}
	if got := out.String(); got != "CONTROL+q\n" {
		t.Errorf("output = %q, want %q", got, "CONTROL+q\n")
	}
}

func TestHostStatePersistsOnlyInKeymap(t *testing.T) {
	host := NewHost(nil, WithOutput(&bytes.Buffer{}))
	ctx := context.Background()

	if err := host.RunString(ctx, `x = 1; keymap.set("a", "a")`); err != nil {
		t.Fatalf("RunString error = %v", err)
	}
	if err := host.RunString(ctx, `assert(x == nil); assert(keymap.get("a") ~= nil)`); err != nil {
		t.Errorf("second RunString error = %v", err)
	}
}

func TestHostRunErrors(t *testing.T) {
	host := NewHost(nil, WithOutput(&bytes.Buffer{}))
	ctx := context.Background()

	if err := host.Run(ctx, filepath.Join(t.TempDir(), "missing.lua")); !errors.Is(err, ErrScriptNotFound) {
		t.Errorf("Run(missing) error = %v, want ErrScriptNotFound", err)
	}
	if err := host.Run(ctx, "keys.yaml"); !errors.Is(err, ErrNotLuaScript) {
		t.Errorf("Run(yaml) error = %v, want ErrNotLuaScript", err)
	}

	path := writeScript(t, `keys.decode("Up", "ALT+WINDOWS")`)
	err := host.Run(ctx, path)
	var se *ScriptError
	if !errors.As(err, &se) || se.Path != path {
		t.Fatalf("Run error = %v, want ScriptError for %s", err, path)
	}
	if !strings.Contains(err.Error(), "WINDOWS") {
		t.Errorf("error %q does not name the bad keyword", err)
	}
}

func TestHostTimeout(t *testing.T) {
	host := NewHost(nil, WithOutput(&bytes.Buffer{}), WithExecutionTimeout(50*time.Millisecond))

	err := host.RunString(context.Background(), "while true do end")
	if !errors.Is(err, plua.ErrExecutionTimeout) {
		t.Errorf("RunString error = %v, want ErrExecutionTimeout", err)
	}
}

func TestHostSandbox(t *testing.T) {
	host := NewHost(nil, WithOutput(&bytes.Buffer{}))

	if err := host.RunString(context.Background(), `os.exit(1)`); err == nil {
		t.Error("os should not be available")
	}
}
