package plugin

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/keycodec/internal/input/keymap"
	"github.com/dshills/keycodec/internal/plugin/api"
	plua "github.com/dshills/keycodec/internal/plugin/lua"
)

// Host runs keymap scripts against a keymap.
type Host struct {
	keymap *api.KeymapModule

	output           io.Writer
	executionTimeout time.Duration
	logger           zerolog.Logger
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithOutput sets where script print output goes.
func WithOutput(w io.Writer) HostOption {
	return func(h *Host) {
		h.output = w
	}
}

// WithExecutionTimeout sets the timeout for each script run.
func WithExecutionTimeout(d time.Duration) HostOption {
	return func(h *Host) {
		h.executionTimeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) HostOption {
	return func(h *Host) {
		h.logger = logger
	}
}

// NewHost creates a host for km. A nil km starts from an empty keymap.
func NewHost(km *keymap.Keymap, opts ...HostOption) *Host {
	h := &Host{
		keymap:           api.NewKeymapModule(km),
		output:           os.Stdout,
		executionTimeout: plua.DefaultExecutionTimeout,
		logger:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Keymap returns the keymap scripts operate on.
func (h *Host) Keymap() *keymap.Keymap {
	return h.keymap.Keymap()
}

// Run executes the script at path in a fresh Lua state with the keys and
// keymap modules installed.
func (h *Host) Run(ctx context.Context, path string) error {
	if filepath.Ext(path) != ".lua" {
		return fmt.Errorf("%w: %s", ErrNotLuaScript, path)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %v", ErrScriptNotFound, err)
	}

	state, err := h.newState()
	if err != nil {
		return err
	}
	defer state.Close()

	h.logger.Debug().Str("path", path).Msg("running script")
	start := time.Now()
	if err := state.DoFile(ctx, path); err != nil {
		return &ScriptError{Path: path, Err: err}
	}
	h.logger.Debug().
		Str("path", path).
		Dur("elapsed", time.Since(start)).
		Int("bindings", h.Keymap().Len()).
		Msg("script finished")
	return nil
}

// RunString executes a Lua chunk like Run.
func (h *Host) RunString(ctx context.Context, code string) error {
	state, err := h.newState()
	if err != nil {
		return err
	}
	defer state.Close()

	if err := state.DoString(ctx, code); err != nil {
		return &ScriptError{Path: "<string>", Err: err}
	}
	return nil
}

func (h *Host) newState() (*plua.State, error) {
	state := plua.NewState(
		plua.WithOutput(h.output),
		plua.WithExecutionTimeout(h.executionTimeout),
	)

	reg := api.NewRegistry()
	for _, mod := range []api.Module{api.NewKeysModule(), h.keymap} {
		if err := reg.Register(mod); err != nil {
			state.Close()
			return nil, err
		}
	}
	if err := reg.InjectAll(state.L); err != nil {
		state.Close()
		return nil, err
	}
	return state, nil
}
