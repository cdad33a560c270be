package plugin

import (
	"errors"
	"fmt"
)

// Script errors.
var (
	// ErrScriptNotFound is returned when the script file cannot be read.
	ErrScriptNotFound = errors.New("script not found")

	// ErrNotLuaScript is returned for files without a .lua extension.
	ErrNotLuaScript = errors.New("not a lua script")
)

// ScriptError reports a failure while executing a script.
type ScriptError struct {
	// Path is the script path.
	Path string
	// Err is the Lua error.
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
