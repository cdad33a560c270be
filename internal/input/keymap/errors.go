package keymap

import (
	"errors"
	"fmt"
)

// Errors returned by keymap operations.
var (
	// ErrUnknownFormat indicates a file extension or format name that is not supported.
	ErrUnknownFormat = errors.New("unknown keymap format")

	// ErrActionNotFound indicates the action has no binding.
	ErrActionNotFound = errors.New("action not found")

	// ErrEmptyAction indicates an empty action name.
	ErrEmptyAction = errors.New("action name cannot be empty")
)

// ParseError represents a syntax error in a keymap file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// BindingError ties a codec error to the action whose binding caused it.
type BindingError struct {
	// Action is the action name.
	Action string
	// Err is the keycodec error.
	Err error
}

// Error implements the error interface.
func (e *BindingError) Error() string {
	return fmt.Sprintf("binding %q: %v", e.Action, e.Err)
}

// Unwrap returns the underlying error.
func (e *BindingError) Unwrap() error {
	return e.Err
}

// BindingErrors extracts every BindingError from err, which may be a
// joined error as returned by Decode.
func BindingErrors(err error) []*BindingError {
	var out []*BindingError
	var walk func(error)
	walk = func(err error) {
		if err == nil {
			return
		}
		if be, ok := err.(*BindingError); ok {
			out = append(out, be)
			return
		}
		switch x := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range x.Unwrap() {
				walk(e)
			}
		case interface{ Unwrap() error }:
			walk(x.Unwrap())
		}
	}
	walk(err)
	return out
}
