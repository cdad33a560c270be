package keycodec

import (
	"errors"
	"fmt"

	"github.com/dshills/keycodec/internal/input/key"
)

// Codec errors. Use errors.Is to classify a returned error.
var (
	// ErrEncoding indicates a value that has no text form.
	ErrEncoding = errors.New("cannot encode key")

	// ErrDecoding indicates text that does not describe a key or modifier set.
	ErrDecoding = errors.New("cannot decode key")
)

// Fields named in a DecodingError.
const (
	FieldCode      = "code"
	FieldModifiers = "modifiers"
)

// EncodingError reports a key identity the name table cannot render.
type EncodingError struct {
	// Code is the identity that could not be encoded.
	Code key.Code
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	if e.Code.IsChar() {
		return fmt.Sprintf("%s %U: not a valid character", ErrEncoding, e.Code.Rune)
	}
	return fmt.Sprintf("%s %s: provide one character or a supported key name", ErrEncoding, e.Code.Key)
}

// Is reports whether target is ErrEncoding.
func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

// DecodingError reports text that could not be decoded.
type DecodingError struct {
	// Field is FieldCode or FieldModifiers.
	Field string
	// Input is the full text that was being decoded.
	Input string
	// Token is the offending token, if a single token was at fault.
	Token string
	// Message describes what was expected.
	Message string
}

// Error implements the error interface.
func (e *DecodingError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Message)
}

// Is reports whether target is ErrDecoding.
func (e *DecodingError) Is(target error) bool {
	return target == ErrDecoding
}
