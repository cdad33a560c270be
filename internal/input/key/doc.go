// Package key provides the key event model for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a named keyboard key, or KeyRune for characters
//   - Code: The identity of a pressed key, a character or a named key
//   - Modifier: Set of modifier keys (Shift, Ctrl, Alt, Super, Hyper, Meta)
//   - Event: A single key event with modifiers, kind and extra state
//
// The textual configuration form of these values lives in package keycodec.
package key
