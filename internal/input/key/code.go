package key

import "fmt"

// Code is the identity of a pressed key: either a character or a named key.
//
// Exactly one variant is meaningful. For character keys Key is KeyRune and
// Rune holds the character; for every other key Rune is zero.
type Code struct {
	Key  Key
	Rune rune
}

// Char returns the character variant of Code.
func Char(r rune) Code {
	return Code{Key: KeyRune, Rune: r}
}

// Named returns the named-key variant of Code.
// Passing KeyRune yields the character variant for the NUL rune.
func Named(k Key) Code {
	return Code{Key: k}
}

// IsChar returns true for the character variant.
func (c Code) IsChar() bool {
	return c.Key == KeyRune
}

// String returns a debugging representation, e.g. 'a' or Up.
func (c Code) String() string {
	if c.IsChar() {
		return fmt.Sprintf("%q", c.Rune)
	}
	return c.Key.String()
}
