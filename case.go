package bytestr

import (
	"strings"

	"bytestr/internal/ascii"
)

// Transform replaces every byte of b with fn applied to it, in place.
// The caller must hold exclusive access to b while it runs.
func Transform(b []byte, fn func(byte) byte) {
	for i, c := range b {
		b[i] = fn(c)
	}
}

// ToUpper maps the ASCII lowercase letters in b to uppercase, in place.
func ToUpper(b []byte) { Transform(b, ascii.Upper) }

// ToLower maps the ASCII uppercase letters in b to lowercase, in place.
func ToLower(b []byte) { Transform(b, ascii.Lower) }

// AsUpper returns a copy of s with ASCII lowercase letters mapped to
// uppercase. Bytes outside a-z are copied unchanged.
func AsUpper(s string) string { return mapped(s, ascii.Upper) }

// AsLower returns a copy of s with ASCII uppercase letters mapped to
// lowercase. Bytes outside A-Z are copied unchanged.
func AsLower(s string) string { return mapped(s, ascii.Lower) }

func mapped(s string, fn func(byte) byte) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b.WriteByte(fn(s[i]))
	}
	return b.String()
}
