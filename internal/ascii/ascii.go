// Package ascii classifies and case-maps single bytes.
//
// Only the 7-bit ASCII letters have case. Every other byte, including all
// bytes >= 0x80, maps to itself. The tables are fixed at package init and
// never consult process locale, so every function here is safe for
// concurrent use.
package ascii

import "unicode/utf8"

var (
	upper [256]byte
	lower [256]byte
)

func init() {
	for i := 0; i < 256; i++ {
		c := byte(i)
		upper[i] = c
		lower[i] = c
		switch {
		case c >= 'a' && c <= 'z':
			upper[i] = c - ('a' - 'A')
		case c >= 'A' && c <= 'Z':
			lower[i] = c + ('a' - 'A')
		}
	}
}

// Upper converts ASCII lowercase to uppercase.
// Non-lowercase bytes are returned unchanged.
func Upper(c byte) byte { return upper[c] }

// Lower converts ASCII uppercase to lowercase.
// Non-uppercase bytes are returned unchanged.
func Lower(c byte) byte { return lower[c] }

// EqualFold reports whether a and b are the same byte after ASCII case folding.
func EqualFold(a, b byte) bool { return lower[a] == lower[b] }

// IsASCII reports whether every byte of s is below 0x80.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
