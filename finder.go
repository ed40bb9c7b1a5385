package bytestr

import (
	"bytestr/internal/ascii"
	"bytestr/internal/scan"
	"github.com/charlievieth/strcase"
)

// Finder decides how a token is matched against a subject. The zero value
// behaves like Exact.
type Finder struct {
	name  string
	index scan.IndexFunc
}

var (
	// Exact matches tokens byte for byte.
	Exact = Finder{name: "exact", index: scan.Exact}

	// Fold matches ASCII letters without regard to case. Non-ASCII bytes
	// only match themselves, so a match always spans len(token) bytes.
	Fold = Finder{name: "fold", index: indexFold}
)

// String returns the finder's name.
func (f Finder) String() string {
	if f.name == "" {
		return Exact.name
	}
	return f.name
}

func (f Finder) indexFunc() scan.IndexFunc {
	if f.index == nil {
		return scan.Exact
	}
	return f.index
}

// indexFold tries strcase first. strcase applies Unicode simple folding, under
// which some multi-byte runes fold to ASCII letters (U+212A KELVIN SIGN to
// 'k'), so its answer is only kept when the bytes it covers are all ASCII.
// Anything else goes through the byte table.
func indexFold(s, substr string) int {
	if !ascii.IsASCII(substr) {
		return indexFoldBytes(s, substr)
	}
	i := strcase.Index(s, substr)
	if i >= 0 && ascii.IsASCII(s[:min(i+len(substr), len(s))]) {
		return i
	}
	if i < 0 && ascii.IsASCII(s) {
		return -1
	}
	return indexFoldBytes(s, substr)
}

func indexFoldBytes(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if hasPrefixFold(s[i:], substr) {
			return i
		}
	}
	return -1
}

func hasPrefixFold(s, prefix string) bool {
	for i := 0; i < len(prefix); i++ {
		if !ascii.EqualFold(s[i], prefix[i]) {
			return false
		}
	}
	return true
}
