package bytestr

import (
	"fmt"
	"strings"

	"bytestr/internal/scan"
)

// Replace returns a copy of s with every non-overlapping occurrence of
// search replaced by repl, using the exact finder.
func Replace(s, search, repl string) (string, error) {
	return Exact.Replace(s, search, repl)
}

// Count returns the number of non-overlapping occurrences of token in s.
func Count(s, token string) (int, error) {
	return Exact.Count(s, token)
}

// Positions returns the start offset of every non-overlapping occurrence
// of token in s, in increasing order.
func Positions(s, token string) ([]int, error) {
	return Exact.Positions(s, token)
}

// Replacer replaces one token with another. It is immutable and safe for
// concurrent use.
type Replacer struct {
	finder Finder
	search string
	repl   string
}

// NewReplacer returns a Replacer for search and repl using finder f.
func (f Finder) NewReplacer(search, repl string) (*Replacer, error) {
	if search == "" {
		return nil, fmt.Errorf("replace: %w", ErrEmptyToken)
	}
	return &Replacer{finder: f, search: search, repl: repl}, nil
}

// Replace returns a copy of s with every non-overlapping occurrence of
// search replaced by repl. The result never shares memory with s.
func (f Finder) Replace(s, search, repl string) (string, error) {
	if search == "" {
		return "", fmt.Errorf("replace: %w", ErrEmptyToken)
	}
	return replace(f.indexFunc(), s, search, repl), nil
}

// Count returns the number of non-overlapping occurrences of token in s.
func (f Finder) Count(s, token string) (int, error) {
	if token == "" {
		return 0, fmt.Errorf("count: %w", ErrEmptyToken)
	}
	return scan.Count(s, token, f.indexFunc()), nil
}

// Positions returns the start offset of every non-overlapping occurrence
// of token in s, in increasing order. It returns nil when there are none.
func (f Finder) Positions(s, token string) ([]int, error) {
	if token == "" {
		return nil, fmt.Errorf("positions: %w", ErrEmptyToken)
	}
	return scan.Positions(s, token, f.indexFunc()), nil
}

// Replace returns a copy of s with every non-overlapping occurrence of the
// search token replaced.
func (r *Replacer) Replace(s string) string {
	return replace(r.finder.indexFunc(), s, r.search, r.repl)
}

// replace scans s once to collect match positions. The output size is then
// known exactly, so it is allocated once and filled in a single pass with no
// growth.
func replace(index scan.IndexFunc, s, search, repl string) string {
	positions := scan.Positions(s, search, index)
	if len(positions) == 0 {
		return strings.Clone(s)
	}

	var b strings.Builder
	b.Grow(replacedLen(len(s), len(search), len(repl), len(positions)))
	cursor := 0
	for _, p := range positions {
		b.WriteString(s[cursor:p])
		b.WriteString(repl)
		cursor = p + len(search)
	}
	b.WriteString(s[cursor:])
	return b.String()
}

// replacedLen is the length of a subject of n bytes after m matches of a
// search token are swapped for a replacement.
func replacedLen(n, searchLen, replLen, m int) int {
	return n - m*searchLen + m*replLen
}
