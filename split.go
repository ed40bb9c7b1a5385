package bytestr

import (
	"fmt"
	"strings"

	"bytestr/internal/scan"
)

// EmptyParts selects whether Split emits zero-length parts.
type EmptyParts int

const (
	// KeepEmpty emits every part, including empty ones between adjacent
	// tokens and at either end. A subject with k occurrences of the token
	// always splits into k+1 parts.
	KeepEmpty EmptyParts = iota

	// IgnoreEmpty drops zero-length parts.
	IgnoreEmpty
)

func (p EmptyParts) String() string {
	switch p {
	case KeepEmpty:
		return "keep-empty"
	case IgnoreEmpty:
		return "ignore-empty"
	default:
		return fmt.Sprintf("EmptyParts(%d)", int(p))
	}
}

// Split slices s around each non-overlapping occurrence of token, using the
// exact finder. The parts are views into s.
func Split(s, token string, policy EmptyParts) ([]string, error) {
	return Exact.Split(s, token, policy)
}

// SplitCopy is Split with every part copied out of s.
func SplitCopy(s, token string, policy EmptyParts) ([]string, error) {
	return Exact.SplitCopy(s, token, policy)
}

// SplitFirst splits s around the first occurrence of token, using the exact
// finder. Without a match it returns s and "".
func SplitFirst(s, token string) (before, after string, err error) {
	return Exact.SplitFirst(s, token)
}

// SplitFirstCopy is SplitFirst with both halves copied out of s.
func SplitFirstCopy(s, token string) (before, after string, err error) {
	return Exact.SplitFirstCopy(s, token)
}

// Cut is SplitFirst that also reports whether token was found.
func Cut(s, token string) (before, after string, found bool, err error) {
	return Exact.Cut(s, token)
}

// Split slices s around each non-overlapping occurrence of token, scanning
// left to right. The parts are views into s, in document order.
//
// With KeepEmpty the result always has Count(s, token)+1 parts and joining
// them with token reproduces s. With IgnoreEmpty empty parts are dropped and
// the result is nil when nothing remains.
func (f Finder) Split(s, token string, policy EmptyParts) ([]string, error) {
	return f.split("split", s, token, policy, view)
}

// SplitCopy is Split with every part copied out of s.
func (f Finder) SplitCopy(s, token string, policy EmptyParts) ([]string, error) {
	return f.split("split copy", s, token, policy, strings.Clone)
}

// SplitFirst splits s around the first occurrence of token.
// Without a match it returns s and "".
func (f Finder) SplitFirst(s, token string) (before, after string, err error) {
	before, after, _, err = f.cut("split first", s, token)
	return before, after, err
}

// SplitFirstCopy is SplitFirst with both halves copied out of s.
func (f Finder) SplitFirstCopy(s, token string) (before, after string, err error) {
	before, after, _, err = f.cut("split first copy", s, token)
	if err != nil {
		return "", "", err
	}
	return strings.Clone(before), strings.Clone(after), nil
}

// Cut is SplitFirst that also reports whether token was found, which tells
// "no token" apart from "token at the end".
func (f Finder) Cut(s, token string) (before, after string, found bool, err error) {
	return f.cut("cut", s, token)
}

func (f Finder) cut(op, s, token string) (before, after string, found bool, err error) {
	if token == "" {
		return "", "", false, fmt.Errorf("%s: %w", op, ErrEmptyToken)
	}
	i := scan.First(s, token, f.indexFunc())
	if i < 0 {
		return s, "", false, nil
	}
	return s[:i], s[i+len(token):], true, nil
}

// Splitter splits subjects around one token with a fixed policy. It is
// immutable and safe for concurrent use.
type Splitter struct {
	finder Finder
	token  string
	keep   bool
}

// NewSplitter returns a Splitter for token and policy using finder f.
func (f Finder) NewSplitter(token string, policy EmptyParts) (*Splitter, error) {
	keep, err := validateSplit("split", token, policy)
	if err != nil {
		return nil, err
	}
	return &Splitter{finder: f, token: token, keep: keep}, nil
}

// Split behaves like Finder.Split with the Splitter's token and policy.
func (sp *Splitter) Split(s string) []string {
	return split(sp.finder.indexFunc(), s, sp.token, sp.keep, view)
}

func view(s string) string { return s }

// validateSplit rejects an empty token or unknown policy and reports
// whether empty parts are kept.
func validateSplit(op, token string, policy EmptyParts) (keep bool, err error) {
	if token == "" {
		return false, fmt.Errorf("%s: %w", op, ErrEmptyToken)
	}
	switch policy {
	case KeepEmpty:
		return true, nil
	case IgnoreEmpty:
		return false, nil
	default:
		return false, fmt.Errorf("%s: %w: %v", op, ErrInvalidPolicy, policy)
	}
}

func (f Finder) split(op, s, token string, policy EmptyParts, emit func(string) string) ([]string, error) {
	keep, err := validateSplit(op, token, policy)
	if err != nil {
		return nil, err
	}
	return split(f.indexFunc(), s, token, keep, emit), nil
}

func split(index scan.IndexFunc, s, token string, keep bool, emit func(string) string) []string {
	var parts []string
	start := 0
	scan.Each(s, token, index, func(i int) bool {
		if keep || i > start {
			parts = append(parts, emit(s[start:i]))
		}
		start = i + len(token)
		return true
	})
	// The tail is always a part under KeepEmpty, even when empty.
	if keep || start < len(s) {
		parts = append(parts, emit(s[start:]))
	}
	return parts
}
