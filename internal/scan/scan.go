// Package scan locates non-overlapping occurrences of a token in a subject.
//
// Occurrences are found left to right. After a match the cursor moves past
// the whole token, so "aaaa" contains "aa" twice, not three times.
//
// Callers must reject empty tokens before calling into this package: an
// empty token matches at every position without advancing the cursor.
package scan

import "strings"

// IndexFunc returns the byte offset of the first occurrence of substr in s,
// or -1 if there is none. A match must always span len(substr) bytes of s.
type IndexFunc func(s, substr string) int

// Exact is the byte-for-byte IndexFunc.
var Exact IndexFunc = strings.Index

// Each calls fn with the start offset of each non-overlapping occurrence of
// token in s, in increasing order. If fn returns false, scanning stops early.
func Each(s, token string, index IndexFunc, fn func(start int) bool) {
	if len(token) == 0 {
		return
	}
	cursor := 0
	for cursor <= len(s)-len(token) {
		i := index(s[cursor:], token)
		if i < 0 {
			return
		}
		start := cursor + i
		if !fn(start) {
			return
		}
		cursor = start + len(token)
	}
}

// Positions returns the start offset of every non-overlapping occurrence of
// token in s. It returns nil when there are none.
func Positions(s, token string, index IndexFunc) []int {
	var positions []int
	Each(s, token, index, func(start int) bool {
		positions = append(positions, start)
		return true
	})
	return positions
}

// First returns the offset of the first occurrence of token in s, or -1.
func First(s, token string, index IndexFunc) int {
	first := -1
	Each(s, token, index, func(start int) bool {
		first = start
		return false
	})
	return first
}

// Count returns the number of non-overlapping occurrences of token in s.
func Count(s, token string, index IndexFunc) int {
	n := 0
	Each(s, token, index, func(int) bool {
		n++
		return true
	})
	return n
}
