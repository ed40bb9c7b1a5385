package bytestr

import "bytestr/internal/ascii"

// StartsWith reports whether s begins with test. It returns false when
// either string is empty or test is longer than s.
func StartsWith(s, test string) bool {
	return startsWith(s, test, equalByte)
}

// EndsWith reports whether s ends with test. It returns false when either
// string is empty or test is longer than s.
func EndsWith(s, test string) bool {
	return endsWith(s, test, equalByte)
}

// StartsWithFold is StartsWith with ASCII case folding.
func StartsWithFold(s, test string) bool {
	return startsWith(s, test, ascii.EqualFold)
}

// EndsWithFold is EndsWith with ASCII case folding.
func EndsWithFold(s, test string) bool {
	return endsWith(s, test, ascii.EqualFold)
}

func equalByte(a, b byte) bool { return a == b }

func bounded(s, test string) bool {
	return len(s) > 0 && len(test) > 0 && len(test) <= len(s)
}

func startsWith(s, test string, eq func(a, b byte) bool) bool {
	if !bounded(s, test) {
		return false
	}
	for i := 0; i < len(test); i++ {
		if !eq(s[i], test[i]) {
			return false
		}
	}
	return true
}

func endsWith(s, test string, eq func(a, b byte) bool) bool {
	if !bounded(s, test) {
		return false
	}
	off := len(s) - len(test)
	for i := len(test) - 1; i >= 0; i-- {
		if !eq(s[off+i], test[i]) {
			return false
		}
	}
	return true
}
