package bytestr

// Chunk slices s into consecutive pieces of width bytes, discarding skip
// bytes after each piece. The last piece may be shorter than width. The
// pieces are views into s.
//
//	Chunk("abcdef123", 3, 0)   // "abc", "def", "123"
//	Chunk("abc,def,123", 3, 1) // "abc", "def", "123"
//
// A width of zero or less, or an empty s, yields nil. A negative skip is
// treated as zero.
func Chunk(s string, width, skip int) []string {
	if width <= 0 || len(s) == 0 {
		return nil
	}
	// Clamping keeps width+skip from overflowing without changing the result.
	width = min(width, len(s))
	skip = min(max(skip, 0), len(s))
	stride := width + skip
	chunks := make([]string, 0, (len(s)+stride-1)/stride)
	for i := 0; i < len(s); i += stride {
		end := min(i+width, len(s))
		chunks = append(chunks, s[i:end])
	}
	return chunks
}
