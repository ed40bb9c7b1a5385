// Package bytestr provides byte-oriented string primitives: prefix and
// suffix tests, token splitting, first-token extraction, fixed-width
// chunking, multi-occurrence replacement and ASCII case mapping.
//
// Everything here works on bytes. A "character" is a byte, case folding
// only touches the ASCII letters, and no function decodes UTF-8.
//
// Functions that return views (Split, SplitFirst, Chunk) return sub-slices
// of the subject string and never copy. The Copy variants return strings
// that share no memory with the subject. Replace always returns a new
// string.
//
// Operations that search for a token reject an empty token with
// ErrEmptyToken. Search is exact by default; the Fold finder matches ASCII
// letters case-insensitively.
package bytestr
