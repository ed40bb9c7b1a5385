package bytestr

import "errors"

// ErrEmptyToken is returned when a search or split token is empty.
var ErrEmptyToken = errors.New("empty token")

// ErrInvalidPolicy is returned for an EmptyParts value other than
// KeepEmpty or IgnoreEmpty.
var ErrInvalidPolicy = errors.New("invalid empty-parts policy")
