package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrUnknownGrammeme   = errors.New("unknown grammeme")
	ErrInvalidGrammeme   = errors.New("invalid grammeme in tag")
	ErrMalformedDocument = errors.New("malformed corpus document")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrNotFound          = errors.New("not found")
)
