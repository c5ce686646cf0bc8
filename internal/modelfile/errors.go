package modelfile

import "errors"

// Common errors.
var (
	ErrInvalidMagic       = errors.New("not a subword model file")
	ErrUnsupportedVersion = errors.New("unsupported model file version")
	ErrMalformedHeader    = errors.New("malformed section header")
	ErrMalformedRule      = errors.New("malformed merge rule line")
	ErrMalformedToken     = errors.New("malformed token line")
	ErrTruncated          = errors.New("model file ends before declared section is complete")
)
