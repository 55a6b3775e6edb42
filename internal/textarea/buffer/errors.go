package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrIndexOutOfRange indicates a start index outside the valid buffer range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCountInvalid indicates a non-positive character count.
	ErrCountInvalid = errors.New("count must be positive")

	// ErrRangeInvalid indicates a range extending past the end of its source.
	ErrRangeInvalid = errors.New("range exceeds length")
)
