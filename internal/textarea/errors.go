package textarea

import "errors"

// Errors returned by text area operations.
var (
	// ErrNoFace indicates construction or reconfiguration without a
	// valid font face. A text area cannot measure text without one.
	ErrNoFace = errors.New("font face is required")

	// ErrNoFactory indicates construction without a renderer factory.
	ErrNoFactory = errors.New("renderer factory is required")
)
