package config

import "errors"

// Configuration validation errors.
var (
	// ErrInvalidCellWidth indicates a non-positive cell width.
	ErrInvalidCellWidth = errors.New("config: cell width must be positive")

	// ErrInvalidLineHeight indicates a non-positive line height.
	ErrInvalidLineHeight = errors.New("config: line height must be positive")

	// ErrInvalidTabCells indicates a non-positive tab cell count.
	ErrInvalidTabCells = errors.New("config: tab cells must be positive")

	// ErrInvalidColor indicates a color string that is not #rrggbb hex.
	ErrInvalidColor = errors.New("config: invalid color")

	// ErrInvalidDragSpeed indicates a negative drag scroll speed.
	ErrInvalidDragSpeed = errors.New("config: drag speed must not be negative")

	// ErrInvalidReplacement indicates a replacement glyph that is not a
	// single character.
	ErrInvalidReplacement = errors.New("config: replacement must be a single character")
)
