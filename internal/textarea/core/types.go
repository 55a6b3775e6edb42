// Package core provides shared types for the textarea subsystem.
// This package breaks import cycles between the layout, viewport,
// selection, and rendering packages.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents a 32-bit RGBA color attached to a single character.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	ColorWhite = Color{R: 255, G: 255, B: 255, A: 255}
	ColorBlack = Color{R: 0, G: 0, B: 0, A: 255}
	ColorGray  = Color{R: 128, G: 128, B: 128, A: 255}
)

// ColorFromRGB creates an opaque color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ColorFromHex creates a color from a hex string ("#rgb", "#rrggbb",
// or "#rrggbbaa", leading '#' optional).
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	parse := func(s string) (uint8, error) {
		v, err := strconv.ParseUint(s, 16, 8)
		return uint8(v), err
	}

	switch len(hex) {
	case 3:
		c := Color{A: 255}
		var err error
		if c.R, err = parse(string(hex[0]) + string(hex[0])); err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		if c.G, err = parse(string(hex[1]) + string(hex[1])); err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		if c.B, err = parse(string(hex[2]) + string(hex[2])); err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		return c, nil
	case 6, 8:
		c := Color{A: 255}
		var err error
		if c.R, err = parse(hex[0:2]); err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		if c.G, err = parse(hex[2:4]); err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		if c.B, err = parse(hex[4:6]); err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		if len(hex) == 8 {
			if c.A, err = parse(hex[6:8]); err != nil {
				return Color{}, fmt.Errorf("invalid hex color: %s", hex)
			}
		}
		return c, nil
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Line describes one wrapped display line as a span of the character buffer.
type Line struct {
	// Start is the offset of the line's first character.
	Start int

	// Length is the number of characters on the line, including any
	// terminator characters consumed by the line.
	Length int
}

// End returns the offset one past the line's last character.
func (l Line) End() int {
	return l.Start + l.Length
}

// Contains returns true if the character offset falls within the line.
func (l Line) Contains(offset int) bool {
	return offset >= l.Start && offset < l.End()
}

// Face provides the font metrics the layout engine measures with.
// Implementations are immutable for the lifetime of the component;
// replacing the face is a full re-initialization.
type Face interface {
	// Advance returns the advance width of a rune, and false if the
	// face has no glyph for it.
	Advance(r rune) (float64, bool)

	// LineHeight returns the height of one display row.
	LineHeight() float64

	// TabWidth returns the distance between tab stops.
	TabWidth() float64

	// Replacement returns the face's preferred substitute for runes it
	// cannot display, and false if the face defines none.
	Replacement() (rune, bool)
}

// LineRenderer is an opaque handle to one renderable display row.
// The layout engine writes to renderers; it never reads them back.
type LineRenderer interface {
	// SetCharacters replaces the renderer's content with the given
	// runes and their per-rune colors. Both slices have equal length.
	SetCharacters(chars []rune, colors []Color)

	// PushColors updates per-rune colors without relayout.
	// len(colors) matches the current character count.
	PushColors(colors []Color)

	// SetRow positions the renderer at the given visible row (0 = top).
	SetRow(row int)

	// SetEnabled shows or hides the renderer.
	SetEnabled(enabled bool)

	// Release frees backend resources. The handle must not be used
	// after Release.
	Release()
}

// Quad is an axis-aligned highlight rectangle in local coordinates.
// Y grows downward from the top of the visible window.
type Quad struct {
	X, Y, W, H float64
}
