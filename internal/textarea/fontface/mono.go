// Package fontface provides font metrics providers for the text area.
//
// Mono models a monospaced terminal-style face: advances are whole
// cells, wide East Asian runes take two, and coverage is configurable
// so hosts can model fonts with missing glyphs.
package fontface

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Mono is a monospaced metrics provider. The zero value is not usable;
// construct with NewMono.
type Mono struct {
	cellWidth   float64
	lineHeight  float64
	tabCells    int
	replacement rune
	covers      func(rune) bool
}

// MonoOption configures a Mono face.
type MonoOption func(*Mono)

// WithCellSize sets the width of one cell and the height of one row.
func WithCellSize(width, height float64) MonoOption {
	return func(m *Mono) {
		if width > 0 {
			m.cellWidth = width
		}
		if height > 0 {
			m.lineHeight = height
		}
	}
}

// WithTabCells sets the tab stop distance in cells.
func WithTabCells(cells int) MonoOption {
	return func(m *Mono) {
		if cells > 0 {
			m.tabCells = cells
		}
	}
}

// WithReplacement sets the face's placeholder glyph for missing runes.
func WithReplacement(r rune) MonoOption {
	return func(m *Mono) {
		m.replacement = r
	}
}

// WithCoverage restricts the face to runes accepted by covers.
// Runes outside the coverage report as missing and get substituted.
func WithCoverage(covers func(rune) bool) MonoOption {
	return func(m *Mono) {
		m.covers = covers
	}
}

// NewMono creates a monospaced face with 1x1 cells, tab stops every 4
// cells, and the generic replacement character as placeholder.
func NewMono(opts ...MonoOption) *Mono {
	m := &Mono{
		cellWidth:   1,
		lineHeight:  1,
		tabCells:    4,
		replacement: '�',
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Advance returns the rune's width in units: one cell for narrow runes,
// two for wide East Asian runes. Control runes, zero-width runes, and
// runes outside the configured coverage have no glyph.
func (m *Mono) Advance(r rune) (float64, bool) {
	if m.covers != nil && !m.covers(r) {
		return 0, false
	}
	if unicode.IsControl(r) {
		return 0, false
	}
	cells := runewidth.RuneWidth(r)
	if cells == 0 {
		return 0, false
	}
	return float64(cells) * m.cellWidth, true
}

// LineHeight returns the height of one display row.
func (m *Mono) LineHeight() float64 {
	return m.lineHeight
}

// TabWidth returns the distance between tab stops.
func (m *Mono) TabWidth() float64 {
	return float64(m.tabCells) * m.cellWidth
}

// Replacement returns the face's placeholder glyph. The placeholder
// must itself be covered to be used; the layout engine falls back
// further otherwise.
func (m *Mono) Replacement() (rune, bool) {
	if m.replacement == 0 {
		return 0, false
	}
	return m.replacement, true
}
