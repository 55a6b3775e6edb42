package config

import (
	"fmt"
	"math"
	"os"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/textwell/internal/textarea/core"
)

// Settings holds the complete textwell configuration.
type Settings struct {
	Text   TextSettings   `toml:"text"`
	Colors ColorSettings  `toml:"colors"`
	Scroll ScrollSettings `toml:"scroll"`
}

// TextSettings controls glyph metrics and substitution.
type TextSettings struct {
	// CellWidth is the advance of a single-cell glyph.
	CellWidth float64 `toml:"cell_width"`

	// LineHeight is the vertical extent of one laid-out line.
	LineHeight float64 `toml:"line_height"`

	// TabCells is the tab stop interval in cells.
	TabCells int `toml:"tab_cells"`

	// Replacement is the glyph substituted for characters the face
	// cannot render. Empty disables the face-level placeholder.
	Replacement string `toml:"replacement"`
}

// ColorSettings holds colors as hex strings ("#rrggbb").
type ColorSettings struct {
	Foreground string `toml:"foreground"`
	Highlight  string `toml:"highlight"`
}

// ScrollSettings controls scrolling behavior.
type ScrollSettings struct {
	// DragSpeed is the auto-scroll rate in lines per second per line
	// of pointer overshoot.
	DragSpeed float64 `toml:"drag_speed"`

	// FollowTail pins the window to the bottom as text is appended.
	FollowTail bool `toml:"follow_tail"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Text: TextSettings{
			CellWidth:   1,
			LineHeight:  1,
			TabCells:    4,
			Replacement: "□",
		},
		Colors: ColorSettings{
			Foreground: "#d0d0d0",
			Highlight:  "#264f78",
		},
		Scroll: ScrollSettings{
			DragSpeed:  12,
			FollowTail: true,
		},
	}
}

// Load reads settings from a TOML file. Fields absent from the file
// keep their defaults. A missing file yields the defaults without
// error; a present but invalid file is an error.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Default(), err
	}
	return s, nil
}

// Validate checks settings for internal consistency.
func (s Settings) Validate() error {
	if s.Text.CellWidth <= 0 {
		return ErrInvalidCellWidth
	}
	if s.Text.LineHeight <= 0 {
		return ErrInvalidLineHeight
	}
	if s.Text.TabCells <= 0 {
		return ErrInvalidTabCells
	}
	if s.Text.Replacement != "" && utf8.RuneCountInString(s.Text.Replacement) != 1 {
		return ErrInvalidReplacement
	}
	if s.Scroll.DragSpeed < 0 {
		return ErrInvalidDragSpeed
	}
	if _, err := parseColor(s.Colors.Foreground); err != nil {
		return err
	}
	if _, err := parseColor(s.Colors.Highlight); err != nil {
		return err
	}
	return nil
}

// ForegroundColor returns the parsed foreground color.
func (s Settings) ForegroundColor() (core.Color, error) {
	return parseColor(s.Colors.Foreground)
}

// HighlightColor returns the parsed highlight color.
func (s Settings) HighlightColor() (core.Color, error) {
	return parseColor(s.Colors.Highlight)
}

// ReplacementRune returns the configured replacement glyph and whether
// one is set.
func (s Settings) ReplacementRune() (rune, bool) {
	if s.Text.Replacement == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.Text.Replacement)
	return r, true
}

func parseColor(hex string) (core.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return core.Color{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: 255,
	}, nil
}
