package termview

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/textwell/internal/textarea/core"
)

// View owns a rectangular screen region and renders text area rows
// into it. One cell is one layout unit, so it pairs with a fontface
// Mono configured with a cell width of 1.
type View struct {
	mu sync.Mutex

	screen tcell.Screen
	x, y   int
	w, h   int

	tabCells  int
	highlight core.Color

	rows []*rowRenderer
}

// Option configures a View.
type Option func(*View)

// WithTabCells sets the tab stop interval used when drawing tabs.
func WithTabCells(n int) Option {
	return func(v *View) {
		if n > 0 {
			v.tabCells = n
		}
	}
}

// WithHighlightColor sets the selection background color.
func WithHighlightColor(c core.Color) Option {
	return func(v *View) {
		v.highlight = c
	}
}

// New creates a view covering the w by h cell region with its top-left
// corner at screen position (x, y).
func New(screen tcell.Screen, x, y, w, h int, opts ...Option) *View {
	v := &View{
		screen:    screen,
		x:         x,
		y:         y,
		w:         w,
		h:         h,
		tabCells:  4,
		highlight: core.Color{R: 38, G: 79, B: 120, A: 255},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewRenderer creates a line renderer positioned inside the view. It
// is the factory handed to the text area's renderer pool.
func (v *View) NewRenderer() core.LineRenderer {
	r := &rowRenderer{view: v, enabled: true}
	v.mu.Lock()
	v.rows = append(v.rows, r)
	v.mu.Unlock()
	return r
}

// Resize moves and resizes the view region.
func (v *View) Resize(x, y, w, h int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.x, v.y, v.w, v.h = x, y, w, h
}

// Size returns the view extent in cells.
func (v *View) Size() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.w, v.h
}

// Render draws all enabled rows into the screen region. quads are the
// selection rectangles from the text area, painted as background
// behind the glyphs. The caller is responsible for screen.Show.
func (v *View) Render(quads []core.Quad) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.clear()
	v.paintQuads(quads)
	for _, r := range v.rows {
		r.draw(v, quads)
	}
}

// paintQuads fills selection rectangles with the highlight background
// so the highlight shows even past the last glyph on a row.
func (v *View) paintQuads(quads []core.Quad) {
	bg := tcell.StyleDefault.Background(toTcell(v.highlight))
	for _, q := range quads {
		row := int(q.Y)
		if row < 0 || row >= v.h {
			continue
		}
		start := int(math.Floor(q.X))
		end := int(math.Ceil(q.X + q.W))
		for col := start; col < end && col < v.w; col++ {
			if col < 0 {
				continue
			}
			v.screen.SetContent(v.x+col, v.y+row, ' ', nil, bg)
		}
	}
}

func (v *View) clear() {
	for row := 0; row < v.h; row++ {
		for col := 0; col < v.w; col++ {
			v.screen.SetContent(v.x+col, v.y+row, ' ', nil, tcell.StyleDefault)
		}
	}
}

// cellSelected reports whether the cell at (col, row) in view
// coordinates falls inside any selection quad.
func cellSelected(quads []core.Quad, col, row int) bool {
	x := float64(col)
	for _, q := range quads {
		if int(q.Y) != row {
			continue
		}
		if x >= math.Floor(q.X) && x < math.Ceil(q.X+q.W) {
			return true
		}
	}
	return false
}

// toTcell converts a color to a tcell RGB color.
func toTcell(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// lighten blends c toward white in RGB space for contrast against the
// highlight background.
func lighten(c core.Color, t float64) core.Color {
	from := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	white := colorful.Color{R: 1, G: 1, B: 1}
	out := from.BlendRgb(white, t).Clamped()
	return core.Color{
		R: uint8(math.Round(out.R * 255)),
		G: uint8(math.Round(out.G * 255)),
		B: uint8(math.Round(out.B * 255)),
		A: c.A,
	}
}
