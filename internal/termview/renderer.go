package termview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/textwell/internal/textarea/core"
)

// rowRenderer is one display row inside a View. It records what the
// text area writes and is flushed to the screen by View.Render.
type rowRenderer struct {
	view *View

	chars    []rune
	colors   []core.Color
	row      int
	enabled  bool
	released bool
}

func (r *rowRenderer) SetCharacters(chars []rune, colors []core.Color) {
	r.view.mu.Lock()
	defer r.view.mu.Unlock()
	r.chars = append(r.chars[:0], chars...)
	r.colors = append(r.colors[:0], colors...)
}

func (r *rowRenderer) PushColors(colors []core.Color) {
	r.view.mu.Lock()
	defer r.view.mu.Unlock()
	r.colors = append(r.colors[:0], colors...)
}

func (r *rowRenderer) SetRow(row int) {
	r.view.mu.Lock()
	defer r.view.mu.Unlock()
	r.row = row
}

func (r *rowRenderer) SetEnabled(enabled bool) {
	r.view.mu.Lock()
	defer r.view.mu.Unlock()
	r.enabled = enabled
}

func (r *rowRenderer) Release() {
	r.view.mu.Lock()
	defer r.view.mu.Unlock()
	r.released = true
	rows := r.view.rows
	for i, other := range rows {
		if other == r {
			r.view.rows = append(rows[:i], rows[i+1:]...)
			break
		}
	}
}

// draw flushes the row to the screen. Tabs advance to the next tab
// stop; line terminators occupy no cells. Called with the view lock
// held.
func (r *rowRenderer) draw(v *View, quads []core.Quad) {
	if !r.enabled || r.released || r.row < 0 || r.row >= v.h {
		return
	}

	col := 0
	for i, ch := range r.chars {
		if col >= v.w {
			break
		}
		switch ch {
		case '\n', '\r':
			continue
		case '\t':
			next := (col/v.tabCells + 1) * v.tabCells
			for ; col < next && col < v.w; col++ {
				v.drawCell(col, r.row, ' ', r.colorAt(i), quads)
			}
			continue
		}

		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		v.drawCell(col, r.row, ch, r.colorAt(i), quads)
		col += w
	}
}

func (r *rowRenderer) colorAt(i int) core.Color {
	if i < len(r.colors) {
		return r.colors[i]
	}
	return core.ColorWhite
}

// drawCell paints one glyph, using the highlight background when the
// cell lies inside a selection quad.
func (v *View) drawCell(col, row int, ch rune, fg core.Color, quads []core.Quad) {
	style := tcell.StyleDefault.Foreground(toTcell(fg))
	if cellSelected(quads, col, row) {
		style = tcell.StyleDefault.
			Foreground(toTcell(lighten(fg, 0.3))).
			Background(toTcell(v.highlight))
	}
	v.screen.SetContent(v.x+col, v.y+row, ch, nil, style)
}
