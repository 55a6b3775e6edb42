package textarea

import "github.com/dshills/textwell/internal/textarea/core"

// Refresh re-materializes the visible window into pooled renderers.
// Normally the text area refreshes itself after every mutation; callers
// use this to force a repaint after out-of-band renderer changes.
func (t *TextArea) Refresh() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refresh()
}

// refresh diffs the previous visible window against the current one:
// overlapping slots are reused in place, excess slots return to the
// pool, missing slots are acquired from it. Each slot then receives its
// line's characters, colors (with the selection override applied), and
// row position.
func (t *TextArea) refresh() {
	if !t.enabled {
		t.dirty = true
		return
	}
	t.dirty = false

	visible := t.vp.VisibleCount()

	for len(t.slots) > visible {
		last := len(t.slots) - 1
		t.pool.Release(t.slots[last].handle)
		t.slots = t.slots[:last]
	}
	for len(t.slots) < visible {
		h, _ := t.pool.Acquire()
		t.slots = append(t.slots, slot{handle: h, line: -1})
	}

	target := t.vp.Target()
	for row := range t.slots {
		li := target + row
		line := t.idx.Line(li)
		t.slots[row].line = li

		r := t.pool.Get(t.slots[row].handle)
		r.SetCharacters(t.buf.Chars(line.Start, line.Length), t.lineColors(line))
		r.SetRow(row)
	}
}

// lineColors builds the color slice for one line, overriding characters
// inside the active selection with the highlight color.
func (t *TextArea) lineColors(line core.Line) []core.Color {
	colors := make([]core.Color, line.Length)
	copy(colors, t.buf.Colors(line.Start, line.Length))

	if !t.highlightable || !t.sel.Active() {
		return colors
	}
	for i := range colors {
		if t.sel.Contains(line.Start + i) {
			colors[i] = t.highlightColor
		}
	}
	return colors
}

// VisibleLines returns the line indices currently materialized, in row
// order. Mostly useful for tests and debugging overlays.
func (t *TextArea) VisibleLines() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]int, len(t.slots))
	for i, s := range t.slots {
		out[i] = s.line
	}
	return out
}
