package selection

import "time"

// Engine tracks the selected character range and the drag gesture that
// edits it. It is owned by one text area and is not safe for concurrent
// use.
type Engine struct {
	// start and end are inclusive buffer offsets, -1 when cleared.
	start, end int

	// Drag state.
	dragging bool
	anchor   int

	clicks clickTracker
}

// NewEngine creates an engine with no selection.
func NewEngine() *Engine {
	return &Engine{
		start:  -1,
		end:    -1,
		clicks: newClickTracker(),
	}
}

// Active returns true if a selection exists.
func (e *Engine) Active() bool {
	return e.start >= 0
}

// Range returns the inclusive selected range. ok is false when nothing
// is selected.
func (e *Engine) Range() (start, end int, ok bool) {
	return e.start, e.end, e.start >= 0
}

// Contains returns true if the buffer offset lies inside the selection.
func (e *Engine) Contains(offset int) bool {
	return e.start >= 0 && offset >= e.start && offset <= e.end
}

// Select sets the selection to the inclusive range [a, b], normalizing
// so start <= end and clamping to the buffer bounds. Selecting in an
// empty buffer clears instead.
func (e *Engine) Select(a, b, bufLen int) {
	if bufLen <= 0 {
		e.Clear()
		return
	}
	if a > b {
		a, b = b, a
	}
	e.start = clamp(a, 0, bufLen-1)
	e.end = clamp(b, 0, bufLen-1)
}

// SelectAll selects the entire buffer.
func (e *Engine) SelectAll(bufLen int) {
	e.Select(0, bufLen-1, bufLen)
}

// Clear removes the selection and cancels any drag in progress.
func (e *Engine) Clear() {
	e.start, e.end = -1, -1
	e.dragging = false
}

// Dragging returns true while a drag gesture is extending the selection.
func (e *Engine) Dragging() bool {
	return e.dragging
}

// Press handles a pointer press on the character at offset. It returns
// the click count (1 or 2) after double-click detection; the caller
// applies word expansion on 2. A press outside an existing selection
// clears it and anchors a new drag; a press inside leaves the selection
// alone and anchors the drag at the pressed character.
func (e *Engine) Press(offset int, x, y float64, now time.Time) int {
	count := e.clicks.record(x, y, now)
	if count == 1 && !e.Contains(offset) {
		e.Clear()
	}
	e.dragging = true
	e.anchor = offset
	return count
}

// DragTo extends the selection from the drag anchor to offset.
// No-op when no drag is active.
func (e *Engine) DragTo(offset, bufLen int) {
	if !e.dragging {
		return
	}
	e.Select(e.anchor, offset, bufLen)
}

// Release ends the drag gesture, keeping the selection.
func (e *Engine) Release() {
	e.dragging = false
}

// Anchor returns the drag anchor offset.
func (e *Engine) Anchor() int {
	return e.anchor
}

// AdjustForRemoval reacts to the removal of count characters starting
// at rmStart. A removal that fully contains the selection clears it;
// otherwise offsets shift and clamp so the selection keeps tracking the
// surviving characters.
func (e *Engine) AdjustForRemoval(rmStart, count, newLen int) {
	if !e.Active() {
		return
	}
	if rmStart <= e.start && e.end < rmStart+count {
		e.Clear()
		return
	}
	e.start = shiftOffset(e.start, rmStart, count)
	e.end = shiftOffset(e.end, rmStart, count)
	if newLen <= 0 || e.end < e.start {
		e.Clear()
		return
	}
	e.start = clamp(e.start, 0, newLen-1)
	e.end = clamp(e.end, 0, newLen-1)
}

// shiftOffset maps a buffer offset across a removal. Offsets inside the
// removed range collapse to its start.
func shiftOffset(off, rmStart, count int) int {
	switch {
	case off < rmStart:
		return off
	case off >= rmStart+count:
		return off - count
	default:
		return rmStart
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
