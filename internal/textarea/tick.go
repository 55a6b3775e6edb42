package textarea

import "time"

// Tick advances drag auto-scroll. The host calls it once per frame
// while a drag gesture is active; calls outside a drag are no-ops.
// Returns true if the window moved.
//
// While the pointer is held past the top or bottom edge, the window
// scrolls at a rate proportional to the elapsed time, the configured
// drag scroll speed, and the overshoot distance in lines, and the
// selection keeps extending toward the pointer.
func (t *TextArea) Tick(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.sel.Dragging() || !t.enabled {
		t.lastTick = time.Time{}
		t.scrollDebt = 0
		return false
	}
	if now.IsZero() {
		now = time.Now()
	}
	if t.lastTick.IsZero() {
		t.lastTick = now
		return false
	}
	dt := now.Sub(t.lastTick).Seconds()
	t.lastTick = now
	if dt <= 0 {
		return false
	}

	// Overshoot in lines past the window edges; zero inside.
	lineHeight := t.vp.LineHeight()
	var overshoot float64
	switch {
	case t.dragY < 0:
		overshoot = -t.dragY / lineHeight
	case t.dragY > t.height:
		overshoot = (t.dragY - t.height) / lineHeight
	default:
		t.scrollDebt = 0
		return false
	}

	t.scrollDebt += dt * t.dragScrollSpeed * overshoot
	lines := int(t.scrollDebt)
	if lines < 1 {
		return false
	}
	t.scrollDebt -= float64(lines)

	prev := t.vp.Target()
	var moved bool
	if t.dragY < 0 {
		moved = t.vp.ScrollUp(lines)
	} else {
		moved = t.vp.ScrollDown(lines)
	}
	if !moved {
		return false
	}

	// The pointer now hovers a different line; keep extending.
	if offset := t.offsetAt(t.dragX, t.dragY); offset >= 0 {
		t.sel.DragTo(offset, t.buf.Len())
	}
	t.refresh()
	t.notifyIfMoved(prev)
	return true
}
