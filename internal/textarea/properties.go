package textarea

import "github.com/dshills/textwell/internal/textarea/core"

// TargetLineIndex returns the index of the first visible line.
func (t *TextArea) TargetLineIndex() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.vp.Target()
}

// SetTargetLineIndex scrolls the window so the given line is at the
// top, clamped to the valid range.
func (t *TextArea) SetTargetLineIndex(line int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.vp.Target()
	if t.vp.SetTarget(line) {
		t.refresh()
		t.notifyIfMoved(prev)
	}
}

// LastLineIndex returns the largest valid target line index.
func (t *TextArea) LastLineIndex() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.vp.LastLine()
}

// LineCount returns the number of wrapped lines.
func (t *TextArea) LineCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.idx.LineCount()
}

// MaxVisibleLineCount returns the window's visible-line capacity.
func (t *TextArea) MaxVisibleLineCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.vp.MaxVisible()
}

// Face returns the active font metrics provider.
func (t *TextArea) Face() core.Face {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.idx.Face()
}

// SetFace replaces the font face. The whole buffer re-lays-out against
// the new metrics, previously substituted characters are restored and
// re-evaluated, and the relative scroll position is preserved.
func (t *TextArea) SetFace(face core.Face) error {
	if face == nil {
		return ErrNoFace
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.vp.Target()
	percent := t.vp.Percent()

	t.idx.SetFace(face)
	t.idx.Reflow(t.buf)
	t.vp.SetLineHeight(face.LineHeight())
	t.vp.SetLineCount(t.idx.LineCount())
	t.vp.SetPercent(percent)

	t.refresh()
	t.notifyIfMoved(prev)
	return nil
}

// FontSize returns the line height of the active face.
func (t *TextArea) FontSize() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.idx.Face().LineHeight()
}

// AutoScrollToBottom returns whether appends pin the window to the
// newest line.
func (t *TextArea) AutoScrollToBottom() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.autoScroll
}

// SetAutoScrollToBottom sets the append-follows-output policy.
func (t *TextArea) SetAutoScrollToBottom(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.autoScroll = enabled
}

// Highlightable returns whether interactive selection is enabled.
func (t *TextArea) Highlightable() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.highlightable
}

// SetHighlightable enables or disables interactive selection.
// Disabling destroys any current selection.
func (t *TextArea) SetHighlightable(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.highlightable = enabled
	if !enabled && t.sel.Active() {
		t.sel.Clear()
		t.refresh()
	}
}

// HighlightColor returns the selection override color.
func (t *TextArea) HighlightColor() core.Color {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.highlightColor
}

// SetHighlightColor sets the selection override color.
func (t *TextArea) SetHighlightColor(c core.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.highlightColor = c
	if t.sel.Active() {
		t.refresh()
	}
}

// DragScrollSpeed returns the drag auto-scroll rate.
func (t *TextArea) DragScrollSpeed() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dragScrollSpeed
}

// SetDragScrollSpeed sets the drag auto-scroll rate in lines per second
// per line of overshoot. Non-positive values are ignored.
func (t *TextArea) SetDragScrollSpeed(speed float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if speed > 0 {
		t.dragScrollSpeed = speed
	}
}
