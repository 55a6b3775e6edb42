// Package viewport maps a scroll position and a fixed visible-line
// capacity onto a window of the wrapped line index.
//
// The viewport holds no buffer or renderer state of its own; it is pure
// window arithmetic, owned by one text area and mutated only on the
// owning goroutine.
package viewport

import "math"

// Viewport tracks which slice of the line index is on screen.
type Viewport struct {
	// target is the index of the first visible line.
	target int

	// lineCount mirrors the line index length.
	lineCount int

	// height is the container height; lineHeight the height of one row.
	height     float64
	lineHeight float64
}

// New creates a viewport for a container of the given height, with rows
// of the given line height.
func New(height, lineHeight float64) *Viewport {
	if lineHeight <= 0 {
		lineHeight = 1
	}
	return &Viewport{height: height, lineHeight: lineHeight}
}

// Target returns the index of the first visible line.
func (v *Viewport) Target() int {
	return v.target
}

// LineCount returns the line count last pushed into the viewport.
func (v *Viewport) LineCount() int {
	return v.lineCount
}

// LineHeight returns the height of one display row.
func (v *Viewport) LineHeight() float64 {
	return v.lineHeight
}

// Height returns the container height.
func (v *Viewport) Height() float64 {
	return v.height
}

// MaxVisible returns the visible-line capacity: the number of full rows
// that fit the container plus one partial row.
func (v *Viewport) MaxVisible() int {
	n := int(math.Floor(v.height/v.lineHeight)) + 1
	if n < 1 {
		n = 1
	}
	return n
}

// LastLine returns the largest valid target line index.
func (v *Viewport) LastLine() int {
	last := v.lineCount - v.MaxVisible() + 1
	if last < 0 {
		return 0
	}
	return last
}

// LastPossibleVisible returns the index of the last line slot the
// window can show at the current target.
func (v *Viewport) LastPossibleVisible() int {
	return v.target + v.MaxVisible() - 1
}

// VisibleCount returns how many lines are actually visible: the window
// capacity bounded by the lines remaining below the target.
func (v *Viewport) VisibleCount() int {
	n := v.lineCount - v.target
	if max := v.MaxVisible(); n > max {
		n = max
	}
	if n < 0 {
		n = 0
	}
	return n
}

// SetLineCount updates the tracked line count and re-clamps the target.
// Returns true if the target moved.
func (v *Viewport) SetLineCount(count int) bool {
	if count < 0 {
		count = 0
	}
	v.lineCount = count
	return v.clamp()
}

// SetTarget moves the first visible line, clamped to [0, LastLine].
// Returns true if the target changed.
func (v *Viewport) SetTarget(line int) bool {
	old := v.target
	v.target = line
	v.clamp()
	return v.target != old
}

// ScrollUp moves the window n lines toward the start of the buffer.
// It is a no-op if n <= 0, the window is already at the top, or the
// whole buffer fits the window. Returns true if the target moved.
func (v *Viewport) ScrollUp(n int) bool {
	if n <= 0 || v.target == 0 || v.LastLine() == 0 {
		return false
	}
	if n > v.target {
		n = v.target
	}
	v.target -= n
	return true
}

// ScrollDown moves the window n lines toward the end of the buffer,
// with the same no-op conditions as ScrollUp. Returns true if the
// target moved.
func (v *Viewport) ScrollDown(n int) bool {
	last := v.LastLine()
	if n <= 0 || v.target >= last || last == 0 {
		return false
	}
	if remaining := last - v.target; n > remaining {
		n = remaining
	}
	v.target += n
	return true
}

// ScrollToBottom jumps the window to the last valid target.
// Returns true if the target moved.
func (v *Viewport) ScrollToBottom() bool {
	return v.SetTarget(v.LastLine())
}

// Percent returns the scroll position as a fraction of the scrollable
// range, 0 when nothing scrolls.
func (v *Viewport) Percent() float64 {
	last := v.LastLine()
	if last == 0 {
		return 0
	}
	return float64(v.target) / float64(last)
}

// SetPercent positions the window at a fraction of the scrollable
// range. Used to preserve the relative position across a resize, where
// absolute line indices are meaningless. Returns true if the target
// moved.
func (v *Viewport) SetPercent(p float64) bool {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return v.SetTarget(int(math.Round(p * float64(v.LastLine()))))
}

// Resize updates the container height. The caller preserves the scroll
// percentage around the call.
func (v *Viewport) Resize(height float64) {
	v.height = height
	v.clamp()
}

// SetLineHeight updates the row height after a face change. The caller
// preserves the scroll percentage around the call.
func (v *Viewport) SetLineHeight(h float64) {
	if h <= 0 {
		h = 1
	}
	v.lineHeight = h
	v.clamp()
}

// RowOf returns the visible row of a line index, or -1 if the line is
// outside the window.
func (v *Viewport) RowOf(line int) int {
	if line < v.target || line >= v.target+v.VisibleCount() {
		return -1
	}
	return line - v.target
}

// LineAtY resolves a local y position (growing downward from the top of
// the window) to a line index. The result is not clamped to the line
// count; callers decide how to treat out-of-range hits.
func (v *Viewport) LineAtY(y float64) int {
	return int(math.Floor(y/v.lineHeight)) + v.target
}

func (v *Viewport) clamp() bool {
	old := v.target
	if v.target > v.LastLine() {
		v.target = v.LastLine()
	}
	if v.target < 0 {
		v.target = 0
	}
	return v.target != old
}
