package textarea

import (
	"time"

	"github.com/dshills/textwell/internal/textarea/selection"
)

// EventKind identifies one kind of input event.
type EventKind uint8

// Input event kinds.
const (
	EventNone EventKind = iota
	EventPointerDown
	EventPointerUp
	EventPointerMove
	EventDrag
	EventEndDrag
	EventScroll
	EventSelect
	EventDeselect
	EventKeyDown
)

// Event is the input union dispatched into a text area. Coordinates are
// local to the container, origin at the top-left, y growing downward.
type Event struct {
	Kind EventKind

	// Pointer position, for pointer and drag kinds.
	X, Y float64

	// Lines scrolled, for EventScroll. Positive scrolls down.
	Lines int

	// Character range, for EventSelect.
	Start, End int

	// Key state, for EventKeyDown.
	Rune rune
	Ctrl bool

	// Time of the event; the zero value means now.
	Time time.Time
}

// HandleEvent dispatches an input event to its kind-specific handler.
func (t *TextArea) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventPointerDown:
		t.handlePointerDown(ev)
	case EventPointerUp, EventEndDrag:
		t.handlePointerUp(ev)
	case EventDrag:
		t.handleDrag(ev)
	case EventPointerMove:
		// Motion without a held button has no effect.
	case EventScroll:
		t.handleScroll(ev)
	case EventSelect:
		t.SelectText(ev.Start, ev.End)
	case EventDeselect:
		t.DeselectText()
	case EventKeyDown:
		t.handleKeyDown(ev)
	}
}

// handlePointerDown anchors a drag, or expands a word selection on a
// double click.
func (t *TextArea) handlePointerDown(ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.highlightable || t.buf.Len() == 0 {
		return
	}
	offset := t.offsetAt(ev.X, ev.Y)
	if offset < 0 {
		return
	}

	clicks := t.sel.Press(offset, ev.X, ev.Y, ev.Time)
	if clicks == 2 {
		start, end := selection.ExpandWord(t.buf, offset)
		t.sel.Select(start, end, t.buf.Len())
	}
	t.dragX, t.dragY = ev.X, ev.Y
	t.lastTick = time.Time{}
	t.scrollDebt = 0
	t.refresh()
}

// handlePointerUp ends a drag gesture, keeping the selection.
func (t *TextArea) handlePointerUp(Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sel.Release()
}

// handleDrag extends the selection to the character under the pointer.
func (t *TextArea) handleDrag(ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.sel.Dragging() {
		return
	}
	t.dragX, t.dragY = ev.X, ev.Y
	if offset := t.offsetAt(ev.X, ev.Y); offset >= 0 {
		t.sel.DragTo(offset, t.buf.Len())
	}
	t.refresh()
}

// handleScroll converts a wheel delta to line scrolling.
func (t *TextArea) handleScroll(ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scrollBy(ev.Lines)
}

// handleKeyDown services the select-all and copy shortcuts.
func (t *TextArea) handleKeyDown(ev Event) {
	if !ev.Ctrl {
		return
	}
	switch ev.Rune {
	case 'a', 'A':
		t.SelectAll()
	case 'c', 'C':
		text := t.GetSelectedText()
		t.mu.RLock()
		fn := t.onCopy
		t.mu.RUnlock()
		if fn != nil && text != "" {
			fn(text)
		}
	}
}

// offsetAt resolves a local pointer position to a character offset.
// Points above the first line clamp to the buffer start, points below
// the last line to the buffer end. Returns -1 for an empty buffer.
func (t *TextArea) offsetAt(x, y float64) int {
	if t.idx.LineCount() == 0 || t.buf.Len() == 0 {
		return -1
	}
	li := t.vp.LineAtY(y)
	if li < 0 {
		return 0
	}
	if li >= t.idx.LineCount() {
		return t.buf.Len() - 1
	}
	return t.idx.OffsetAtX(t.buf, li, x)
}
