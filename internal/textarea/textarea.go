package textarea

import (
	"sync"
	"time"

	"github.com/dshills/textwell/internal/textarea/buffer"
	"github.com/dshills/textwell/internal/textarea/core"
	"github.com/dshills/textwell/internal/textarea/layout"
	"github.com/dshills/textwell/internal/textarea/pool"
	"github.com/dshills/textwell/internal/textarea/selection"
	"github.com/dshills/textwell/internal/textarea/viewport"
)

// slot maps one visible row to its pooled renderer and line index.
type slot struct {
	handle pool.Handle
	line   int
}

// TextArea is a virtualized text view over a growable character buffer.
// All methods are safe for concurrent use, though the expected model is
// a single owning goroutine driving mutations, input, and ticks.
type TextArea struct {
	mu sync.RWMutex

	buf  *buffer.Buffer
	idx  *layout.Index
	vp   *viewport.Viewport
	pool *pool.Pool
	sel  *selection.Engine

	width  float64
	height float64

	enabled bool
	dirty   bool

	defaultColor    core.Color
	highlightColor  core.Color
	highlightable   bool
	autoScroll      bool
	dragScrollSpeed float64

	slots    []slot
	notifier notifier
	onCopy   func(string)

	// Drag auto-scroll state, valid while a drag is active.
	dragX, dragY float64
	lastTick     time.Time
	scrollDebt   float64
}

// New creates a text area measuring with face, rendering through
// renderers built by factory, inside a container of the given size.
func New(face core.Face, factory pool.Factory, width, height float64, opts ...Option) (*TextArea, error) {
	if face == nil {
		return nil, ErrNoFace
	}
	if factory == nil {
		return nil, ErrNoFactory
	}

	t := &TextArea{
		buf:             buffer.New(),
		idx:             layout.New(face, width),
		vp:              viewport.New(height, face.LineHeight()),
		pool:            pool.New(factory),
		sel:             selection.NewEngine(),
		width:           width,
		height:          height,
		enabled:         true,
		defaultColor:    core.ColorWhite,
		highlightColor:  core.Color{R: 70, G: 100, B: 160, A: 255},
		highlightable:   true,
		autoScroll:      true,
		dragScrollSpeed: 8,
	}

	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// SetText replaces the entire content with text in the default color.
// The selection is destroyed and the whole line index recomputed.
func (t *TextArea) SetText(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.vp.Target()
	t.sel.Clear()
	t.buf.SetText(text, t.defaultColor)
	t.idx.Reflow(t.buf)
	t.vp.SetLineCount(t.idx.LineCount())
	if t.autoScroll {
		t.vp.ScrollToBottom()
	}
	t.refresh()
	t.notifyIfMoved(prev)
}

// Append adds text in the default color past the current content.
func (t *TextArea) Append(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if text == "" {
		return
	}
	prev := t.vp.Target()
	t.buf.AppendString(text, t.defaultColor)
	t.afterAppend(prev)
}

// AppendColored adds characters with per-character colors.
// len(colors) must equal len(chars).
func (t *TextArea) AppendColored(chars []rune, colors []core.Color) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(chars) == 0 {
		return nil
	}
	prev := t.vp.Target()
	if err := t.buf.Append(chars, colors); err != nil {
		return err
	}
	t.afterAppend(prev)
	return nil
}

// AppendRange adds chars[start:start+count] in a single color. It fails
// with a range error when the span is out of bounds of the source.
func (t *TextArea) AppendRange(chars []rune, start, count int, color core.Color) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.vp.Target()
	if err := t.buf.AppendRange(chars, start, count, color); err != nil {
		return err
	}
	t.afterAppend(prev)
	return nil
}

// afterAppend runs the incremental layout and window update shared by
// the append paths.
func (t *TextArea) afterAppend(prevTarget int) {
	t.idx.ReflowTail(t.buf)
	t.vp.SetLineCount(t.idx.LineCount())
	if t.autoScroll {
		t.vp.ScrollToBottom()
	}
	t.refresh()
	t.notifyIfMoved(prevTarget)
}

// RemoveText deletes count characters starting at start. It fails with
// a range error on a contract violation, with no partial mutation. A
// removal that swallows the selection destroys it; the scroll target
// re-clamps if the buffer shrinks past it.
func (t *TextArea) RemoveText(start, count int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.vp.Target()
	if err := t.buf.Remove(start, count); err != nil {
		return err
	}
	t.sel.AdjustForRemoval(start, count, t.buf.Len())
	t.idx.Truncate(t.buf, start)
	t.vp.SetLineCount(t.idx.LineCount())
	t.refresh()
	t.notifyIfMoved(prev)
	return nil
}

// Clear empties the buffer, destroys the selection, and resets the
// window to the top.
func (t *TextArea) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.vp.Target()
	t.sel.Clear()
	t.buf.Clear()
	t.idx.Reflow(t.buf)
	t.vp.SetLineCount(0)
	t.vp.SetTarget(0)
	t.refresh()
	t.notifyIfMoved(prev)
}

// ScrollUp moves the window n lines toward the start of the buffer.
// Out-of-range requests clamp; scrolling past a boundary is a no-op.
func (t *TextArea) ScrollUp(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scrollBy(-n)
}

// ScrollDown moves the window n lines toward the end of the buffer.
func (t *TextArea) ScrollDown(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scrollBy(n)
}

// scrollBy moves the window by delta lines (negative = up) and
// refreshes on movement.
func (t *TextArea) scrollBy(delta int) {
	prev := t.vp.Target()
	var moved bool
	if delta < 0 {
		moved = t.vp.ScrollUp(-delta)
	} else {
		moved = t.vp.ScrollDown(delta)
	}
	if moved {
		t.refresh()
		t.notifyIfMoved(prev)
	}
}

// SelectText selects the inclusive character range [start, end].
// Swapped or out-of-range indices normalize and clamp.
func (t *TextArea) SelectText(start, end int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.highlightable {
		return
	}
	t.sel.Select(start, end, t.buf.Len())
	t.refresh()
}

// SelectAll selects the entire buffer.
func (t *TextArea) SelectAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.highlightable {
		return
	}
	t.sel.SelectAll(t.buf.Len())
	t.refresh()
}

// DeselectText removes the selection and cancels any drag.
func (t *TextArea) DeselectText() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sel.Clear()
	t.refresh()
}

// GetSelectedText returns the selected text with substituted characters
// restored to their originals. Returns "" when nothing is selected.
func (t *TextArea) GetSelectedText() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	start, end, ok := t.sel.Range()
	if !ok {
		return ""
	}
	return t.buf.OriginalText(start, end-start+1)
}

// HighlightQuads returns the selection highlight geometry for the
// visible window, one quad per touched visible line.
func (t *TextArea) HighlightQuads() []core.Quad {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sel.Quads(t.buf, t.idx, t.vp)
}

// Resize changes the container size. A width change recomputes the
// whole line index; any resize preserves the relative scroll position
// rather than the absolute target line.
func (t *TextArea) Resize(width, height float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.vp.Target()
	percent := t.vp.Percent()

	if width != t.width {
		t.width = width
		t.idx.SetWidth(width)
		t.idx.Reflow(t.buf)
		t.vp.SetLineCount(t.idx.LineCount())
	}
	t.height = height
	t.vp.Resize(height)
	t.vp.SetPercent(percent)

	t.refresh()
	t.notifyIfMoved(prev)
}

// SetEnabled activates or deactivates the view. While disabled,
// mutations mark the window dirty instead of refreshing; re-enabling
// performs the deferred refresh. Disabling cancels an active drag.
func (t *TextArea) SetEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.enabled == enabled {
		return
	}
	t.enabled = enabled
	if !enabled {
		t.sel.Release()
		return
	}
	if t.dirty {
		t.refresh()
	}
}

// Enabled returns whether the view refreshes eagerly.
func (t *TextArea) Enabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}

// Destroy releases every pooled renderer. The text area must not be
// used afterward.
func (t *TextArea) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.slots = nil
	t.pool.Destroy()
}
