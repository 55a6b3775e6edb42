package textarea

import "github.com/dshills/textwell/internal/textarea/core"

// Option is a functional option for configuring a TextArea.
type Option func(*TextArea)

// WithDefaultColor sets the color applied to text appended without
// explicit colors.
func WithDefaultColor(c core.Color) Option {
	return func(t *TextArea) {
		t.defaultColor = c
	}
}

// WithHighlightColor sets the selection highlight override color.
func WithHighlightColor(c core.Color) Option {
	return func(t *TextArea) {
		t.highlightColor = c
	}
}

// WithHighlightable enables or disables interactive selection.
func WithHighlightable(enabled bool) Option {
	return func(t *TextArea) {
		t.highlightable = enabled
	}
}

// WithAutoScrollToBottom keeps the window pinned to the newest line
// after appends.
func WithAutoScrollToBottom(enabled bool) Option {
	return func(t *TextArea) {
		t.autoScroll = enabled
	}
}

// WithDragScrollSpeed sets the drag auto-scroll rate in lines per
// second per line of overshoot.
func WithDragScrollSpeed(speed float64) Option {
	return func(t *TextArea) {
		if speed > 0 {
			t.dragScrollSpeed = speed
		}
	}
}

// WithCopyHandler registers the callback invoked with the selected text
// when the copy shortcut is pressed.
func WithCopyHandler(fn func(string)) Option {
	return func(t *TextArea) {
		t.onCopy = fn
	}
}
