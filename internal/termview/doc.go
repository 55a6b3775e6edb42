// Package termview renders a text area onto a tcell screen.
//
// View owns a rectangular region of the screen and hands out line
// renderers positioned inside it. The text area writes visible rows
// into those renderers; View.Render flushes them to the screen,
// painting selection quads as background color behind the glyphs.
package termview
