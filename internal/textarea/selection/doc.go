// Package selection tracks the selected character range of a text area
// and derives highlight geometry for the visible window.
//
// The engine stores an inclusive (start, end) offset pair into the
// character buffer, or (-1, -1) when nothing is selected. Pointer
// gestures drive a small state machine: a press anchors a drag, drag
// motion extends the range between the anchor and the current
// character, release ends the drag. A double click expands to the
// contiguous run of characters sharing the clicked character's class.
//
// Geometry is computed only for the intersection of the selection with
// the currently visible lines; a selection scrolled off screen produces
// no quads.
package selection
