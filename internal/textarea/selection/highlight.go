package selection

import (
	"github.com/dshills/textwell/internal/textarea/buffer"
	"github.com/dshills/textwell/internal/textarea/core"
	"github.com/dshills/textwell/internal/textarea/layout"
	"github.com/dshills/textwell/internal/textarea/viewport"
)

// Quads generates one highlight rectangle per visible line the
// selection touches. Geometry covers only the intersection with the
// visible window. A line the selection wraps straight through is
// highlighted to the full container width; the last selected line ends
// at the selection's end x.
func (e *Engine) Quads(buf *buffer.Buffer, idx *layout.Index, vp *viewport.Viewport) []core.Quad {
	if !e.Active() {
		return nil
	}

	lineHeight := vp.LineHeight()
	first := vp.Target()
	count := vp.VisibleCount()

	var quads []core.Quad
	for row := 0; row < count; row++ {
		li := first + row
		line := idx.Line(li)
		if line.Length == 0 {
			continue
		}
		lastOnLine := line.End() - 1
		if e.end < line.Start || e.start > lastOnLine {
			continue
		}

		x0 := 0.0
		if e.start > line.Start {
			x0, _ = idx.XSpanOf(buf, li, e.start)
		}

		var x1 float64
		switch {
		case e.end <= lastOnLine:
			_, x1 = idx.XSpanOf(buf, li, e.end)
		case isTerminated(buf, lastOnLine):
			// The line ends explicitly; highlight stops at its content.
			x1 = idx.LineWidth(buf, li)
		default:
			// Selection runs through this line's soft-wrap boundary.
			x1 = idx.Width()
		}

		quads = append(quads, core.Quad{
			X: x0,
			Y: float64(row) * lineHeight,
			W: x1 - x0,
			H: lineHeight,
		})
	}
	return quads
}

// isTerminated reports whether the character at offset is an explicit
// line terminator.
func isTerminated(buf *buffer.Buffer, offset int) bool {
	c := buf.At(offset)
	return c == '\n' || c == '\r'
}
