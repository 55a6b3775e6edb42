package layout

import "github.com/dshills/textwell/internal/textarea/buffer"

// isTerminator reports whether the rune ends a line explicitly.
func isTerminator(c rune) bool {
	return c == '\n' || c == '\r'
}

// advanceOf returns the advance width of the character at offset i on a
// line whose accumulated width is pos. Terminators have zero width.
// Substitutions were already applied during parsing, so a missing glyph
// here falls back to the substitute's width without mutating the buffer.
func (x *Index) advanceOf(buf *buffer.Buffer, i int, pos float64) float64 {
	c := buf.At(i)
	switch {
	case isTerminator(c):
		return 0
	case c == '\t':
		return x.tabs.next(pos) - pos
	}
	if w, ok := x.face.Advance(c); ok {
		return w
	}
	_, w := x.substitute()
	return w
}

// OffsetAtX resolves a horizontal position on line li to the offset of
// the character under it. A character is selected once x falls before
// the midpoint of its advance. Positions past the line's content clamp
// to the line's last character. Returns -1 for an empty line index.
func (x *Index) OffsetAtX(buf *buffer.Buffer, li int, xpos float64) int {
	if li < 0 || li >= len(x.lines) {
		return -1
	}
	line := x.lines[li]
	pos := 0.0
	for i := line.Start; i < line.End(); i++ {
		w := x.advanceOf(buf, i, pos)
		if xpos < pos+w/2 {
			return i
		}
		pos += w
	}
	if line.Length == 0 {
		return line.Start
	}
	return line.End() - 1
}

// XSpanOf returns the horizontal extent [x0, x1) of the character at
// offset on line li. Terminators report a zero-width span at the line's
// content end.
func (x *Index) XSpanOf(buf *buffer.Buffer, li, offset int) (x0, x1 float64) {
	line := x.lines[li]
	pos := 0.0
	for i := line.Start; i < line.End(); i++ {
		w := x.advanceOf(buf, i, pos)
		if i == offset {
			return pos, pos + w
		}
		pos += w
	}
	return pos, pos
}

// LineWidth returns the laid-out width of line li, terminators excluded.
func (x *Index) LineWidth(buf *buffer.Buffer, li int) float64 {
	line := x.lines[li]
	pos := 0.0
	for i := line.Start; i < line.End(); i++ {
		pos += x.advanceOf(buf, i, pos)
	}
	return pos
}
