package layout

import (
	"sort"
	"unicode"

	"github.com/dshills/textwell/internal/textarea/buffer"
	"github.com/dshills/textwell/internal/textarea/core"
)

// replacementRune is the generic missing-glyph fallback, used when the
// face does not define its own placeholder.
const replacementRune = '�'

// Index maintains the wrapped line boundaries of a character buffer.
// It is owned exclusively by one text area and is not safe for
// concurrent use.
type Index struct {
	face  core.Face
	width float64
	tabs  tabStops
	lines []core.Line
}

// New creates an empty line index measuring with face against the given
// container width.
func New(face core.Face, width float64) *Index {
	return &Index{
		face:  face,
		width: width,
		tabs:  tabStops{width: face.TabWidth()},
	}
}

// Face returns the active font metrics provider.
func (x *Index) Face() core.Face {
	return x.face
}

// SetFace replaces the font metrics provider.
// The caller must follow with a full Reflow.
func (x *Index) SetFace(face core.Face) {
	x.face = face
	x.tabs = tabStops{width: face.TabWidth()}
}

// Width returns the container width lines wrap against.
func (x *Index) Width() float64 {
	return x.width
}

// SetWidth changes the container width.
// The caller must follow with a full Reflow.
func (x *Index) SetWidth(width float64) {
	x.width = width
}

// LineCount returns the number of wrapped lines.
func (x *Index) LineCount() int {
	return len(x.lines)
}

// Line returns the span of line i. i must be in [0, LineCount()).
func (x *Index) Line(i int) core.Line {
	return x.lines[i]
}

// LineForOffset returns the index of the line containing the character
// offset, or the last line if the offset is past the indexed range.
// Returns -1 for an empty index.
func (x *Index) LineForOffset(offset int) int {
	if len(x.lines) == 0 {
		return -1
	}
	i := sort.Search(len(x.lines), func(i int) bool {
		return x.lines[i].End() > offset
	})
	if i == len(x.lines) {
		return len(x.lines) - 1
	}
	return i
}

// Reflow recomputes the entire line index. Previously substituted
// characters are restored first so substitution decisions are remade
// against the current face.
func (x *Index) Reflow(buf *buffer.Buffer) {
	buf.RestoreReplacedFrom(0)
	x.lines = x.lines[:0]
	x.parseFrom(buf, 0)
}

// ReflowTail re-parses from the start of the last existing line to the
// end of the buffer. This is the incremental path taken after Append:
// earlier lines cannot change, but the previously-last line may extend,
// re-wrap, or be followed by new lines.
func (x *Index) ReflowTail(buf *buffer.Buffer) {
	if len(x.lines) == 0 {
		x.Reflow(buf)
		return
	}
	last := len(x.lines) - 1
	start := x.lines[last].Start
	buf.RestoreReplacedFrom(start)
	x.lines = x.lines[:last]
	x.parseFrom(buf, start)
}

// Truncate drops the line containing offset and everything after it,
// then re-parses forward. Used after Remove, where the affected line and
// its successors must be recomputed. Parsing backs up one extra line
// because a soft wrap at the previous line's end may have depended on
// the removed characters.
func (x *Index) Truncate(buf *buffer.Buffer, offset int) {
	keep := sort.Search(len(x.lines), func(i int) bool {
		return x.lines[i].End() > offset
	})
	if keep > 0 {
		keep--
	}
	start := 0
	if keep > 0 {
		start = x.lines[keep-1].End()
	}
	buf.RestoreReplacedFrom(start)
	x.lines = x.lines[:keep]
	x.parseFrom(buf, start)
}

// parseFrom scans buf from start to its end, appending wrapped lines.
// Characters the face cannot display are substituted in place and
// recorded in the buffer's replacement log.
func (x *Index) parseFrom(buf *buffer.Buffer, start int) {
	n := buf.Len()
	lineStart := start
	lineWidth := 0.0

	// Word-wrap state: breakAt is the offset just after the last
	// whitespace on the current line, wordWidth the width accumulated
	// since then.
	breakAt := -1
	wordWidth := 0.0

	startLine := func(at int, carried float64) {
		lineStart = at
		lineWidth = carried
		breakAt = -1
	}

	i := start
	for i < n {
		c := buf.At(i)

		// Explicit terminators end the line regardless of width.
		if c == '\r' && i+1 < n && buf.At(i+1) == '\n' {
			x.emit(lineStart, i+2-lineStart)
			i += 2
			startLine(i, 0)
			wordWidth = 0
			continue
		}
		if c == '\n' || c == '\r' {
			x.emit(lineStart, i+1-lineStart)
			i++
			startLine(i, 0)
			wordWidth = 0
			continue
		}

		if c == '\t' {
			stop := x.tabs.next(lineWidth)
			if stop >= x.width && i > lineStart {
				// The stop alone overshoots the container: break
				// before the tab and re-aim it from the line start.
				x.emit(lineStart, i-lineStart)
				startLine(i, 0)
				stop = x.tabs.next(0)
			}
			lineWidth = stop
			breakAt = i + 1
			wordWidth = 0
			i++
			continue
		}

		w, ok := x.face.Advance(c)
		if !ok {
			sub, subW := x.substitute()
			buf.RecordReplacement(i, c)
			buf.SetChar(i, sub)
			c = sub
			w = subW
		}

		if lineWidth+w >= x.width && i > lineStart {
			if breakAt > lineStart {
				// Word wrap: the line ends just after its last
				// whitespace and the partial word's width carries
				// over to the new line.
				x.emit(lineStart, breakAt-lineStart)
				startLine(breakAt, wordWidth)
			} else {
				// No break candidate: hard break before this char.
				x.emit(lineStart, i-lineStart)
				startLine(i, 0)
				wordWidth = 0
			}
		}

		lineWidth += w
		if unicode.IsSpace(c) {
			breakAt = i + 1
			wordWidth = 0
		} else {
			wordWidth += w
		}
		i++
	}

	// Trailing characters without a terminator still form a line.
	// A buffer ending exactly on a terminator emits nothing extra.
	if lineStart < n {
		x.emit(lineStart, n-lineStart)
	}
}

func (x *Index) emit(start, length int) {
	x.lines = append(x.lines, core.Line{Start: start, Length: length})
}

// substitute picks the fallback glyph for a rune the face cannot
// display: the face's own placeholder, then the generic replacement
// character, then a space.
func (x *Index) substitute() (rune, float64) {
	if r, ok := x.face.Replacement(); ok {
		if w, has := x.face.Advance(r); has {
			return r, w
		}
	}
	if w, ok := x.face.Advance(replacementRune); ok {
		return replacementRune, w
	}
	w, _ := x.face.Advance(' ')
	return ' ', w
}
