package selection

import (
	"unicode"

	"github.com/dshills/textwell/internal/textarea/buffer"
)

// charClass partitions characters for double-click expansion.
type charClass uint8

const (
	classWord  charClass = iota // letters and digits
	classSpace                  // whitespace
	classOther                  // punctuation and everything else
)

func classify(r rune) charClass {
	switch {
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	case unicode.IsSpace(r):
		return classSpace
	default:
		return classOther
	}
}

// ExpandWord returns the inclusive range of the maximal contiguous run
// of characters sharing the class of the character at offset. A single
// "other" character (punctuation) selects just itself.
func ExpandWord(buf *buffer.Buffer, offset int) (start, end int) {
	if buf.Len() == 0 {
		return -1, -1
	}
	offset = clamp(offset, 0, buf.Len()-1)

	class := classify(buf.At(offset))
	if class == classOther {
		return offset, offset
	}

	start = offset
	for start > 0 && classify(buf.At(start-1)) == class {
		start--
	}
	end = offset
	for end+1 < buf.Len() && classify(buf.At(end+1)) == class {
		end++
	}
	return start, end
}
