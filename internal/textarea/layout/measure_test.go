package layout

import (
	"testing"

	"github.com/dshills/textwell/internal/textarea/buffer"
	"github.com/dshills/textwell/internal/textarea/core"
)

func TestOffsetAtXMidpointRule(t *testing.T) {
	buf, idx := setUp(t, "abcde", fitWidth(80))

	tests := []struct {
		x    float64
		want int
	}{
		{0, 0},    // left edge of a
		{0.4, 0},  // before midpoint of a
		{0.6, 1},  // past midpoint of a
		{1.4, 1},  // before midpoint of b
		{2.4, 2},  // within c
		{2.5, 3},  // exactly on c's midpoint tips to d
		{4.4, 4},  // before midpoint of e
		{99, 4},   // past line end clamps to last char
		{-5, 0},   // left of line clamps to first char
	}

	for _, tt := range tests {
		if got := idx.OffsetAtX(buf, 0, tt.x); got != tt.want {
			t.Errorf("OffsetAtX(%v): expected %d, got %d", tt.x, tt.want, got)
		}
	}
}

func TestOffsetAtXWithTabs(t *testing.T) {
	// "a\tb": a spans [0,1), tab [1,4), b [4,5).
	buf, idx := setUp(t, "a\tb", fitWidth(80))

	if got := idx.OffsetAtX(buf, 0, 2.0); got != 1 {
		t.Errorf("expected tab at x=2.0, got offset %d", got)
	}
	if got := idx.OffsetAtX(buf, 0, 4.2); got != 2 {
		t.Errorf("expected b at x=4.2, got offset %d", got)
	}
}

func TestOffsetAtXOutOfRangeLine(t *testing.T) {
	buf, idx := setUp(t, "abc", fitWidth(80))

	if got := idx.OffsetAtX(buf, 5, 0); got != -1 {
		t.Errorf("expected -1 for out-of-range line, got %d", got)
	}
	if got := idx.OffsetAtX(buf, -1, 0); got != -1 {
		t.Errorf("expected -1 for negative line, got %d", got)
	}
}

func TestXSpanOf(t *testing.T) {
	buf, idx := setUp(t, "abc", fitWidth(80))

	x0, x1 := idx.XSpanOf(buf, 0, 1)
	if x0 != 1 || x1 != 2 {
		t.Errorf("expected span [1,2), got [%v,%v)", x0, x1)
	}
}

func TestXSpanOfTerminatorIsZeroWidth(t *testing.T) {
	buf, idx := setUp(t, "ab\ncd", fitWidth(80))

	x0, x1 := idx.XSpanOf(buf, 0, 2)
	if x0 != 2 || x1 != 2 {
		t.Errorf("expected zero-width span at x=2, got [%v,%v)", x0, x1)
	}
}

func TestLineWidthExcludesTerminator(t *testing.T) {
	buf, idx := setUp(t, "abc\nde", fitWidth(80))

	if got := idx.LineWidth(buf, 0); got != 3 {
		t.Errorf("expected width 3, got %v", got)
	}
	if got := idx.LineWidth(buf, 1); got != 2 {
		t.Errorf("expected width 2, got %v", got)
	}
}

func TestLineForOffset(t *testing.T) {
	_, idx := setUp(t, "ab\ncd\nef", fitWidth(80))

	tests := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{2, 0},  // the terminator belongs to line 0
		{3, 1},
		{5, 1},
		{6, 2},
		{7, 2},
		{99, 2}, // past the end clamps to the last line
	}

	for _, tt := range tests {
		if got := idx.LineForOffset(tt.offset); got != tt.want {
			t.Errorf("LineForOffset(%d): expected %d, got %d", tt.offset, tt.want, got)
		}
	}
}

func TestLineForOffsetEmpty(t *testing.T) {
	idx := New(newFakeFace(), fitWidth(80))
	b := buffer.New()
	b.SetText("", core.ColorWhite)
	idx.Reflow(b)

	if got := idx.LineForOffset(0); got != -1 {
		t.Errorf("expected -1 for empty index, got %d", got)
	}
}
