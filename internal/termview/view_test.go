package termview

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textwell/internal/textarea/core"
)

func newSim(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func cellRune(t *testing.T, s tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func cellStyle(t *testing.T, s tcell.SimulationScreen, x, y int) tcell.Style {
	t.Helper()
	cells, w, _ := s.GetContents()
	return cells[y*w+x].Style
}

func TestRenderDrawsRows(t *testing.T) {
	s := newSim(t, 10, 5)
	v := New(s, 0, 0, 10, 5)

	r0 := v.NewRenderer()
	r0.SetCharacters([]rune("hello"), []core.Color{
		core.ColorWhite, core.ColorWhite, core.ColorWhite, core.ColorWhite, core.ColorWhite,
	})
	r0.SetRow(0)

	r1 := v.NewRenderer()
	r1.SetCharacters([]rune("hi\n"), []core.Color{core.ColorWhite, core.ColorWhite, core.ColorWhite})
	r1.SetRow(1)

	v.Render(nil)
	s.Show()

	for i, want := range "hello" {
		if got := cellRune(t, s, i, 0); got != want {
			t.Errorf("cell (%d,0): expected %q, got %q", i, want, got)
		}
	}
	if got := cellRune(t, s, 0, 1); got != 'h' {
		t.Errorf("cell (0,1): expected 'h', got %q", got)
	}
	// The terminator occupies no cell.
	if got := cellRune(t, s, 2, 1); got != ' ' {
		t.Errorf("cell (2,1): expected blank after terminator, got %q", got)
	}
}

func TestRenderExpandsTabs(t *testing.T) {
	s := newSim(t, 10, 2)
	v := New(s, 0, 0, 10, 2, WithTabCells(4))

	r := v.NewRenderer()
	r.SetCharacters([]rune("a\tb"), []core.Color{core.ColorWhite, core.ColorWhite, core.ColorWhite})
	r.SetRow(0)

	v.Render(nil)
	s.Show()

	if got := cellRune(t, s, 0, 0); got != 'a' {
		t.Errorf("expected 'a' at column 0, got %q", got)
	}
	if got := cellRune(t, s, 4, 0); got != 'b' {
		t.Errorf("expected 'b' at tab stop column 4, got %q", got)
	}
}

func TestRenderSkipsDisabledRows(t *testing.T) {
	s := newSim(t, 10, 2)
	v := New(s, 0, 0, 10, 2)

	r := v.NewRenderer()
	r.SetCharacters([]rune("x"), []core.Color{core.ColorWhite})
	r.SetRow(0)
	r.SetEnabled(false)

	v.Render(nil)
	s.Show()

	if got := cellRune(t, s, 0, 0); got != ' ' {
		t.Errorf("expected blank for disabled row, got %q", got)
	}
}

func TestRenderPaintsHighlightBackground(t *testing.T) {
	s := newSim(t, 10, 2)
	hl := core.Color{R: 10, G: 20, B: 30, A: 255}
	v := New(s, 0, 0, 10, 2, WithHighlightColor(hl))

	r := v.NewRenderer()
	r.SetCharacters([]rune("abcd"), []core.Color{
		core.ColorWhite, core.ColorWhite, core.ColorWhite, core.ColorWhite,
	})
	r.SetRow(0)

	v.Render([]core.Quad{{X: 1, Y: 0, W: 2, H: 1}})
	s.Show()

	wantBg := tcell.NewRGBColor(10, 20, 30)
	_, bg, _ := cellStyle(t, s, 1, 0).Decompose()
	if bg != wantBg {
		t.Errorf("expected highlight background at column 1, got %v", bg)
	}
	_, bg, _ = cellStyle(t, s, 0, 0).Decompose()
	if bg == wantBg {
		t.Error("unexpected highlight background at column 0")
	}
	_, bg, _ = cellStyle(t, s, 3, 0).Decompose()
	if bg == wantBg {
		t.Error("unexpected highlight background at column 3")
	}
}

func TestReleaseRemovesRow(t *testing.T) {
	s := newSim(t, 10, 2)
	v := New(s, 0, 0, 10, 2)

	r := v.NewRenderer()
	r.SetCharacters([]rune("x"), []core.Color{core.ColorWhite})
	r.SetRow(0)
	r.Release()

	v.Render(nil)
	s.Show()

	if got := cellRune(t, s, 0, 0); got != ' ' {
		t.Errorf("expected blank after release, got %q", got)
	}
}

func TestViewOffset(t *testing.T) {
	s := newSim(t, 10, 5)
	v := New(s, 2, 1, 6, 3)

	r := v.NewRenderer()
	r.SetCharacters([]rune("z"), []core.Color{core.ColorWhite})
	r.SetRow(0)

	v.Render(nil)
	s.Show()

	if got := cellRune(t, s, 2, 1); got != 'z' {
		t.Errorf("expected 'z' at screen (2,1), got %q", got)
	}
}
