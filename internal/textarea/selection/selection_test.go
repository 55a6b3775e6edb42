package selection

import (
	"testing"
	"time"
)

func TestSelectNormalizesAndClamps(t *testing.T) {
	e := NewEngine()

	e.Select(7, 3, 10)
	start, end, ok := e.Range()
	if !ok {
		t.Fatal("expected active selection")
	}
	if start != 3 || end != 7 {
		t.Errorf("expected [3,7], got [%d,%d]", start, end)
	}

	e.Select(-5, 100, 10)
	start, end, _ = e.Range()
	if start != 0 || end != 9 {
		t.Errorf("expected [0,9], got [%d,%d]", start, end)
	}
}

func TestSelectEmptyBufferClears(t *testing.T) {
	e := NewEngine()
	e.Select(0, 5, 0)

	if e.Active() {
		t.Error("expected no selection in empty buffer")
	}
}

func TestSelectAll(t *testing.T) {
	e := NewEngine()
	e.SelectAll(12)

	start, end, ok := e.Range()
	if !ok || start != 0 || end != 11 {
		t.Errorf("expected [0,11], got [%d,%d] ok=%v", start, end, ok)
	}
}

func TestClear(t *testing.T) {
	e := NewEngine()
	e.Select(1, 3, 10)
	e.Clear()

	if e.Active() {
		t.Error("expected cleared selection")
	}
	start, end, _ := e.Range()
	if start != -1 || end != -1 {
		t.Errorf("expected sentinel [-1,-1], got [%d,%d]", start, end)
	}
}

func TestContains(t *testing.T) {
	e := NewEngine()
	e.Select(3, 7, 10)

	for _, i := range []int{3, 5, 7} {
		if !e.Contains(i) {
			t.Errorf("expected %d inside selection", i)
		}
	}
	for _, i := range []int{2, 8} {
		if e.Contains(i) {
			t.Errorf("expected %d outside selection", i)
		}
	}
}

func TestDragGesture(t *testing.T) {
	e := NewEngine()
	now := time.Now()

	if count := e.Press(4, 0, 0, now); count != 1 {
		t.Fatalf("expected single click, got %d", count)
	}
	if !e.Dragging() {
		t.Fatal("expected drag active after press")
	}

	e.DragTo(9, 20)
	start, end, ok := e.Range()
	if !ok || start != 4 || end != 9 {
		t.Errorf("expected [4,9], got [%d,%d] ok=%v", start, end, ok)
	}

	// Dragging backward across the anchor swaps the range.
	e.DragTo(1, 20)
	start, end, _ = e.Range()
	if start != 1 || end != 4 {
		t.Errorf("expected [1,4], got [%d,%d]", start, end)
	}

	e.Release()
	if e.Dragging() {
		t.Error("expected drag ended")
	}
	if !e.Active() {
		t.Error("expected selection kept after release")
	}
}

func TestDragToWithoutPressIsNoOp(t *testing.T) {
	e := NewEngine()
	e.DragTo(5, 10)

	if e.Active() {
		t.Error("expected no selection without an active drag")
	}
}

func TestPressOutsideSelectionClearsIt(t *testing.T) {
	e := NewEngine()
	e.Select(2, 4, 10)

	e.Press(8, 0, 0, time.Now())
	if e.Active() {
		t.Error("expected press outside the selection to clear it")
	}
}

func TestPressInsideSelectionKeepsIt(t *testing.T) {
	e := NewEngine()
	e.Select(2, 6, 10)

	e.Press(4, 0, 0, time.Now())
	start, end, ok := e.Range()
	if !ok || start != 2 || end != 6 {
		t.Errorf("expected selection kept, got [%d,%d] ok=%v", start, end, ok)
	}
}

func TestDoubleClickDetection(t *testing.T) {
	e := NewEngine()
	now := time.Now()

	if count := e.Press(3, 10, 5, now); count != 1 {
		t.Errorf("expected 1, got %d", count)
	}
	e.Release()
	if count := e.Press(3, 11, 5, now.Add(100*time.Millisecond)); count != 2 {
		t.Errorf("expected 2, got %d", count)
	}
	e.Release()

	// A third quick click starts a new sequence.
	if count := e.Press(3, 11, 5, now.Add(200*time.Millisecond)); count != 1 {
		t.Errorf("expected wrap to 1, got %d", count)
	}
}

func TestDoubleClickWindowExpiry(t *testing.T) {
	e := NewEngine()
	now := time.Now()

	e.Press(3, 0, 0, now)
	e.Release()
	if count := e.Press(3, 0, 0, now.Add(time.Second)); count != 2 {
		if count != 1 {
			t.Fatalf("unexpected count %d", count)
		}
	} else {
		t.Error("expected slow second click to count as 1")
	}
}

func TestDoubleClickDistanceLimit(t *testing.T) {
	e := NewEngine()
	now := time.Now()

	e.Press(3, 0, 0, now)
	e.Release()
	if count := e.Press(9, 50, 50, now.Add(50*time.Millisecond)); count != 1 {
		t.Errorf("expected far click to count as 1, got %d", count)
	}
}

func TestAdjustForRemovalFullContainment(t *testing.T) {
	e := NewEngine()
	e.Select(3, 7, 20)

	// Removing [2, 12) swallows the whole selection.
	e.AdjustForRemoval(2, 10, 10)
	if e.Active() {
		t.Error("expected selection cleared by containing removal")
	}
}

func TestAdjustForRemovalBeforeSelectionShifts(t *testing.T) {
	e := NewEngine()
	e.Select(5, 8, 20)

	e.AdjustForRemoval(0, 3, 17)
	start, end, ok := e.Range()
	if !ok || start != 2 || end != 5 {
		t.Errorf("expected [2,5], got [%d,%d] ok=%v", start, end, ok)
	}
}

func TestAdjustForRemovalAfterSelectionKeepsIt(t *testing.T) {
	e := NewEngine()
	e.Select(2, 4, 20)

	e.AdjustForRemoval(10, 5, 15)
	start, end, ok := e.Range()
	if !ok || start != 2 || end != 4 {
		t.Errorf("expected [2,4], got [%d,%d] ok=%v", start, end, ok)
	}
}

func TestAdjustForRemovalPartialOverlapClamps(t *testing.T) {
	e := NewEngine()
	e.Select(3, 7, 20)

	// Removing [5, 15) truncates the selection tail.
	e.AdjustForRemoval(5, 10, 10)
	start, end, ok := e.Range()
	if !ok || start != 3 || end != 5 {
		t.Errorf("expected [3,5], got [%d,%d] ok=%v", start, end, ok)
	}
}
