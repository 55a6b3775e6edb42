package buffer

import (
	"testing"

	"github.com/dshills/textwell/internal/textarea/core"
)

func TestRecordAndReconstruct(t *testing.T) {
	b := New()
	b.SetText("a?b", core.ColorWhite)
	b.RecordReplacement(1, '😊')
	b.SetChar(1, '□')

	if b.String() != "a□b" {
		t.Errorf("expected stored %q, got %q", "a□b", b.String())
	}
	if got := b.OriginalText(0, 3); got != "a😊b" {
		t.Errorf("expected original %q, got %q", "a😊b", got)
	}
}

func TestRecordKeepsOldestOriginal(t *testing.T) {
	b := New()
	b.SetText("x", core.ColorWhite)
	b.RecordReplacement(0, '😊')
	b.RecordReplacement(0, '□')

	if got := b.OriginalText(0, 1); got != "😊" {
		t.Errorf("expected %q, got %q", "😊", got)
	}
}

func TestRestoreReplacedFrom(t *testing.T) {
	b := New()
	b.SetText("abcd", core.ColorWhite)
	b.RecordReplacement(1, 'X')
	b.SetChar(1, '□')
	b.RecordReplacement(3, 'Y')
	b.SetChar(3, '□')

	b.RestoreReplacedFrom(2)

	if b.String() != "a□cY" {
		t.Errorf("expected %q, got %q", "a□cY", b.String())
	}
	if got := len(b.Replacements()); got != 1 {
		t.Errorf("expected 1 remaining replacement, got %d", got)
	}
	// The entry before the restore point survives.
	if got := b.OriginalText(0, 4); got != "aXcY" {
		t.Errorf("expected %q, got %q", "aXcY", got)
	}
}

func TestAdjustForRemoval(t *testing.T) {
	b := New()
	b.SetText("abcdefgh", core.ColorWhite)
	b.RecordReplacement(1, 'P')
	b.RecordReplacement(4, 'Q')
	b.RecordReplacement(6, 'R')

	// Removes indices 3..5: the Q entry dies, R shifts to 3.
	if err := b.Remove(3, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reps := b.Replacements()
	if len(reps) != 2 {
		t.Fatalf("expected 2 replacements, got %d", len(reps))
	}
	if reps[0].Index != 1 || reps[0].Original != 'P' {
		t.Errorf("expected {1 P}, got %v", reps[0])
	}
	if reps[1].Index != 3 || reps[1].Original != 'R' {
		t.Errorf("expected {3 R}, got %v", reps[1])
	}
}

func TestReplacementsSortedAscending(t *testing.T) {
	b := New()
	b.SetText("abcdef", core.ColorWhite)
	b.RecordReplacement(4, 'X')
	b.RecordReplacement(1, 'Y')
	b.RecordReplacement(3, 'Z')

	reps := b.Replacements()
	for i := 1; i < len(reps); i++ {
		if reps[i].Index <= reps[i-1].Index {
			t.Fatalf("indices not strictly increasing: %v", reps)
		}
	}
}

func TestSetTextDiscardsLog(t *testing.T) {
	b := New()
	b.SetText("ab", core.ColorWhite)
	b.RecordReplacement(0, 'X')

	b.SetText("cd", core.ColorWhite)
	if got := len(b.Replacements()); got != 0 {
		t.Errorf("expected empty log after SetText, got %d entries", got)
	}
}
