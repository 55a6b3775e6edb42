package selection

import (
	"math"
	"time"
)

// Double-click detection window.
const (
	doubleClickTime     = 400 * time.Millisecond
	doubleClickDistance = 4.0
)

// clickTracker detects double clicks by time and pointer proximity.
type clickTracker struct {
	lastX, lastY float64
	lastTime     time.Time
	lastCount    int
}

func newClickTracker() clickTracker {
	return clickTracker{}
}

// record registers a click and returns the click count. The count wraps
// back to 1 after a double click, so a triple click starts over.
func (t *clickTracker) record(x, y float64, now time.Time) int {
	if now.IsZero() {
		now = time.Now()
	}

	if t.isFollowUp(x, y, now) {
		t.lastCount++
		if t.lastCount > 2 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastX, t.lastY = x, y
	t.lastTime = now
	return t.lastCount
}

func (t *clickTracker) isFollowUp(x, y float64, now time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() {
		return false
	}
	if now.Sub(t.lastTime) > doubleClickTime {
		return false
	}
	dx := math.Abs(x - t.lastX)
	dy := math.Abs(y - t.lastY)
	return dx+dy <= doubleClickDistance
}
