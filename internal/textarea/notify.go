package textarea

import (
	"time"

	"github.com/google/uuid"
)

// ScrollEvent describes a change of the visible target line.
type ScrollEvent struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the change happened.
	Timestamp time.Time

	// Target is the new first visible line.
	Target int

	// LastLine is the current largest valid target.
	LastLine int
}

// ScrollListener receives scroll change events.
type ScrollListener func(ScrollEvent)

// notifier fans scroll events out to subscribers.
type notifier struct {
	nextID    int
	listeners map[int]ScrollListener
}

func (n *notifier) subscribe(fn ScrollListener) int {
	if n.listeners == nil {
		n.listeners = make(map[int]ScrollListener)
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return id
}

func (n *notifier) unsubscribe(id int) {
	delete(n.listeners, id)
}

func (n *notifier) publish(ev ScrollEvent) {
	for _, fn := range n.listeners {
		fn(ev)
	}
}

// OnScroll subscribes to target-line changes. The returned function
// removes the subscription. Listeners run synchronously on the
// goroutine that caused the change and must not call back into the
// text area.
func (t *TextArea) OnScroll(fn ScrollListener) (unsubscribe func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.notifier.subscribe(fn)
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.notifier.unsubscribe(id)
	}
}

// notifyIfMoved publishes a scroll event when the target changed from
// prev. Callers hold the write lock.
func (t *TextArea) notifyIfMoved(prev int) {
	cur := t.vp.Target()
	if cur == prev {
		return
	}
	t.notifier.publish(ScrollEvent{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Target:    cur,
		LastLine:  t.vp.LastLine(),
	})
}
