package pool

import (
	"testing"

	"github.com/dshills/textwell/internal/textarea/core"
)

// fakeRenderer records lifecycle calls.
type fakeRenderer struct {
	enabled  bool
	released bool
}

func (f *fakeRenderer) SetCharacters(chars []rune, colors []core.Color) {}
func (f *fakeRenderer) PushColors(colors []core.Color)                  {}
func (f *fakeRenderer) SetRow(row int)                                  {}
func (f *fakeRenderer) SetEnabled(enabled bool)                         { f.enabled = enabled }
func (f *fakeRenderer) Release()                                        { f.released = true }

func newTestPool() (*Pool, *[]*fakeRenderer) {
	var created []*fakeRenderer
	p := New(func() core.LineRenderer {
		r := &fakeRenderer{enabled: true}
		created = append(created, r)
		return r
	})
	return p, &created
}

func TestAcquireCreatesOnDemand(t *testing.T) {
	p, created := newTestPool()

	h0, r0 := p.Acquire()
	h1, r1 := p.Acquire()

	if len(*created) != 2 {
		t.Fatalf("expected 2 renderers created, got %d", len(*created))
	}
	if h0 == h1 {
		t.Errorf("expected distinct handles, got %v twice", h0)
	}
	if r0 == r1 {
		t.Error("expected distinct renderers")
	}
}

func TestReleaseParksAndReuses(t *testing.T) {
	p, created := newTestPool()

	h0, _ := p.Acquire()
	p.Release(h0)

	if (*created)[0].enabled {
		t.Error("expected released renderer disabled")
	}
	if p.FreeCount() != 1 {
		t.Errorf("expected 1 free slot, got %d", p.FreeCount())
	}

	h1, _ := p.Acquire()
	if h1 != h0 {
		t.Errorf("expected reuse of handle %v, got %v", h0, h1)
	}
	if len(*created) != 1 {
		t.Errorf("expected no new renderer, got %d total", len(*created))
	}
	if !(*created)[0].enabled {
		t.Error("expected reacquired renderer enabled")
	}
}

func TestGet(t *testing.T) {
	p, created := newTestPool()
	h, _ := p.Acquire()

	if p.Get(h) != core.LineRenderer((*created)[0]) {
		t.Error("Get returned the wrong renderer")
	}
}

func TestDestroyReleasesAll(t *testing.T) {
	p, created := newTestPool()
	p.Acquire()
	h, _ := p.Acquire()
	p.Release(h)

	p.Destroy()

	for i, r := range *created {
		if !r.released {
			t.Errorf("renderer %d not released", i)
		}
	}
	if p.Size() != 0 {
		t.Errorf("expected empty arena, got size %d", p.Size())
	}
}
