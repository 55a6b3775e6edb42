// Package pool provides an arena of line-renderer handles with an
// index-based free list. Renderers are created on demand through a
// factory, disabled and parked on release, and reused by later
// acquires, so a scrolling window recycles a small fixed set of
// renderers instead of churning allocations.
package pool

import "github.com/dshills/textwell/internal/textarea/core"

// Handle identifies one slot in the pool's arena.
type Handle int

// Factory creates a new backend line renderer.
type Factory func() core.LineRenderer

// Pool is an arena of line renderers with explicit acquire/release.
// It is owned by one text area and is not safe for concurrent use.
type Pool struct {
	arena   []core.LineRenderer
	free    []Handle
	factory Factory
}

// New creates an empty pool backed by the given factory.
func New(factory Factory) *Pool {
	return &Pool{factory: factory}
}

// Acquire returns an enabled renderer, reusing a parked slot when one
// exists and growing the arena otherwise.
func (p *Pool) Acquire() (Handle, core.LineRenderer) {
	if n := len(p.free); n > 0 {
		h := p.free[n-1]
		p.free = p.free[:n-1]
		r := p.arena[h]
		r.SetEnabled(true)
		return h, r
	}
	r := p.factory()
	p.arena = append(p.arena, r)
	return Handle(len(p.arena) - 1), r
}

// Get returns the renderer for a live handle.
func (p *Pool) Get(h Handle) core.LineRenderer {
	return p.arena[h]
}

// Release disables the renderer and parks its slot for reuse.
// Releasing the same handle twice corrupts the free list; callers own
// that invariant.
func (p *Pool) Release(h Handle) {
	p.arena[h].SetEnabled(false)
	p.free = append(p.free, h)
}

// Size returns the number of renderers ever created.
func (p *Pool) Size() int {
	return len(p.arena)
}

// FreeCount returns the number of parked slots.
func (p *Pool) FreeCount() int {
	return len(p.free)
}

// Destroy releases every backend renderer and empties the pool.
func (p *Pool) Destroy() {
	for _, r := range p.arena {
		r.Release()
	}
	p.arena = nil
	p.free = nil
}
