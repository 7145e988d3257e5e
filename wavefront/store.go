// SPDX-License-Identifier: MIT

package wavefront

// Store keeps the levels produced by an alignment, indexed by score.
//
// Levels must be put in increasing score order starting at 0. Wavefronts
// handed to Put must come from the same store's Alloc: the store owns them
// and recycles them on eviction or Reset.
type Store interface {
	// Alloc returns a wavefront over [lo, hi] with every cell null.
	Alloc(lo, hi int) *Wavefront
	// Free hands back an allocated wavefront that was never put.
	Free(w *Wavefront)
	// Put records the level of the given score.
	Put(score int, l Level)
	// Get returns the level of the given score. ok is false if the score
	// was never put or has been evicted.
	Get(score int) (l Level, ok bool)
	// Last returns the highest score put so far, or -1.
	Last() int
	// Reset drops every level and keeps the arrays for reuse.
	Reset()
}

// pool is a free list of wavefronts owned by one store.
type pool struct {
	free []*Wavefront
}

func (p *pool) alloc(lo, hi int) *Wavefront {
	n := len(p.free)
	if n == 0 {
		return New(lo, hi)
	}
	w := p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]
	w.reset(lo, hi)

	return w
}

func (p *pool) put(w *Wavefront) {
	if w != nil {
		p.free = append(p.free, w)
	}
}

func (p *pool) release(l Level) {
	p.put(l.M)
	p.put(l.I)
	p.put(l.D)
}

// History retains every level. It is required for traceback.
type History struct {
	levels []Level
	pool   pool
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

// Alloc implements Store.
func (h *History) Alloc(lo, hi int) *Wavefront { return h.pool.alloc(lo, hi) }

// Free implements Store.
func (h *History) Free(w *Wavefront) { h.pool.put(w) }

// Put implements Store. Skipped scores are recorded as empty levels.
func (h *History) Put(score int, l Level) {
	for len(h.levels) < score {
		h.levels = append(h.levels, Level{})
	}
	if score < len(h.levels) {
		h.pool.release(h.levels[score])
		h.levels[score] = l

		return
	}
	h.levels = append(h.levels, l)
}

// Get implements Store.
func (h *History) Get(score int) (Level, bool) {
	if score < 0 || score >= len(h.levels) {
		return Level{}, false
	}

	return h.levels[score], true
}

// Last implements Store.
func (h *History) Last() int { return len(h.levels) - 1 }

// Reset implements Store.
func (h *History) Reset() {
	for i := range h.levels {
		h.pool.release(h.levels[i])
		h.levels[i] = Level{}
	}
	h.levels = h.levels[:0]
}

// Window retains the last scope levels in a ring. Putting score s evicts
// score s-scope and recycles its arrays.
type Window struct {
	ring   []Level
	scores []int // score held by each slot, -1 if none
	last   int
	pool   pool
}

// NewWindow returns a Window holding scope levels (at least 1).
func NewWindow(scope int) *Window {
	if scope < 1 {
		scope = 1
	}
	w := &Window{
		ring:   make([]Level, scope),
		scores: make([]int, scope),
	}
	w.Reset()

	return w
}

// Scope returns the number of levels retained.
func (w *Window) Scope() int { return len(w.ring) }

// Alloc implements Store.
func (w *Window) Alloc(lo, hi int) *Wavefront { return w.pool.alloc(lo, hi) }

// Free implements Store.
func (w *Window) Free(wf *Wavefront) { w.pool.put(wf) }

// Put implements Store.
func (w *Window) Put(score int, l Level) {
	slot := score % len(w.ring)
	if w.scores[slot] != -1 {
		w.pool.release(w.ring[slot])
	}
	w.ring[slot] = l
	w.scores[slot] = score
	if score > w.last {
		w.last = score
	}
}

// Get implements Store.
func (w *Window) Get(score int) (Level, bool) {
	if score < 0 {
		return Level{}, false
	}
	slot := score % len(w.ring)
	if w.scores[slot] != score {
		return Level{}, false
	}

	return w.ring[slot], true
}

// Last implements Store.
func (w *Window) Last() int { return w.last }

// Reset implements Store.
func (w *Window) Reset() {
	for i := range w.ring {
		if w.scores[i] != -1 {
			w.pool.release(w.ring[i])
		}
		w.ring[i] = Level{}
		w.scores[i] = -1
	}
	w.last = -1
}
