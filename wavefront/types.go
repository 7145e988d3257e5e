// SPDX-License-Identifier: MIT

// Package wavefront stores the furthest-reaching offsets of a wavefront
// alignment: one offset per diagonal, per component, per score.
//
// Coordinates:
//
//	diagonal k = offsetB - offsetA
//	offset     = position reached in A (the B position is offset + k)
//
// A Wavefront covers a contiguous diagonal range [lo, hi] and is stored as an
// index-shifted slice (offsets[k-lo]), so negative diagonals never produce
// negative indices. A Level groups the M, I and D wavefronts of one score;
// a component that reaches no cell is nil.
//
// Storage:
//   - History keeps every level and supports traceback. Memory: O(s·d).
//   - Window keeps only the last scope levels and recycles evicted arrays.
//     Memory: O(scope·d). Evicted levels read as absent.
package wavefront

import "math"

// OffsetNull marks an unreached cell. It is negative enough that adding any
// number of single-step increments keeps it below every valid offset.
const OffsetNull = math.MinInt32

// Component identifies one of the three wavefronts of a level.
type Component int

const (
	// M ends in a match or mismatch.
	M Component = iota
	// I ends in an insertion (consumes B).
	I
	// D ends in a deletion (consumes A).
	D
)

// String returns "M", "I" or "D".
func (c Component) String() string {
	switch c {
	case M:
		return "M"
	case I:
		return "I"
	case D:
		return "D"
	default:
		return "?"
	}
}

// Wavefront holds the offsets of diagonals lo..hi.
type Wavefront struct {
	lo, hi  int
	offsets []int
}

// New returns a wavefront over [lo, hi] with every cell set to OffsetNull.
func New(lo, hi int) *Wavefront {
	w := &Wavefront{}
	w.reset(lo, hi)

	return w
}

// reset reshapes w to [lo, hi], reusing its backing array when large enough.
func (w *Wavefront) reset(lo, hi int) {
	n := hi - lo + 1
	if n < 0 {
		n = 0
	}
	if cap(w.offsets) >= n {
		w.offsets = w.offsets[:n]
	} else {
		w.offsets = make([]int, n)
	}
	for i := range w.offsets {
		w.offsets[i] = OffsetNull
	}
	w.lo, w.hi = lo, hi
}

// Lo is the lowest diagonal held.
func (w *Wavefront) Lo() int { return w.lo }

// Hi is the highest diagonal held.
func (w *Wavefront) Hi() int { return w.hi }

// Offsets exposes the backing slice; index i is diagonal Lo()+i.
func (w *Wavefront) Offsets() []int { return w.offsets }

// Get returns the offset of diagonal k, or OffsetNull if w is nil or k is
// outside [lo, hi].
func (w *Wavefront) Get(k int) int {
	if w == nil || k < w.lo || k > w.hi {
		return OffsetNull
	}

	return w.offsets[k-w.lo]
}

// Set stores the offset of diagonal k. k must lie within [lo, hi].
func (w *Wavefront) Set(k, offset int) {
	w.offsets[k-w.lo] = offset
}

// Reached reports whether any diagonal holds a non-null offset.
func (w *Wavefront) Reached() bool {
	if w == nil {
		return false
	}
	for _, o := range w.offsets {
		if o != OffsetNull {
			return true
		}
	}

	return false
}

// Trim narrows [lo, hi] to the outermost reached diagonals. It returns
// false, leaving w unchanged, when no diagonal is reached.
func (w *Wavefront) Trim() bool {
	first, last := -1, -1
	for i, o := range w.offsets {
		if o == OffsetNull {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return false
	}
	w.offsets = w.offsets[first : last+1]
	w.lo, w.hi = w.lo+first, w.lo+last

	return true
}

// Level is the set of wavefronts sharing one score.
type Level struct {
	M, I, D *Wavefront
}

// Get returns the wavefront of component c (nil if unreached).
func (l Level) Get(c Component) *Wavefront {
	switch c {
	case M:
		return l.M
	case I:
		return l.I
	case D:
		return l.D
	default:
		return nil
	}
}

// Empty reports whether the level has no wavefront at all.
func (l Level) Empty() bool {
	return l.M == nil && l.I == nil && l.D == nil
}
