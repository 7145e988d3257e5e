// SPDX-License-Identifier: MIT

package wfa

import "github.com/katalvlaran/wavealign/wavefront"

// diagonals is a diagonal interval accumulated from source wavefronts.
type diagonals struct {
	lo, hi int
	ok     bool
}

// add widens d by the range of w shifted by shift diagonals.
func (d *diagonals) add(w *wavefront.Wavefront, shift int) {
	if w == nil {
		return
	}
	lo, hi := w.Lo()+shift, w.Hi()+shift
	if !d.ok {
		d.lo, d.hi, d.ok = lo, hi, true
		return
	}
	d.lo = min(d.lo, lo)
	d.hi = max(d.hi, hi)
}

// union widens d by e.
func (d *diagonals) union(e diagonals) {
	if !e.ok {
		return
	}
	if !d.ok {
		*d = e
		return
	}
	d.lo = min(d.lo, e.lo)
	d.hi = max(d.hi, e.hi)
}

// clamp restricts d to [lo, hi].
func (d *diagonals) clamp(lo, hi int) {
	d.lo = max(d.lo, lo)
	d.hi = min(d.hi, hi)
	if d.lo > d.hi {
		d.ok = false
	}
}

// trim returns offset if cell (k, offset) lies within both sequences and
// OffsetNull otherwise. Null inputs stay null.
func (al *Aligner) trim(k, offset int) int {
	if offset < 0 || offset > al.lenA || offset+k > al.lenB {
		return wavefront.OffsetNull
	}

	return offset
}

// source returns the level of score s for reading, or an empty level when
// s is negative or not held.
func (al *Aligner) source(s int) wavefront.Level {
	if s < 0 {
		return wavefront.Level{}
	}
	l, _ := al.store.Get(s)

	return l
}

// compute builds the level of score s from the retained lower levels.
func (al *Aligner) compute(s int) {
	if al.linear {
		al.computeLinear(s)
		return
	}
	al.computeAffine(s)
}

// computeAffine applies the gap-affine recurrence:
//
//	I[s][k] = max(M[s-o][k-1], I[s-e][k-1])
//	D[s][k] = max(M[s-o][k+1], D[s-e][k+1]) + 1
//	M[s][k] = max(M[s-x][k] + 1, I[s][k], D[s][k])
//
// where o is the open transition cost, e the extend cost and x the mismatch
// cost. Every candidate is trimmed to the sequence bounds before the max.
// A stored offset is the best of its candidates at this score only; on a
// fixed diagonal a later score may hold a smaller offset.
//
// Complexity: O(d) for d diagonals in the output range.
func (al *Aligner) computeAffine(s int) {
	mSub := al.source(s - al.x).M
	mOpen := al.source(s - al.open).M
	ext := al.source(s - al.ext)
	iExt, dExt := ext.I, ext.D

	// 1. Output ranges per component.
	var ri, rd, rm diagonals
	ri.add(mOpen, 1)
	ri.add(iExt, 1)
	rd.add(mOpen, -1)
	rd.add(dExt, -1)
	rm.add(mSub, 0)
	rm.union(ri)
	rm.union(rd)
	ri.clamp(-al.lenA, al.lenB)
	rd.clamp(-al.lenA, al.lenB)
	rm.clamp(-al.lenA, al.lenB)
	if !rm.ok {
		al.store.Put(s, wavefront.Level{})
		return
	}

	// 2. Allocate only components that have a source.
	var iw, dw *wavefront.Wavefront
	if ri.ok {
		iw = al.store.Alloc(ri.lo, ri.hi)
	}
	if rd.ok {
		dw = al.store.Alloc(rd.lo, rd.hi)
	}
	mw := al.store.Alloc(rm.lo, rm.hi)

	// 3. Recurrence.
	var k, ins, del, sub int
	for k = rm.lo; k <= rm.hi; k++ {
		ins = max(al.trim(k, mOpen.Get(k-1)), al.trim(k, iExt.Get(k-1)))
		if ins >= 0 {
			iw.Set(k, ins)
		}
		del = max(al.trim(k, mOpen.Get(k+1)+1), al.trim(k, dExt.Get(k+1)+1))
		if del >= 0 {
			dw.Set(k, del)
		}
		sub = al.trim(k, mSub.Get(k)+1)
		if m := max(sub, ins, del); m >= 0 {
			mw.Set(k, m)
		}
	}

	// 4. Drop unreached components, narrow the rest.
	al.store.Put(s, wavefront.Level{
		M: al.keep(mw),
		I: al.keep(iw),
		D: al.keep(dw),
	})
}

// computeLinear applies the single-component recurrence used when opening
// and extending a gap cost the same (gap-linear and edit models):
//
//	M[s][k] = max(M[s-x][k] + 1, M[s-g][k-1], M[s-g][k+1] + 1)
func (al *Aligner) computeLinear(s int) {
	mSub := al.source(s - al.x).M
	mGap := al.source(s - al.open).M

	var rm diagonals
	rm.add(mSub, 0)
	rm.add(mGap, -1)
	rm.add(mGap, 1)
	rm.clamp(-al.lenA, al.lenB)
	if !rm.ok {
		al.store.Put(s, wavefront.Level{})
		return
	}

	mw := al.store.Alloc(rm.lo, rm.hi)
	var k, m int
	for k = rm.lo; k <= rm.hi; k++ {
		m = max(
			al.trim(k, mSub.Get(k)+1),
			al.trim(k, mGap.Get(k-1)),
			al.trim(k, mGap.Get(k+1)+1),
		)
		if m >= 0 {
			mw.Set(k, m)
		}
	}
	al.store.Put(s, wavefront.Level{M: al.keep(mw)})
}

// keep narrows w to its reached diagonals, or frees it and returns nil.
func (al *Aligner) keep(w *wavefront.Wavefront) *wavefront.Wavefront {
	if w == nil {
		return nil
	}
	if !w.Trim() {
		al.store.Free(w)
		return nil
	}

	return w
}
