// SPDX-License-Identifier: MIT

package wfa

import (
	"github.com/katalvlaran/wavealign/cigar"
	"github.com/katalvlaran/wavealign/wavefront"
)

// MatchRun exposes the block extension kernel to tests.
var MatchRun = matchRun

// ForceAffine makes the aligner use the three-component kernel even for
// gap-linear models.
func (al *Aligner) ForceAffine() { al.linear = false }

// Linear reports whether the single-component kernel is in use.
func (al *Aligner) Linear() bool { return al.linear }

// BacktraceLast traces back from the terminal cell of the last Align call
// using whatever levels the store still holds.
func (al *Aligner) BacktraceLast() (*cigar.CIGAR, error) {
	return al.backtrace(al.score, al.endK, al.endOffset)
}

// ShiftOffset adds delta to the retained offset of component c on diagonal
// k at score s. It reports false if that cell is not held.
func (al *Aligner) ShiftOffset(s int, c wavefront.Component, k, delta int) bool {
	l, ok := al.store.Get(s)
	if !ok {
		return false
	}
	w := l.Get(c)
	if w.Get(k) == wavefront.OffsetNull {
		return false
	}
	w.Set(k, w.Get(k)+delta)

	return true
}
