// SPDX-License-Identifier: MIT

package wfa

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavealign/wavefront"
)

// state is a step of the alignment driver.
type state int

const (
	stateInit state = iota
	stateExtending
	stateAdvancing
	stateTerminated
)

// Align computes the optimal alignment of a against b.
//
// Steps:
//  1. Init: seed score 0 (diagonal 0, plus the free begin diagonals).
//  2. Extending: slide every M offset of the current score along its
//     matches, report the wavefront, test termination.
//  3. Advancing: score+1, check the ceiling, compute the next level.
//  4. Terminated: trace back (FullAlignment) and return.
//
// The sequences are only read, and are not retained after the call.
//
// Errors: ErrScoreLimitExceeded, ErrInconsistentHistory.
func (al *Aligner) Align(a, b []byte) (Result, error) {
	al.begin(a, b)
	defer al.finish()

	limit := al.limit()
	var (
		st    = stateInit
		score int
		lvl   wavefront.Level
		done  bool
	)
	for st != stateTerminated {
		switch st {
		case stateInit:
			al.seed()
			st = stateExtending

		case stateExtending:
			lvl, _ = al.store.Get(score)
			st = stateAdvancing
			if lvl.M == nil {
				continue
			}
			extend(lvl.M, al.a, al.b)
			al.opts.OnWavefront(score, lvl.M.Lo(), lvl.M.Hi())
			if al.endK, al.endOffset, done = al.terminal(lvl.M); done {
				st = stateTerminated
			}

		case stateAdvancing:
			if score >= limit {
				return Result{}, fmt.Errorf("%w: no alignment with score <= %d", ErrScoreLimitExceeded, limit)
			}
			score++
			al.compute(score)
			st = stateExtending
		}
	}
	al.score = score

	res := Result{Score: score}
	if al.opts.Mode == ScoreOnly {
		return res, nil
	}
	c, err := al.backtrace(score, al.endK, al.endOffset)
	if err != nil {
		return Result{}, err
	}
	res.CIGAR = c

	return res, nil
}

func (al *Aligner) begin(a, b []byte) {
	al.a, al.b = a, b
	al.lenA, al.lenB = len(a), len(b)
	al.score, al.endK, al.endOffset = 0, 0, 0
	al.store.Reset()
}

func (al *Aligner) finish() {
	al.a, al.b = nil, nil
}

// limit is the user ceiling, or the worst-case score when none is set.
func (al *Aligner) limit() int {
	if al.opts.MaxScore > 0 {
		return al.opts.MaxScore
	}
	if bound, ok := al.p.ScoreBound(al.lenA, al.lenB); ok {
		return bound
	}

	return math.MaxInt
}

// seed stores the score-0 level. End-to-end it holds diagonal 0 at offset 0.
// With free begins, diagonal k > 0 starts at (0, k) and k < 0 at (-k, 0).
func (al *Aligner) seed() {
	lo, hi := 0, 0
	if sp := al.opts.Span; !sp.EndToEnd() {
		lo = -min(sp.ABegin, al.lenA)
		hi = min(sp.BBegin, al.lenB)
	}
	m := al.store.Alloc(lo, hi)
	for k := lo; k <= hi; k++ {
		m.Set(k, initOffset(k))
	}
	al.store.Put(0, wavefront.Level{M: m})
}

// initOffset is the A offset of the score-0 cell on diagonal k.
func initOffset(k int) int {
	if k < 0 {
		return -k
	}

	return 0
}

// terminal looks for a cell of m that completes the alignment.
//
// End-to-end: diagonal lenB-lenA at offset lenA.
// Ends-free: A exhausted with at most BEnd symbols of B left, or B
// exhausted with at most AEnd symbols of A left; lowest diagonal wins.
func (al *Aligner) terminal(m *wavefront.Wavefront) (k, offset int, ok bool) {
	sp := al.opts.Span
	if sp.EndToEnd() {
		k = al.lenB - al.lenA
		if m.Get(k) == al.lenA {
			return k, al.lenA, true
		}

		return 0, 0, false
	}

	lo := m.Lo()
	for i, a := range m.Offsets() {
		if a < 0 {
			continue
		}
		k = lo + i
		b := a + k
		if (a == al.lenA && al.lenB-b <= sp.BEnd) || (b == al.lenB && al.lenA-a <= sp.AEnd) {
			return k, a, true
		}
	}

	return 0, 0, false
}
