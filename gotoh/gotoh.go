// SPDX-License-Identifier: MIT

package gotoh

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavealign/cigar"
	"github.com/katalvlaran/wavealign/penalty"
)

// inf is large enough to never win a min and small enough to survive
// additions of a few costs without overflow.
const inf = math.MaxInt / 4

// Align computes the optimal end-to-end score of a against b.
// Returns (score, cigar, error); cigar is nil unless opts.ReturnPath.
//
// Algorithm Outline (Full-Matrix), with o the open transition cost, e the
// extend cost and x the mismatch cost:
//  1. Let n = len(a), m = len(b). Allocate H, E, F of size (n+1)x(m+1).
//  2. Initialize:
//     H[0][0] = 0
//     H[0][j] = E[0][j] = o + (j-1)·e   for j=1..m
//     H[i][0] = F[i][0] = o + (i-1)·e   for i=1..n
//  3. For i = 1..n, j = 1..m:
//     E[i][j] = min(H[i][j-1] + o, E[i][j-1] + e)   insertion
//     F[i][j] = min(H[i-1][j] + o, F[i-1][j] + e)   deletion
//     H[i][j] = min(H[i-1][j-1] + cost(a[i-1], b[j-1]), E[i][j], F[i][j])
//  4. score = H[n][m].
//  5. If ReturnPath, walk back from (n, m) through H, E and F.
//
// Errors:
//   - penalty.ErrInvalidPenalty, penalty.ErrDegenerateModel for a bad model.
//   - ErrBadMemoryMode for an unknown MemoryMode.
//   - ErrPathNeedsMatrix if ReturnPath is set with TwoRows.
func Align(a, b []byte, p penalty.Penalties, opts *Options) (int, *cigar.CIGAR, error) {
	if err := p.Validate(); err != nil {
		return 0, nil, err
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	switch opts.MemoryMode {
	case FullMatrix:
		return alignFull(a, b, p, opts.ReturnPath)
	case TwoRows:
		if opts.ReturnPath {
			return 0, nil, ErrPathNeedsMatrix
		}

		return alignTwoRows(a, b, p), nil, nil
	default:
		return 0, nil, fmt.Errorf("%w: %d", ErrBadMemoryMode, int(opts.MemoryMode))
	}
}

// matrices holds the three Gotoh tables.
type matrices struct {
	h, e, f [][]int
}

func newMatrices(n, m int) *matrices {
	mx := &matrices{
		h: make([][]int, n+1),
		e: make([][]int, n+1),
		f: make([][]int, n+1),
	}
	for i := 0; i <= n; i++ {
		mx.h[i] = make([]int, m+1)
		mx.e[i] = make([]int, m+1)
		mx.f[i] = make([]int, m+1)
	}

	return mx
}

func alignFull(a, b []byte, p penalty.Penalties, wantPath bool) (int, *cigar.CIGAR, error) {
	n, m := len(a), len(b)
	x, o, e := p.MismatchCost(), p.OpenCost(), p.ExtendCost()
	mx := newMatrices(n, m)
	h, ei, fd := mx.h, mx.e, mx.f

	// Initialize first row/col
	h[0][0], ei[0][0], fd[0][0] = 0, inf, inf
	var i, j int
	for j = 1; j <= m; j++ {
		ei[0][j] = o + (j-1)*e
		h[0][j] = ei[0][j]
		fd[0][j] = inf
	}
	for i = 1; i <= n; i++ {
		fd[i][0] = o + (i-1)*e
		h[i][0] = fd[i][0]
		ei[i][0] = inf
	}

	// Fill DP
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			ei[i][j] = min(h[i][j-1]+o, ei[i][j-1]+e)
			fd[i][j] = min(h[i-1][j]+o, fd[i-1][j]+e)
			h[i][j] = min(h[i-1][j-1]+cost(a[i-1], b[j-1], x), ei[i][j], fd[i][j])
		}
	}

	score := h[n][m]
	if !wantPath {
		return score, nil, nil
	}

	return score, mx.traceback(a, b, x, o, e), nil
}

// table identifies the matrix the traceback is in.
type table int

const (
	inH table = iota
	inE
	inF
)

// traceback follows the predecessors of (n, m) back to (0, 0), preferring
// the diagonal move, then insertion, then deletion.
func (mx *matrices) traceback(a, b []byte, x, o, e int) *cigar.CIGAR {
	c := cigar.New(16)
	i, j := len(a), len(b)
	st := inH
	for i > 0 || j > 0 {
		switch st {
		case inH:
			if i > 0 && j > 0 && mx.h[i][j] == mx.h[i-1][j-1]+cost(a[i-1], b[j-1], x) {
				if a[i-1] == b[j-1] {
					c.Append(cigar.Match, 1)
				} else {
					c.Append(cigar.Mismatch, 1)
				}
				i--
				j--
			} else if j > 0 && mx.h[i][j] == mx.e[i][j] {
				st = inE
			} else {
				st = inF
			}
		case inE:
			c.Append(cigar.Insertion, 1)
			if mx.e[i][j] == mx.h[i][j-1]+o {
				st = inH
			}
			j--
		case inF:
			c.Append(cigar.Deletion, 1)
			if mx.f[i][j] == mx.h[i-1][j]+o {
				st = inH
			}
			i--
		}
	}
	// reverse ops in-place
	c.Reverse()

	return c
}

func alignTwoRows(a, b []byte, p penalty.Penalties) int {
	n, m := len(a), len(b)
	x, o, e := p.MismatchCost(), p.OpenCost(), p.ExtendCost()
	hPrev, hCurr := make([]int, m+1), make([]int, m+1)
	fPrev, fCurr := make([]int, m+1), make([]int, m+1)

	var i, j, ins int
	hPrev[0], fPrev[0] = 0, inf
	for j = 1; j <= m; j++ {
		hPrev[j] = o + (j-1)*e
		fPrev[j] = inf
	}
	for i = 1; i <= n; i++ {
		fCurr[0] = o + (i-1)*e
		hCurr[0] = fCurr[0]
		ins = inf
		for j = 1; j <= m; j++ {
			ins = min(hCurr[j-1]+o, ins+e)
			fCurr[j] = min(hPrev[j]+o, fPrev[j]+e)
			hCurr[j] = min(hPrev[j-1]+cost(a[i-1], b[j-1], x), ins, fCurr[j])
		}
		hPrev, hCurr = hCurr, hPrev
		fPrev, fCurr = fCurr, fPrev
	}

	return hPrev[m]
}

// cost returns 0 for equal symbols and x otherwise.
func cost(s, t byte, x int) int {
	if s == t {
		return 0
	}

	return x
}
