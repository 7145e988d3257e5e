// SPDX-License-Identifier: MIT

// Package wfa implements the wavefront alignment algorithm (WFA): exact
// pairwise alignment of two byte sequences under gap-affine, gap-linear or
// edit costs, in time proportional to the sequence length times the
// alignment score instead of the product of the lengths.
//
// Description:
//
//	Classic dynamic programming fills an (n+1)x(m+1) matrix. WFA instead
//	keeps, for every score s and every diagonal k = j - i, only the
//	furthest offset reached in A with cost exactly s. Similar sequences
//	have small scores, so only a few narrow wavefronts are ever built.
//
// Algorithm Outline:
//  1. Seed score 0 with diagonal 0 at offset 0.
//  2. Extend: slide each offset of the current M wavefront along matching
//     symbols (free, score unchanged).
//  3. If the cell (lenB-lenA, lenA) is reached, stop.
//  4. Otherwise compute score s+1 from scores s+1-x, s+1-(o+e), s+1-e:
//     I[s][k] = max(M[s-o-e][k-1], I[s-e][k-1])
//     D[s][k] = max(M[s-o-e][k+1], D[s-e][k+1]) + 1
//     M[s][k] = max(M[s-x][k] + 1, I[s][k], D[s][k])
//     and go to 2.
//  5. In FullAlignment mode trace back through the kept levels.
//
// Modes:
//   - FullAlignment: score and CIGAR, every level kept. Memory O(s·d).
//   - ScoreOnly: score only, a ring of max(x, o+e, e)+1 levels. Memory O(d).
//
// Penalties:
//
//	See package penalty. The default penalty.Affine(4, 6, 2) charges a gap
//	of length L as 6 + 2·L. penalty.GapOpenFirst switches to 6 + 2·(L-1).
//	When opening and extending cost the same, a single M component is
//	computed.
//
// Complexity:
//
//	Time   = O((n+m)·s) worst case, O(n + s²) expected for similar inputs
//	Memory = O(s·d) (FullAlignment) or O(d) (ScoreOnly), d <= n+m+1
//
// Errors:
//   - ErrInvalidPenalty, ErrDegenerateModel: bad penalty model (New).
//   - ErrBadOption, ErrUnsupportedHeuristic: bad options (New).
//   - ErrScoreLimitExceeded: WithMaxScore ceiling hit (Align).
//   - ErrInconsistentHistory: traceback impossible (Align).
//
// Concurrency:
//
//	An Aligner reuses its storage and must not be shared between goroutines.
//	Separate Aligners, and the package-level Align, share no state.
//
// Example:
//
//	al, err := wfa.New(penalty.Affine(4, 6, 2))
//	if err != nil {
//		return err
//	}
//	res, err := al.Align([]byte("GATTACA"), []byte("GCATGCU"))
//	fmt.Println(res.Score, res.CIGAR)
package wfa
