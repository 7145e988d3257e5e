// SPDX-License-Identifier: MIT

package wfa

import (
	"fmt"

	"github.com/katalvlaran/wavealign/cigar"
	"github.com/katalvlaran/wavealign/wavefront"
)

// level returns the level of score s for traceback. Negative scores read
// as empty; a non-negative score that is not held means the history was
// evicted or never built, which makes traceback impossible.
func (al *Aligner) level(s int) (wavefront.Level, error) {
	if s < 0 {
		return wavefront.Level{}, nil
	}
	l, ok := al.store.Get(s)
	if !ok {
		return wavefront.Level{}, fmt.Errorf("%w: level %d not retained", ErrInconsistentHistory, s)
	}

	return l, nil
}

// backtrace rebuilds the edit script ending at cell (k, offset) of score s.
//
// It replays the recurrence backwards. In M, the run of matches down to the
// best candidate is emitted, then the candidate is followed, preferring
// mismatch, then insertion close, then deletion close. In I and D, the gap
// open from M is preferred over the extension. Operations are appended from
// the end and the script is reversed once at the end.
//
// Complexity: O(s + |A| + |B|).
func (al *Aligner) backtrace(s, k, offset int) (*cigar.CIGAR, error) {
	c := cigar.New(16)

	// Free tail: the unaligned rest of B or of A.
	c.Append(cigar.Insertion, al.lenB-(offset+k))
	c.Append(cigar.Deletion, al.lenA-offset)

	var (
		comp = wavefront.M
		a    = offset
		cur  wavefront.Level
		from wavefront.Level
		err  error
	)
	for {
		switch comp {
		case wavefront.M:
			if s == 0 {
				if err = al.traceHead(c, k, a); err != nil {
					return nil, err
				}
				c.Reverse()

				return c, nil
			}

			var sub, ins, del int
			if from, err = al.level(s - al.x); err != nil {
				return nil, err
			}
			sub = al.trim(k, from.M.Get(k)+1)
			if al.linear {
				if from, err = al.level(s - al.open); err != nil {
					return nil, err
				}
				ins = al.trim(k, from.M.Get(k-1))
				del = al.trim(k, from.M.Get(k+1)+1)
			} else {
				if cur, err = al.level(s); err != nil {
					return nil, err
				}
				ins = al.trim(k, cur.I.Get(k))
				del = al.trim(k, cur.D.Get(k))
			}

			v := max(sub, ins, del)
			if v < 0 || v > a {
				return nil, fmt.Errorf("%w: no predecessor for M[%d][%d]=%d", ErrInconsistentHistory, s, k, a)
			}
			c.Append(cigar.Match, a-v)
			a = v

			switch {
			case sub == v:
				c.Append(cigar.Mismatch, 1)
				s -= al.x
				a--
			case ins == v && al.linear:
				c.Append(cigar.Insertion, 1)
				s -= al.open
				k--
			case ins == v:
				comp = wavefront.I
			case al.linear:
				c.Append(cigar.Deletion, 1)
				s -= al.open
				k++
				a--
			default:
				comp = wavefront.D
			}

		case wavefront.I:
			c.Append(cigar.Insertion, 1)
			if comp, s, err = al.traceGap(s, k-1, a, 0, wavefront.I); err != nil {
				return nil, err
			}
			k--

		case wavefront.D:
			c.Append(cigar.Deletion, 1)
			if comp, s, err = al.traceGap(s, k+1, a, 1, wavefront.D); err != nil {
				return nil, err
			}
			k++
			a--
		}
	}
}

// traceGap finds the source of a gap cell with offset a at score s. The
// source lies on diagonal src and its offset plus step equals a. It returns
// the component and score to continue from.
func (al *Aligner) traceGap(s, src, a, step int, gap wavefront.Component) (wavefront.Component, int, error) {
	opened, err := al.level(s - al.open)
	if err != nil {
		return 0, 0, err
	}
	if o := opened.M.Get(src); o >= 0 && o+step == a {
		return wavefront.M, s - al.open, nil
	}
	extended, err := al.level(s - al.ext)
	if err != nil {
		return 0, 0, err
	}
	if o := extended.Get(gap).Get(src); o >= 0 && o+step == a {
		return gap, s - al.ext, nil
	}

	return 0, 0, fmt.Errorf("%w: no predecessor for %s[%d] on diagonal %d", ErrInconsistentHistory, gap, s, src)
}

// traceHead emits the segment between the score-0 seed of diagonal k and
// offset a: the matches covered by the first extension, then the free
// leading gap for ends-free seeds.
func (al *Aligner) traceHead(c *cigar.CIGAR, k, a int) error {
	seed, err := al.level(0)
	if err != nil {
		return err
	}
	start := initOffset(k)
	if seed.M.Get(k) < 0 || a < start {
		return fmt.Errorf("%w: diagonal %d is not a start diagonal", ErrInconsistentHistory, k)
	}
	c.Append(cigar.Match, a-start)
	if k > 0 {
		c.Append(cigar.Insertion, k)
	} else {
		c.Append(cigar.Deletion, -k)
	}

	return nil
}
