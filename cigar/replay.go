// SPDX-License-Identifier: MIT

package cigar

import (
	"fmt"
	"strings"
)

// Verify replays the script against a and b. Every Match must pair equal
// symbols, every Mismatch different ones, and the script must consume both
// sequences exactly.
func (c *CIGAR) Verify(a, b []byte) error {
	i, j := 0, 0
	for _, r := range c.runs {
		if !r.Op.Valid() {
			return fmt.Errorf("%w: unknown operation %q", ErrBadCIGAR, byte(r.Op))
		}
		if r.Op.ConsumesA() && i+r.Len > len(a) {
			return fmt.Errorf("%w: %s run overruns A (%d+%d > %d)", ErrAlignmentMismatch, r.Op, i, r.Len, len(a))
		}
		if r.Op.ConsumesB() && j+r.Len > len(b) {
			return fmt.Errorf("%w: %s run overruns B (%d+%d > %d)", ErrAlignmentMismatch, r.Op, j, r.Len, len(b))
		}
		switch r.Op {
		case Match, Mismatch:
			for n := 0; n < r.Len; n, i, j = n+1, i+1, j+1 {
				if (a[i] == b[j]) != (r.Op == Match) {
					return fmt.Errorf("%w: %s at A[%d]=%q B[%d]=%q", ErrAlignmentMismatch, r.Op, i, a[i], j, b[j])
				}
			}
		case Insertion:
			j += r.Len
		case Deletion:
			i += r.Len
		}
	}
	if i != len(a) {
		return fmt.Errorf("%w: consumed %d of %d symbols of A", ErrAlignmentMismatch, i, len(a))
	}
	if j != len(b) {
		return fmt.Errorf("%w: consumed %d of %d symbols of B", ErrAlignmentMismatch, j, len(b))
	}

	return nil
}

// Apply rebuilds B by replaying the script over a: matched symbols are
// copied from a, substituted and inserted symbols are taken from b.
// The result equals b exactly when Verify(a, b) succeeds.
func (c *CIGAR) Apply(a, b []byte) ([]byte, error) {
	out := make([]byte, 0, len(b))
	i, j := 0, 0
	for _, r := range c.runs {
		if (r.Op.ConsumesA() && i+r.Len > len(a)) || (r.Op.ConsumesB() && j+r.Len > len(b)) {
			return nil, fmt.Errorf("%w: %s run of %d overruns the sequences", ErrAlignmentMismatch, r.Op, r.Len)
		}
		switch r.Op {
		case Match:
			out = append(out, a[i:i+r.Len]...)
			i += r.Len
			j += r.Len
		case Mismatch:
			out = append(out, b[j:j+r.Len]...)
			i += r.Len
			j += r.Len
		case Insertion:
			out = append(out, b[j:j+r.Len]...)
			j += r.Len
		case Deletion:
			i += r.Len
		default:
			return nil, fmt.Errorf("%w: unknown operation %q", ErrBadCIGAR, byte(r.Op))
		}
	}
	if i != len(a) {
		return nil, fmt.Errorf("%w: consumed %d of %d symbols of A", ErrAlignmentMismatch, i, len(a))
	}

	return out, nil
}

// Pretty renders the alignment as three lines: A with gaps, a marker line
// ('|' match, '*' mismatch, ' ' gap) and B with gaps.
// The script must be consistent with a and b (see Verify).
func (c *CIGAR) Pretty(a, b []byte) string {
	n := c.Len()
	var top, mid, bot strings.Builder
	top.Grow(n)
	mid.Grow(n)
	bot.Grow(n)
	i, j := 0, 0
	for _, r := range c.runs {
		for k := 0; k < r.Len; k++ {
			switch r.Op {
			case Match, Mismatch:
				top.WriteByte(at(a, i))
				bot.WriteByte(at(b, j))
				if r.Op == Match {
					mid.WriteByte('|')
				} else {
					mid.WriteByte('*')
				}
				i++
				j++
			case Insertion:
				top.WriteByte('-')
				mid.WriteByte(' ')
				bot.WriteByte(at(b, j))
				j++
			case Deletion:
				top.WriteByte(at(a, i))
				mid.WriteByte(' ')
				bot.WriteByte('-')
				i++
			}
		}
	}

	return top.String() + "\n" + mid.String() + "\n" + bot.String()
}

// at returns s[i] or '?' past the end, so Pretty never panics on a bad script.
func at(s []byte, i int) byte {
	if i < len(s) {
		return s[i]
	}

	return '?'
}
