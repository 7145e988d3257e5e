// SPDX-License-Identifier: MIT

package cigar

import (
	"fmt"
	"strconv"
	"strings"
)

// CIGAR is a run-length encoded edit script. The zero value is an empty script.
type CIGAR struct {
	runs []Run
}

// New returns an empty script with room for n runs.
func New(n int) *CIGAR {
	return &CIGAR{runs: make([]Run, 0, n)}
}

// FromRuns builds a script from runs, merging adjacent runs of the same op.
// Runs with non-positive length are skipped.
func FromRuns(runs ...Run) *CIGAR {
	c := New(len(runs))
	for _, r := range runs {
		c.Append(r.Op, r.Len)
	}

	return c
}

// Append adds n operations op at the end, extending the last run when it
// has the same op. n <= 0 is a no-op.
func (c *CIGAR) Append(op Op, n int) {
	if n <= 0 {
		return
	}
	if last := len(c.runs) - 1; last >= 0 && c.runs[last].Op == op {
		c.runs[last].Len += n

		return
	}
	c.runs = append(c.runs, Run{Op: op, Len: n})
}

// Reverse reverses the order of the runs in place.
func (c *CIGAR) Reverse() {
	s := c.runs
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Runs returns a copy of the runs.
func (c *CIGAR) Runs() []Run {
	out := make([]Run, len(c.runs))
	copy(out, c.runs)

	return out
}

// NumRuns returns the number of runs.
func (c *CIGAR) NumRuns() int { return len(c.runs) }

// Len returns the total number of operations.
func (c *CIGAR) Len() int {
	n := 0
	for _, r := range c.runs {
		n += r.Len
	}

	return n
}

// Counts tallies the operations.
func (c *CIGAR) Counts() Counts {
	var cnt Counts
	for _, r := range c.runs {
		switch r.Op {
		case Match:
			cnt.Matches += r.Len
		case Mismatch:
			cnt.Mismatches += r.Len
		case Insertion:
			cnt.Insertions += r.Len
			cnt.GapRuns++
		case Deletion:
			cnt.Deletions += r.Len
			cnt.GapRuns++
		}
	}

	return cnt
}

// LenA returns how many symbols of A the script consumes.
func (c *CIGAR) LenA() int {
	cnt := c.Counts()

	return cnt.Matches + cnt.Mismatches + cnt.Deletions
}

// LenB returns how many symbols of B the script consumes.
func (c *CIGAR) LenB() int {
	cnt := c.Counts()

	return cnt.Matches + cnt.Mismatches + cnt.Insertions
}

// Score prices the script: mismatches cost MismatchCost each, every I or D
// run costs GapCost(run length), matches are free.
func (c *CIGAR) Score(s Scorer) int {
	score := 0
	for _, r := range c.runs {
		switch r.Op {
		case Mismatch:
			score += r.Len * s.MismatchCost()
		case Insertion, Deletion:
			score += s.GapCost(r.Len)
		}
	}

	return score
}

// String returns the script as "3M1X2I" (M for matches, X for mismatches).
func (c *CIGAR) String() string {
	return c.format(func(op Op) byte { return byte(op) })
}

// Extended returns the SAM extended form where matches are written '='.
func (c *CIGAR) Extended() string {
	return c.format(func(op Op) byte {
		if op == Match {
			return '='
		}

		return byte(op)
	})
}

// SAM returns the classic SAM form where matches and mismatches merge into 'M'.
func (c *CIGAR) SAM() string {
	var b strings.Builder
	pending := 0
	flush := func() {
		if pending > 0 {
			b.WriteString(strconv.Itoa(pending))
			b.WriteByte('M')
			pending = 0
		}
	}
	for _, r := range c.runs {
		if r.Op == Match || r.Op == Mismatch {
			pending += r.Len
			continue
		}
		flush()
		b.WriteString(strconv.Itoa(r.Len))
		b.WriteByte(byte(r.Op))
	}
	flush()

	return b.String()
}

func (c *CIGAR) format(code func(Op) byte) string {
	var b strings.Builder
	for _, r := range c.runs {
		b.WriteString(strconv.Itoa(r.Len))
		b.WriteByte(code(r.Op))
	}

	return b.String()
}

// Parse reads "3M1X2I" text. '=' is accepted as Match; a bare operation
// without a count means a count of one.
func Parse(s string) (*CIGAR, error) {
	c := New(len(s) / 2)
	n, digits := 0, 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			n = n*10 + int(ch-'0')
			digits++
			if digits > 9 {
				return nil, fmt.Errorf("%w: run length too long at %d", ErrBadCIGAR, i)
			}
			continue
		}
		op := Op(ch)
		if ch == '=' {
			op = Match
		}
		if !op.Valid() {
			return nil, fmt.Errorf("%w: unknown operation %q at %d", ErrBadCIGAR, ch, i)
		}
		if digits == 0 {
			n = 1
		}
		if n == 0 {
			return nil, fmt.Errorf("%w: zero-length run at %d", ErrBadCIGAR, i)
		}
		c.Append(op, n)
		n, digits = 0, 0
	}
	if digits > 0 {
		return nil, fmt.Errorf("%w: trailing count without operation", ErrBadCIGAR)
	}

	return c, nil
}
