// SPDX-License-Identifier: MIT

package penalty

import (
	"fmt"
	"math"
)

// Default returns the gap-affine penalties published with the WFA paper
// (mismatch=4, gap-open=6, gap-extend=2).
func Default() Penalties {
	return Affine(4, 6, 2)
}

// Affine returns a gap-affine model under the GapOpenPlusExtend convention.
func Affine(mismatch, gapOpen, gapExtend int) Penalties {
	return Penalties{
		Mismatch:   mismatch,
		GapOpen:    gapOpen,
		GapExtend:  gapExtend,
		Convention: GapOpenPlusExtend,
	}
}

// Linear returns a gap-linear model: every gap symbol costs indel.
func Linear(mismatch, indel int) Penalties {
	return Affine(mismatch, 0, indel)
}

// Edit returns the unit-cost (Levenshtein) model.
func Edit() Penalties {
	return Linear(1, 1)
}

// Validate checks the model before any alignment starts.
//
// Order of checks:
//  1. Known Convention, else ErrInvalidPenalty.
//  2. Every cost in [0, MaxCost], else ErrInvalidPenalty.
//  3. All costs zero, or any zero-cost transition, yields ErrDegenerateModel.
//  4. A gap open transition cheaper than an extension, ErrInvalidPenalty:
//     back-to-back gaps would undercut one long gap.
func (p Penalties) Validate() error {
	if p.Convention != GapOpenPlusExtend && p.Convention != GapOpenFirst {
		return fmt.Errorf("%w: unknown gap convention %d", ErrInvalidPenalty, int(p.Convention))
	}
	if err := checkCost("mismatch", p.Mismatch); err != nil {
		return err
	}
	if err := checkCost("gap-open", p.GapOpen); err != nil {
		return err
	}
	if err := checkCost("gap-extend", p.GapExtend); err != nil {
		return err
	}

	if p.Mismatch == 0 && p.GapOpen == 0 && p.GapExtend == 0 {
		return fmt.Errorf("%w: all costs are zero", ErrDegenerateModel)
	}
	if p.Mismatch == 0 {
		return fmt.Errorf("%w: mismatch must cost more than a match", ErrDegenerateModel)
	}
	if p.ExtendCost() == 0 || p.OpenCost() == 0 {
		return fmt.Errorf("%w: gap transitions must have positive cost %s", ErrDegenerateModel, p)
	}
	if p.OpenCost() < p.ExtendCost() {
		return fmt.Errorf("%w: gap open %d costs less than gap extend %d", ErrInvalidPenalty, p.OpenCost(), p.ExtendCost())
	}

	return nil
}

func checkCost(name string, v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %s cost %d is negative", ErrInvalidPenalty, name, v)
	}
	if v > MaxCost {
		return fmt.Errorf("%w: %s cost %d exceeds %d", ErrInvalidPenalty, name, v, MaxCost)
	}

	return nil
}

// MismatchCost is the score increment of a mismatch step.
func (p Penalties) MismatchCost() int { return p.Mismatch }

// OpenCost is the score increment of the transition that opens a gap,
// i.e. the cost of a gap of length one.
func (p Penalties) OpenCost() int {
	if p.Convention == GapOpenFirst {
		return p.GapOpen
	}

	return p.GapOpen + p.GapExtend
}

// ExtendCost is the score increment of each further gap symbol.
func (p Penalties) ExtendCost() int { return p.GapExtend }

// GapCost returns the cost of a single gap of the given length (0 for length <= 0).
func (p Penalties) GapCost(length int) int {
	if length <= 0 {
		return 0
	}

	return p.OpenCost() + (length-1)*p.ExtendCost()
}

// Metric classifies the model. Call on validated penalties.
func (p Penalties) Metric() Metric {
	open, ext := p.OpenCost(), p.ExtendCost()
	if open != ext {
		return MetricGapAffine
	}
	if p.Mismatch == 1 && ext == 1 {
		return MetricEdit
	}

	return MetricGapLinear
}

// MaxStep is the largest score increment of a single transition.
func (p Penalties) MaxStep() int {
	return max(p.Mismatch, p.OpenCost(), p.ExtendCost())
}

// ScoreBound returns an upper bound on the optimal end-to-end score for
// sequences of the given lengths: deleting all of A and inserting all of B.
// The boolean is false if the bound does not fit in an int.
func (p Penalties) ScoreBound(lenA, lenB int) (int, bool) {
	if lenA < 0 || lenB < 0 {
		return 0, false
	}
	// GapCost(lenA) + GapCost(lenB) <= 2·open + (lenA+lenB)·ext.
	if lenA > math.MaxInt-lenB {
		return 0, false
	}
	open, ext := p.OpenCost(), p.ExtendCost()
	if ext > 0 && lenA+lenB > (math.MaxInt-2*open)/ext {
		return 0, false
	}

	return p.GapCost(lenA) + p.GapCost(lenB), true
}

// String renders the model as "(GapAffine,x,o,e)".
func (p Penalties) String() string {
	return fmt.Sprintf("(%s,%d,%d,%d)", p.Metric(), p.Mismatch, p.GapOpen, p.GapExtend)
}
