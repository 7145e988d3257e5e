// SPDX-License-Identifier: MIT

package wfa

import (
	"fmt"

	"github.com/katalvlaran/wavealign/penalty"
	"github.com/katalvlaran/wavealign/wavefront"
)

// Aligner aligns pairs of sequences under one penalty model and one set of
// options. It reuses its wavefront storage between calls and is therefore
// not safe for concurrent use; create one Aligner per goroutine.
type Aligner struct {
	p    penalty.Penalties
	opts Options

	// transition costs
	x, open, ext int
	linear       bool

	store wavefront.Store

	// per-call state
	a, b       []byte
	lenA, lenB int
	score      int
	endK       int
	endOffset  int
}

// New validates p and opts and returns a ready Aligner.
//
// Errors, all returned before any wavefront is allocated:
//   - ErrInvalidPenalty, ErrDegenerateModel from p.Validate.
//   - ErrBadOption for invalid option values.
//   - ErrUnsupportedHeuristic for any heuristic but HeuristicNone.
func New(p penalty.Penalties, opts ...Option) (*Aligner, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Heuristic != HeuristicNone {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHeuristic, o.Heuristic)
	}

	al := &Aligner{
		p:      p,
		opts:   o,
		x:      p.MismatchCost(),
		open:   p.OpenCost(),
		ext:    p.ExtendCost(),
		linear: p.OpenCost() == p.ExtendCost(),
	}
	if o.Mode == ScoreOnly {
		al.store = wavefront.NewWindow(p.MaxStep() + 1)
	} else {
		al.store = wavefront.NewHistory()
	}

	return al, nil
}

// Align is a one-shot helper: New(p, opts...) followed by Align(a, b).
func Align(a, b []byte, p penalty.Penalties, opts ...Option) (Result, error) {
	al, err := New(p, opts...)
	if err != nil {
		return Result{}, err
	}

	return al.Align(a, b)
}

// Penalties returns the model the aligner was built with.
func (al *Aligner) Penalties() penalty.Penalties { return al.p }

// Options returns a copy of the effective options.
func (al *Aligner) Options() Options { return al.opts }

// Wavefronts exposes the levels of the last Align call for inspection
// (see wavefront.Dump). The store is reused by the next call.
func (al *Aligner) Wavefronts() wavefront.Store { return al.store }
