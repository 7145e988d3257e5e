// SPDX-License-Identifier: MIT

// Package penalty defines the cost model used by the wavefront aligner:
// mismatch, gap-open and gap-extend penalties (match is always 0), their
// validation, and the metric they describe (edit, gap-linear, gap-affine).
//
// Errors:
//
//	ErrInvalidPenalty  - a cost is missing, negative, too large, or the convention is unknown.
//	ErrDegenerateModel - the model has a zero-cost step, so scores cannot grow.
package penalty

import "errors"

// Sentinel errors for penalty validation.
var (
	// ErrInvalidPenalty indicates a missing, negative or out-of-range cost,
	// or a gap open transition cheaper than a gap extension.
	ErrInvalidPenalty = errors.New("penalty: invalid penalty")

	// ErrDegenerateModel indicates a model in which some transition is free
	// (e.g. all costs zero). The wavefront driver cannot terminate on it.
	ErrDegenerateModel = errors.New("penalty: degenerate model")
)

// MaxCost bounds every single cost. With costs below 2^24 and sequence
// lengths below 2^31 the worst-case score stays far below math.MaxInt64.
const MaxCost = 1 << 24

// GapConvention selects how GapOpen and GapExtend combine into the cost
// of a gap of length L.
//
//   - GapOpenPlusExtend - GapOpen + L·GapExtend (WFA convention, default).
//   - GapOpenFirst      - GapOpen + (L-1)·GapExtend (BLAST-style: the first
//     gap symbol costs GapOpen, every further symbol GapExtend).
type GapConvention int

const (
	// GapOpenPlusExtend charges GapOpen once plus GapExtend per gap symbol.
	GapOpenPlusExtend GapConvention = iota

	// GapOpenFirst charges GapOpen for the first gap symbol and GapExtend for the rest.
	GapOpenFirst
)

// String returns the profile name of the convention.
func (c GapConvention) String() string {
	switch c {
	case GapOpenPlusExtend:
		return "open-plus-extend"
	case GapOpenFirst:
		return "open-first"
	default:
		return "unknown"
	}
}

// Metric classifies a validated penalty model.
type Metric int

const (
	// MetricEdit is the Levenshtein distance: every edit costs 1.
	MetricEdit Metric = iota

	// MetricGapLinear charges the same cost for opening and extending a gap.
	MetricGapLinear

	// MetricGapAffine charges more for opening a gap than for extending it.
	MetricGapAffine
)

// String returns a short human-readable name.
func (m Metric) String() string {
	switch m {
	case MetricEdit:
		return "Edit"
	case MetricGapLinear:
		return "GapLinear"
	case MetricGapAffine:
		return "GapAffine"
	default:
		return "Unknown"
	}
}

// Penalties holds the cost model. Match is implicitly 0.
//
// Fields:
//   - Mismatch   - cost of aligning two different symbols (> 0).
//   - GapOpen    - cost of opening a gap (>= 0), interpreted per Convention.
//   - GapExtend  - cost per gap symbol (> 0).
//   - Convention - how GapOpen and GapExtend combine.
//
// Example:
//
//	p := penalty.Affine(4, 6, 2)
//	if err := p.Validate(); err != nil {
//	  // handle ErrInvalidPenalty or ErrDegenerateModel
//	}
type Penalties struct {
	Mismatch   int
	GapOpen    int
	GapExtend  int
	Convention GapConvention
}
