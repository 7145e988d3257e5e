// SPDX-License-Identifier: MIT

package wfa

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wavealign/cigar"
	"github.com/katalvlaran/wavealign/penalty"
)

// Sentinel errors for wavefront alignment.
var (
	// ErrInvalidPenalty is returned by New for negative or oversized costs
	// and for gap opens cheaper than extensions.
	ErrInvalidPenalty = penalty.ErrInvalidPenalty

	// ErrDegenerateModel is returned by New when some transition is free,
	// so the score would not strictly increase.
	ErrDegenerateModel = penalty.ErrDegenerateModel

	// ErrInconsistentHistory is returned when traceback finds no predecessor
	// explaining a recorded offset, or the needed levels were not retained.
	ErrInconsistentHistory = errors.New("wfa: inconsistent wavefront history")

	// ErrScoreLimitExceeded is returned when the alignment needs a score
	// above the configured ceiling.
	ErrScoreLimitExceeded = errors.New("wfa: score limit exceeded")

	// ErrUnsupportedHeuristic is returned by New for any heuristic other
	// than HeuristicNone.
	ErrUnsupportedHeuristic = errors.New("wfa: unsupported heuristic")

	// ErrBadOption is returned by New when an Option received an invalid value.
	ErrBadOption = errors.New("wfa: invalid option supplied")
)

// Mode selects what Align returns.
type Mode int

const (
	// FullAlignment returns the score and the edit script. Every level is
	// kept for traceback. Memory: O(s·d).
	FullAlignment Mode = iota

	// ScoreOnly returns the score alone and keeps a rolling window of
	// levels. Memory: O(d).
	ScoreOnly
)

// String returns "alignment" or "score".
func (m Mode) String() string {
	switch m {
	case FullAlignment:
		return "alignment"
	case ScoreOnly:
		return "score"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Heuristic selects a wavefront reduction strategy. Only HeuristicNone is
// implemented; the others are recognised so that callers asking for them
// get ErrUnsupportedHeuristic instead of a silently exact run.
type Heuristic int

const (
	// HeuristicNone computes every diagonal: exact alignment.
	HeuristicNone Heuristic = iota
	// HeuristicBandedStatic limits diagonals to a fixed band.
	HeuristicBandedStatic
	// HeuristicBandedAdaptive moves a fixed-width band with the wavefront.
	HeuristicBandedAdaptive
	// HeuristicAdaptive drops diagonals lagging behind the furthest one.
	HeuristicAdaptive
	// HeuristicXDrop stops diagonals whose score falls X below the best.
	HeuristicXDrop
	// HeuristicZDrop is X-drop with a gap-length correction.
	HeuristicZDrop
)

// String returns the heuristic name.
func (h Heuristic) String() string {
	switch h {
	case HeuristicNone:
		return "none"
	case HeuristicBandedStatic:
		return "banded-static"
	case HeuristicBandedAdaptive:
		return "banded-adaptive"
	case HeuristicAdaptive:
		return "wf-adaptive"
	case HeuristicXDrop:
		return "x-drop"
	case HeuristicZDrop:
		return "z-drop"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// Span describes which sequence ends may be left unaligned at no cost.
// The zero value is end-to-end (global) alignment.
//
//	ABegin, AEnd: symbols of A that may be skipped at its start / end.
//	BBegin, BEnd: symbols of B that may be skipped at its start / end.
type Span struct {
	ABegin, AEnd int
	BBegin, BEnd int
}

// EndToEnd reports whether no end is free.
func (s Span) EndToEnd() bool {
	return s.ABegin == 0 && s.AEnd == 0 && s.BBegin == 0 && s.BEnd == 0
}

// Options configures an Aligner.
type Options struct {
	// Mode selects score-only or full alignment. Default FullAlignment.
	Mode Mode

	// Heuristic must be HeuristicNone.
	Heuristic Heuristic

	// MaxScore, if > 0, aborts alignments whose score would exceed it
	// with ErrScoreLimitExceeded. 0 means no limit.
	MaxScore int

	// Span sets the free ends; zero value is end-to-end.
	Span Span

	// OnWavefront is called once per score after the M wavefront has been
	// extended, with its diagonal range. Scores whose level reaches no cell
	// are not reported.
	OnWavefront func(score, lo, hi int)

	// internal error recorded during option parsing
	err error
}

// Option configures an Aligner via functional arguments.
// Invalid values are recorded and surfaced by New as ErrBadOption.
type Option func(*Options)

// DefaultOptions returns full alignment, no heuristic, no score limit,
// end-to-end span and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Mode:        FullAlignment,
		Heuristic:   HeuristicNone,
		MaxScore:    0,
		Span:        Span{},
		OnWavefront: func(int, int, int) {},
	}
}

// WithMode selects the alignment mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != FullAlignment && m != ScoreOnly {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrBadOption, int(m))
			return
		}
		o.Mode = m
	}
}

// WithScoreOnly is shorthand for WithMode(ScoreOnly).
func WithScoreOnly() Option { return WithMode(ScoreOnly) }

// WithHeuristic selects a heuristic; New rejects anything but HeuristicNone.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithMaxScore sets the score ceiling.
//
//	n > 0:  fail with ErrScoreLimitExceeded above n
//	n == 0: no limit
//	n < 0:  invalid option, ErrBadOption
func WithMaxScore(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxScore cannot be negative (%d)", ErrBadOption, n)
			return
		}
		o.MaxScore = n
	}
}

// WithEndToEnd requests global alignment of both sequences.
func WithEndToEnd() Option {
	return func(o *Options) { o.Span = Span{} }
}

// WithEndsFree allows up to the given number of symbols to be skipped for
// free at each end. Negative values are invalid.
func WithEndsFree(aBegin, aEnd, bBegin, bEnd int) Option {
	return func(o *Options) {
		if aBegin < 0 || aEnd < 0 || bBegin < 0 || bEnd < 0 {
			o.err = fmt.Errorf("%w: ends-free lengths cannot be negative (%d,%d,%d,%d)",
				ErrBadOption, aBegin, aEnd, bBegin, bEnd)
			return
		}
		o.Span = Span{ABegin: aBegin, AEnd: aEnd, BBegin: bBegin, BEnd: bEnd}
	}
}

// WithOnWavefront registers a per-score hook.
func WithOnWavefront(fn func(score, lo, hi int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnWavefront = fn
		}
	}
}

// Result is the outcome of one alignment.
//
//   - Score: optimal penalty (0 for identical sequences).
//   - CIGAR: edit script from A to B; nil in ScoreOnly mode.
type Result struct {
	Score int
	CIGAR *cigar.CIGAR
}
