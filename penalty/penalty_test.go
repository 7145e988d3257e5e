// SPDX-License-Identifier: MIT

package penalty_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavealign/penalty"
)

// TestValidate_Errors covers every rejection path of Validate.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		p    penalty.Penalties
		want error
	}{
		{"negative mismatch", penalty.Affine(-1, 6, 2), penalty.ErrInvalidPenalty},
		{"negative open", penalty.Affine(4, -6, 2), penalty.ErrInvalidPenalty},
		{"negative extend", penalty.Affine(4, 6, -2), penalty.ErrInvalidPenalty},
		{"too large", penalty.Affine(penalty.MaxCost+1, 6, 2), penalty.ErrInvalidPenalty},
		{"unknown convention", penalty.Penalties{Mismatch: 4, GapOpen: 6, GapExtend: 2, Convention: 7}, penalty.ErrInvalidPenalty},
		{"all zero", penalty.Penalties{}, penalty.ErrDegenerateModel},
		{"free mismatch", penalty.Affine(0, 6, 2), penalty.ErrDegenerateModel},
		{"free extend", penalty.Affine(4, 6, 0), penalty.ErrDegenerateModel},
		{"free first gap", penalty.Penalties{Mismatch: 4, GapOpen: 0, GapExtend: 2, Convention: penalty.GapOpenFirst}, penalty.ErrDegenerateModel},
		{"open below extend", penalty.Penalties{Mismatch: 5, GapOpen: 1, GapExtend: 4, Convention: penalty.GapOpenFirst}, penalty.ErrInvalidPenalty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.p.Validate(), tc.want)
		})
	}
}

// TestValidate_Accepts checks the stock constructors.
func TestValidate_Accepts(t *testing.T) {
	for _, p := range []penalty.Penalties{penalty.Default(), penalty.Edit(), penalty.Linear(3, 2), penalty.Affine(1, 0, 1),
		{Mismatch: 5, GapOpen: 4, GapExtend: 4, Convention: penalty.GapOpenFirst}} {
		require.NoError(t, p.Validate(), p.String())
	}
}

// TestTransitionCosts checks both gap conventions.
func TestTransitionCosts(t *testing.T) {
	p := penalty.Affine(4, 6, 2)
	assert.Equal(t, 4, p.MismatchCost())
	assert.Equal(t, 8, p.OpenCost())
	assert.Equal(t, 2, p.ExtendCost())
	assert.Equal(t, 6+4*2, p.GapCost(4))
	assert.Equal(t, 0, p.GapCost(0))

	p.Convention = penalty.GapOpenFirst
	assert.Equal(t, 6, p.OpenCost())
	assert.Equal(t, 6+3*2, p.GapCost(4), "first symbol costs the open penalty")
	assert.Equal(t, 6, p.MaxStep())
}

// TestMetric classifies the three families.
func TestMetric(t *testing.T) {
	assert.Equal(t, penalty.MetricEdit, penalty.Edit().Metric())
	assert.Equal(t, penalty.MetricGapLinear, penalty.Linear(3, 2).Metric())
	assert.Equal(t, penalty.MetricGapAffine, penalty.Default().Metric())

	// Under open-first, open == extend means every gap symbol costs the same.
	lin := penalty.Penalties{Mismatch: 3, GapOpen: 2, GapExtend: 2, Convention: penalty.GapOpenFirst}
	assert.Equal(t, penalty.MetricGapLinear, lin.Metric())
}

// TestScoreBound checks the worst-case bound and its overflow guard.
func TestScoreBound(t *testing.T) {
	p := penalty.Default()
	bound, ok := p.ScoreBound(7, 7)
	require.True(t, ok)
	assert.Equal(t, 2*(6+7*2), bound)

	bound, ok = p.ScoreBound(0, 4)
	require.True(t, ok)
	assert.Equal(t, 6+4*2, bound)

	_, ok = penalty.Affine(4, 6, penalty.MaxCost).ScoreBound(math.MaxInt/4, 1)
	assert.False(t, ok, "bound must report overflow")

	// Each length alone fits, the open costs push the sum over.
	half := math.MaxInt / 2
	_, ok = penalty.Affine(4, 6, 1).ScoreBound(half, half)
	assert.False(t, ok, "open costs must be part of the guard")

	_, ok = penalty.Default().ScoreBound(math.MaxInt, 1)
	assert.False(t, ok, "length sum overflows")
}

// TestString renders the display form.
func TestString(t *testing.T) {
	assert.Equal(t, "(GapAffine,4,6,2)", penalty.Default().String())
	assert.Equal(t, "(Edit,1,0,1)", penalty.Edit().String())
	assert.Equal(t, "open-first", penalty.GapOpenFirst.String())
}
