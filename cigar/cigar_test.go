// SPDX-License-Identifier: MIT

package cigar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavealign/cigar"
	"github.com/katalvlaran/wavealign/penalty"
)

// TestAppend_MergesRuns checks run merging and the no-op on n <= 0.
func TestAppend_MergesRuns(t *testing.T) {
	c := cigar.New(0)
	c.Append(cigar.Match, 2)
	c.Append(cigar.Match, 1)
	c.Append(cigar.Mismatch, 1)
	c.Append(cigar.Insertion, 0)
	c.Append(cigar.Insertion, 2)
	c.Append(cigar.Insertion, 1)

	assert.Equal(t, []cigar.Run{{cigar.Match, 3}, {cigar.Mismatch, 1}, {cigar.Insertion, 3}}, c.Runs())
	assert.Equal(t, 7, c.Len())
	assert.Equal(t, "3M1X3I", c.String())
}

// TestReverse reverses run order.
func TestReverse(t *testing.T) {
	c := cigar.FromRuns(cigar.Run{cigar.Deletion, 1}, cigar.Run{cigar.Match, 4}, cigar.Run{cigar.Insertion, 2})
	c.Reverse()
	assert.Equal(t, "2I4M1D", c.String())

	empty := cigar.New(0)
	empty.Reverse()
	assert.Equal(t, "", empty.String())
}

// TestFormats renders the three textual forms.
func TestFormats(t *testing.T) {
	c := cigar.FromRuns(
		cigar.Run{cigar.Match, 1},
		cigar.Run{cigar.Mismatch, 1},
		cigar.Run{cigar.Match, 2},
		cigar.Run{cigar.Deletion, 1},
		cigar.Run{cigar.Match, 1},
	)
	assert.Equal(t, "1M1X2M1D1M", c.String())
	assert.Equal(t, "1=1X2=1D1=", c.Extended())
	assert.Equal(t, "4M1D1M", c.SAM())
}

// TestParse covers accepted and rejected inputs.
func TestParse(t *testing.T) {
	c, err := cigar.Parse("3M1X2I")
	require.NoError(t, err)
	assert.Equal(t, "3M1X2I", c.String())

	c, err = cigar.Parse("2=X1D")
	require.NoError(t, err)
	assert.Equal(t, "2M1X1D", c.String())

	c, err = cigar.Parse("")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	for _, bad := range []string{"3Q", "12", "0M", "1234567890M"} {
		_, err = cigar.Parse(bad)
		assert.ErrorIs(t, err, cigar.ErrBadCIGAR, bad)
	}
}

// TestCountsAndLengths tallies operations and consumed lengths.
func TestCountsAndLengths(t *testing.T) {
	c, err := cigar.Parse("3M1X2I1M4D")
	require.NoError(t, err)

	assert.Equal(t, cigar.Counts{Matches: 4, Mismatches: 1, Insertions: 2, Deletions: 4, GapRuns: 2}, c.Counts())
	assert.Equal(t, 9, c.LenA())
	assert.Equal(t, 7, c.LenB())
}

// TestScore prices scripts under both gap conventions.
func TestScore(t *testing.T) {
	c, err := cigar.Parse("3M1X2I1M4D")
	require.NoError(t, err)

	p := penalty.Affine(4, 6, 2)
	assert.Equal(t, 4+(6+2*2)+(6+4*2), c.Score(p))

	p.Convention = penalty.GapOpenFirst
	assert.Equal(t, 4+(6+1*2)+(6+3*2), c.Score(p))

	assert.Equal(t, 0, cigar.New(0).Score(p))
}

// TestVerify checks replay against the sequences.
func TestVerify(t *testing.T) {
	a, b := []byte("GATTACA"), []byte("GCATGCU")

	good, err := cigar.Parse("1M1I2M3X1D")
	require.NoError(t, err)
	require.NoError(t, good.Verify(a, b))

	cases := map[string]string{
		"match on different symbols": "1M1I2M1M2X1D",
		"mismatch on equal symbols":  "1X1I2M3X1D",
		"A not consumed":             "1M1I2M3X",
		"B not consumed":             "1M1I2M2X2D",
		"overrun":                    "1M1I2M3X1D1I",
	}
	for name, text := range cases {
		c, err := cigar.Parse(text)
		require.NoError(t, err, name)
		assert.ErrorIs(t, c.Verify(a, b), cigar.ErrAlignmentMismatch, name)
	}
}

// TestApply rebuilds B and detects overruns.
func TestApply(t *testing.T) {
	a, b := []byte("GATTACA"), []byte("GCATGCU")
	c, err := cigar.Parse("1M1I2M3X1D")
	require.NoError(t, err)

	got, err := c.Apply(a, b)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	short, err := cigar.Parse("1M1X")
	require.NoError(t, err)
	_, err = short.Apply(a, b)
	assert.ErrorIs(t, err, cigar.ErrAlignmentMismatch)

	got, err = cigar.New(0).Apply(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestPretty renders the three-line view.
func TestPretty(t *testing.T) {
	c, err := cigar.Parse("2M1I1X1D")
	require.NoError(t, err)

	want := "AC-GT\n|| * \nACTA-"
	assert.Equal(t, want, c.Pretty([]byte("ACGT"), []byte("ACTA")))
}
