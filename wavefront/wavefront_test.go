// SPDX-License-Identifier: MIT

package wavefront_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavealign/wavefront"
)

// TestWavefront_GetSet checks index shifting over negative diagonals.
func TestWavefront_GetSet(t *testing.T) {
	w := wavefront.New(-3, 2)
	assert.Equal(t, -3, w.Lo())
	assert.Equal(t, 2, w.Hi())
	assert.Len(t, w.Offsets(), 6)
	assert.False(t, w.Reached())

	w.Set(-3, 7)
	w.Set(2, 1)
	assert.Equal(t, 7, w.Get(-3))
	assert.Equal(t, 1, w.Get(2))
	assert.Equal(t, wavefront.OffsetNull, w.Get(0))
	assert.Equal(t, wavefront.OffsetNull, w.Get(3), "outside range reads as null")
	assert.True(t, w.Reached())

	var nilWF *wavefront.Wavefront
	assert.Equal(t, wavefront.OffsetNull, nilWF.Get(0))
	assert.False(t, nilWF.Reached())
}

// TestLevel_Get selects components.
func TestLevel_Get(t *testing.T) {
	m := wavefront.New(0, 0)
	l := wavefront.Level{M: m}
	assert.Same(t, m, l.Get(wavefront.M))
	assert.Nil(t, l.Get(wavefront.I))
	assert.Nil(t, l.Get(wavefront.D))
	assert.False(t, l.Empty())
	assert.True(t, wavefront.Level{}.Empty())
	assert.Equal(t, "D", wavefront.D.String())
}

// TestHistory_RetainsAll keeps every score and fills gaps with empty levels.
func TestHistory_RetainsAll(t *testing.T) {
	h := wavefront.NewHistory()
	assert.Equal(t, -1, h.Last())

	m0 := h.Alloc(0, 0)
	m0.Set(0, 4)
	h.Put(0, wavefront.Level{M: m0})
	h.Put(3, wavefront.Level{M: h.Alloc(-1, 1)})

	l, ok := h.Get(0)
	require.True(t, ok)
	assert.Equal(t, 4, l.M.Get(0))

	l, ok = h.Get(2)
	require.True(t, ok)
	assert.True(t, l.Empty())

	_, ok = h.Get(4)
	assert.False(t, ok)
	assert.Equal(t, 3, h.Last())

	h.Reset()
	assert.Equal(t, -1, h.Last())
	_, ok = h.Get(0)
	assert.False(t, ok)
}

// TestWindow_Evicts keeps only the last scope levels and recycles arrays.
func TestWindow_Evicts(t *testing.T) {
	w := wavefront.NewWindow(3)
	assert.Equal(t, 3, w.Scope())

	for s := 0; s < 5; s++ {
		m := w.Alloc(-s, s)
		m.Set(0, s)
		w.Put(s, wavefront.Level{M: m})
	}
	assert.Equal(t, 4, w.Last())

	for s := 0; s < 2; s++ {
		_, ok := w.Get(s)
		assert.False(t, ok, "score %d must be evicted", s)
	}
	for s := 2; s < 5; s++ {
		l, ok := w.Get(s)
		require.True(t, ok, "score %d must be retained", s)
		assert.Equal(t, s, l.M.Get(0))
	}

	// An evicted array comes back from the free list with every cell null.
	again := w.Alloc(-1, 1)
	assert.False(t, again.Reached())
	for s := 2; s < 5; s++ {
		l, _ := w.Get(s)
		assert.NotSame(t, l.M, again)
	}

	w.Reset()
	assert.Equal(t, -1, w.Last())
	_, ok := w.Get(4)
	assert.False(t, ok)
}

// TestWindow_Independent checks that two windows share no state.
func TestWindow_Independent(t *testing.T) {
	a, b := wavefront.NewWindow(2), wavefront.NewWindow(2)
	ma := a.Alloc(0, 0)
	ma.Set(0, 9)
	a.Put(0, wavefront.Level{M: ma})

	_, ok := b.Get(0)
	assert.False(t, ok)
	mb := b.Alloc(0, 0)
	assert.NotSame(t, ma, mb)
	assert.Equal(t, wavefront.OffsetNull, mb.Get(0))
}

// TestDump renders a tab-aligned table and skips absent levels.
func TestDump(t *testing.T) {
	h := wavefront.NewHistory()
	m := h.Alloc(0, 0)
	m.Set(0, 3)
	h.Put(0, wavefront.Level{M: m})
	h.Put(1, wavefront.Level{})
	d := h.Alloc(-1, 1)
	d.Set(-1, 2)
	h.Put(2, wavefront.Level{D: d})

	var buf bytes.Buffer
	require.NoError(t, wavefront.Dump(&buf, h, 0, 5))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"SCORE", "COMP", "LO", "HI", "OFFSETS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "M", "0", "0", "3"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "D", "-1", "1", "2", "·", "·"}, strings.Fields(lines[2]))
}

// TestWavefront_Trim narrows the range to reached diagonals.
func TestWavefront_Trim(t *testing.T) {
	w := wavefront.New(-4, 4)
	assert.False(t, w.Trim())
	assert.Equal(t, -4, w.Lo())

	w.Set(-1, 3)
	w.Set(2, 5)
	require.True(t, w.Trim())
	assert.Equal(t, -1, w.Lo())
	assert.Equal(t, 2, w.Hi())
	assert.Equal(t, []int{3, wavefront.OffsetNull, wavefront.OffsetNull, 5}, w.Offsets())
	assert.Equal(t, 5, w.Get(2))
}
