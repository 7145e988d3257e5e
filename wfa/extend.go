// SPDX-License-Identifier: MIT

package wfa

import (
	"encoding/binary"
	"math/bits"

	"github.com/katalvlaran/wavealign/wavefront"
)

// extend advances every reached diagonal of m along its run of matches.
// Only offsets change; no diagonal is created or removed.
func extend(m *wavefront.Wavefront, a, b []byte) {
	if m == nil {
		return
	}
	lo := m.Lo()
	offsets := m.Offsets()
	var (
		i, o int
	)
	for i, o = range offsets {
		if o < 0 {
			continue
		}
		offsets[i] = o + matchRun(a, b, o, o+lo+i)
	}
}

// matchRun counts equal symbols of a[i:] and b[j:] from the start.
// Eight bytes are compared per step: the first differing byte is the number
// of leading zero bits of the XOR divided by 8.
func matchRun(a, b []byte, i, j int) int {
	n := 0
	for i+8 <= len(a) && j+8 <= len(b) {
		x := binary.BigEndian.Uint64(a[i:]) ^ binary.BigEndian.Uint64(b[j:])
		if x != 0 {
			return n + bits.LeadingZeros64(x)>>3
		}
		n += 8
		i += 8
		j += 8
	}
	for i < len(a) && j < len(b) && a[i] == b[j] {
		n++
		i++
		j++
	}

	return n
}
