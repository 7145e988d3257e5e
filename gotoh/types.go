// SPDX-License-Identifier: MIT

package gotoh

import "errors"

// Sentinel errors for Gotoh alignment.
var (
	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("gotoh: ReturnPath requires MemoryMode=FullMatrix")

	// ErrBadMemoryMode indicates an unknown MemoryMode value.
	ErrBadMemoryMode = errors.New("gotoh: unknown memory mode")
)

// MemoryMode controls how Align stores its DP matrices.
//
//   - FullMatrix - keep the three (n+1)x(m+1) matrices.
//     Allows score + full traceback. Memory: O(n·m).
//
//   - TwoRows - keep only the previous and current rows.
//     Memory: O(m), but the CIGAR cannot be recovered.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support traceback.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep two rows, score only.
	TwoRows
)

// Options configures Align.
//
// Fields:
//   - ReturnPath - if true, Align also returns the CIGAR.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode - FullMatrix or TwoRows storage.
type Options struct {
	ReturnPath bool
	MemoryMode MemoryMode
}

// DefaultOptions returns full-matrix mode with traceback.
func DefaultOptions() *Options {
	return &Options{
		ReturnPath: true,
		MemoryMode: FullMatrix,
	}
}
