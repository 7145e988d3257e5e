// SPDX-License-Identifier: MIT

// Package gotoh computes optimal end-to-end alignments of two byte
// sequences with the classic three-matrix dynamic programme of Gotoh.
//
// 🚀 What is it for?
//
//	It fills the whole (n+1)x(m+1) grid, so its cost does not depend on how
//	similar the inputs are. That makes it a slow but simple reference:
//	  • cross-checking the wavefront aligner (package wfa)
//	  • aligning short, very divergent sequences
//
// ✨ Key features:
//   - same penalty model as package wfa (penalty.Penalties, both gap conventions)
//   - full-matrix mode: score and CIGAR, O(N·M) memory
//   - two-rows mode: score only, O(M) memory (choose via MemoryMode)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/wavealign/gotoh"
//
//	opts := gotoh.DefaultOptions()
//	opts.MemoryMode = gotoh.TwoRows
//	opts.ReturnPath = false
//
//	score, _, err := gotoh.Align(a, b, penalty.Default(), opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package gotoh
