// Package wavealign is a pure-Go toolkit for exact pairwise sequence
// alignment with the wavefront algorithm (WFA).
//
// 🚀 What is wavealign?
//
//	A small library that aligns two byte sequences (DNA, protein, text)
//	under gap-affine, gap-linear or edit costs. Its cost grows with the
//	alignment score rather than with the product of the lengths, so similar
//	sequences align quickly:
//		• Penalty models: mismatch / gap-open / gap-extend, two gap conventions
//		• Wavefront aligner: score-only or full alignment, free ends, score ceiling
//		• Edit scripts: CIGAR text, SAM forms, replay, verification, rescoring
//		• Reference aligner: Gotoh dynamic programming (full matrix or two rows)
//		• Profiles: penalties and options in YAML
//
// ✨ Why choose wavealign?
//
//   - Exact – same optimum as the O(N·M) dynamic programme
//   - Pure Go – no cgo
//   - Predictable – errors for bad models, no panics on user input
//   - Observable – per-score hook (WithOnWavefront) and wavefront dumps
//
// Under the hood, everything is organized under these subpackages:
//
//	penalty/   - cost model, validation, metric classification
//	cigar/     - run-length edit scripts and their encodings
//	wavefront/ - per-score offset arrays, full history and rolling window storage
//	wfa/       - extend / compute / traceback driver and options
//	gotoh/     - classic three-matrix DP, used as reference
//	profile/   - YAML alignment profiles
//	examples/  - runnable program
//
// Quick example:
//
//	GATTACA      G A T T A C A
//	GCATGCU  →   | * * | * | *   score 16 with (4, 6, 2)
//	             G C A T G C U
//
//	go get github.com/katalvlaran/wavealign
package wavealign
