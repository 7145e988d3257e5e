// SPDX-License-Identifier: MIT

// Package cigar holds edit scripts: ordered, run-length encoded sequences of
// Match, Mismatch, Insertion and Deletion operations that transform a
// sequence A into a sequence B.
//
// Conventions:
//   - Match ('M') and Mismatch ('X') consume one symbol of A and one of B.
//   - Insertion ('I') consumes one symbol of B only.
//   - Deletion ('D') consumes one symbol of A only.
//
// Errors:
//
//	ErrBadCIGAR          - malformed CIGAR text or unknown operation.
//	ErrAlignmentMismatch - the script does not explain the given sequences.
package cigar

import "errors"

// Sentinel errors for edit-script handling.
var (
	// ErrBadCIGAR indicates malformed CIGAR text or an unknown operation.
	ErrBadCIGAR = errors.New("cigar: malformed CIGAR")

	// ErrAlignmentMismatch indicates that replaying the script against the
	// sequences failed (wrong symbol or wrong length consumed).
	ErrAlignmentMismatch = errors.New("cigar: alignment does not match sequences")
)

// Op is a single edit operation.
type Op byte

const (
	// Match aligns two equal symbols.
	Match Op = 'M'

	// Mismatch aligns two different symbols.
	Mismatch Op = 'X'

	// Insertion consumes a symbol of B that has no counterpart in A.
	Insertion Op = 'I'

	// Deletion consumes a symbol of A that has no counterpart in B.
	Deletion Op = 'D'
)

// Valid reports whether op is one of the four edit operations.
func (op Op) Valid() bool {
	switch op {
	case Match, Mismatch, Insertion, Deletion:
		return true
	default:
		return false
	}
}

// ConsumesA reports whether op advances in sequence A.
func (op Op) ConsumesA() bool { return op == Match || op == Mismatch || op == Deletion }

// ConsumesB reports whether op advances in sequence B.
func (op Op) ConsumesB() bool { return op == Match || op == Mismatch || op == Insertion }

// String returns the one-letter code.
func (op Op) String() string { return string(rune(op)) }

// Run is a maximal block of Len identical operations.
type Run struct {
	Op  Op
	Len int
}

// Counts summarizes a script.
type Counts struct {
	Matches    int
	Mismatches int
	Insertions int
	Deletions  int
	GapRuns    int // number of I or D runs
}

// Scorer prices a script. penalty.Penalties satisfies it.
type Scorer interface {
	MismatchCost() int
	GapCost(length int) int
}
