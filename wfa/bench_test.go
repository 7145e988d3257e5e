// SPDX-License-Identifier: MIT

package wfa_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wavealign/penalty"
	"github.com/katalvlaran/wavealign/wfa"
)

// benchmarkAlign aligns a random sequence of length n against a copy with
// edits mutations, reusing one aligner.
func benchmarkAlign(b *testing.B, n, edits int, opts ...wfa.Option) {
	rng := rand.New(rand.NewSource(1))
	x := randomSeq(rng, n)
	y := mutate(rng, x, edits)
	al, err := wfa.New(penalty.Default(), opts...)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = al.Align(x, y); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_1k1pct benchmarks full alignment at 1% divergence.
func BenchmarkAlign_1k1pct(b *testing.B) { benchmarkAlign(b, 1000, 10) }

// BenchmarkAlign_10k1pct benchmarks full alignment on 10 kbp.
func BenchmarkAlign_10k1pct(b *testing.B) { benchmarkAlign(b, 10000, 100) }

// BenchmarkAlign_10k1pctScoreOnly benchmarks the rolling window.
func BenchmarkAlign_10k1pctScoreOnly(b *testing.B) {
	benchmarkAlign(b, 10000, 100, wfa.WithScoreOnly())
}

// BenchmarkAlign_1k5pct benchmarks a more divergent pair.
func BenchmarkAlign_1k5pct(b *testing.B) { benchmarkAlign(b, 1000, 50) }
