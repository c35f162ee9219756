// Package tsp_test — benchmarks for the exact solvers.
//
// Policy:
//   - Deterministic instances (fixed seeds), pre-built outside the timer.
//   - Sizes chosen to finish comfortably on CI while exercising the
//     full subset table (the n=15 case touches 2¹⁵·15 states).
package tsp_test

import (
	"testing"

	"github.com/tourlab/exactour/matrix"
	"github.com/tourlab/exactour/tsp"
)

// benchInstance builds a deterministic random instance outside the timer.
func benchInstance(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := tsp.Random(n, 1000, tsp.NewRNG(2024))
	if err != nil {
		b.Fatalf("Random(%d) failed: %v", n, err)
	}

	return m
}

func benchmarkExact(b *testing.B, n int) {
	var m = benchInstance(b, n)

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		if _, err := tsp.Exact(m); err != nil {
			b.Fatalf("Exact failed: %v", err)
		}
	}
}

func BenchmarkExact_n10(b *testing.B) { benchmarkExact(b, 10) }
func BenchmarkExact_n13(b *testing.B) { benchmarkExact(b, 13) }
func BenchmarkExact_n15(b *testing.B) { benchmarkExact(b, 15) }

func BenchmarkBrute_n9(b *testing.B) {
	var m = benchInstance(b, 9)

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		if _, err := tsp.Brute(m); err != nil {
			b.Fatalf("Brute failed: %v", err)
		}
	}
}

func BenchmarkTourCost_n15(b *testing.B) {
	var m = benchInstance(b, 15)
	res, err := tsp.Exact(m)
	if err != nil {
		b.Fatalf("Exact failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		if _, err = tsp.TourCost(m, res.Tour); err != nil {
			b.Fatalf("TourCost failed: %v", err)
		}
	}
}
