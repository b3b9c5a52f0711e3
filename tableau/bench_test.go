package tableau_test

import (
	"testing"

	"github.com/kvantor/chp/tableau"
)

// benchmarkGates applies one H, Phase and CNOT per iteration on an
// n-qubit tableau. It resets the timer after setup and fails on
// unexpected errors.
func benchmarkGates(b *testing.B, n int) {
	tab, err := tableau.Zero(n)
	if err != nil {
		b.Fatalf("Zero failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = tab.H(0); err != nil {
			b.Fatalf("H failed: %v", err)
		}
		if err = tab.Phase(n / 2); err != nil {
			b.Fatalf("Phase failed: %v", err)
		}
		if err = tab.CNOT(0, n-1); err != nil {
			b.Fatalf("CNOT failed: %v", err)
		}
	}
}

// benchmarkMeasure measures alternating qubits of a GHZ-like state built
// once per iteration; this exercises both Measure branches and rowsum.
func benchmarkMeasure(b *testing.B, n int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tab, err := tableau.Zero(n, tableau.WithSeed(int64(i+1)))
		if err != nil {
			b.Fatalf("Zero failed: %v", err)
		}
		if err = tab.H(0); err != nil {
			b.Fatalf("H failed: %v", err)
		}
		for q := 1; q < n; q++ {
			if err = tab.CNOT(0, q); err != nil {
				b.Fatalf("CNOT failed: %v", err)
			}
		}
		b.StartTimer()
		for q := 0; q < n; q++ {
			if _, err = tab.Measure(q); err != nil {
				b.Fatalf("Measure failed: %v", err)
			}
		}
	}
}

// BenchmarkGates_N16 benchmarks the O(n) gate operations at n=16.
func BenchmarkGates_N16(b *testing.B) { benchmarkGates(b, 16) }

// BenchmarkGates_N128 benchmarks the O(n) gate operations at n=128.
func BenchmarkGates_N128(b *testing.B) { benchmarkGates(b, 128) }

// BenchmarkMeasure_N16 benchmarks measurement of a 16-qubit GHZ state.
func BenchmarkMeasure_N16(b *testing.B) { benchmarkMeasure(b, 16) }

// BenchmarkMeasure_N64 benchmarks measurement of a 64-qubit GHZ state.
func BenchmarkMeasure_N64(b *testing.B) { benchmarkMeasure(b, 64) }
