// Package chp simulates stabilizer quantum circuits with the
// Aaronson–Gottesman CHP binary tableau — Clifford gates and projective
// measurement in polynomial time and space.
//
// 🚀 What is chp?
//
//	A small, deterministic-by-default library that brings together:
//		• tableau/ — the CHP stabilizer tableau: H, Phase, CNOT, Measure
//		  and the rowsum phase-tracking core, O(n²) per operation
//		• circuit/ — a closed Clifford gate set and an append-only circuit
//		  with independent-trial sampling
//		• chpio/   — a line-oriented circuit text format and YAML tableau
//		  snapshots for interchange
//		• binmat/  — the boolean (GF(2)) matrix underneath it all
//		• cmd/chp  — a demonstration CLI: show, run, state
//
// ✨ Why choose chp?
//
//   - Polynomial cost — n-qubit Clifford circuits without 2ⁿ amplitudes
//   - Reproducible — every random measurement draws from an injected,
//     seedable source; no hidden global randomness
//   - Minimal API — three gate variants, four tableau mutations, one
//     sampling call
//
// Quick start:
//
//	c, _ := circuit.New(2, tableau.WithSeed(7))
//	c.Append(
//	    circuit.Hadamard{Target: 0},
//	    circuit.CNOT{Control: 0, Target: 1},
//	    circuit.Measure{Target: 0},
//	    circuit.Measure{Target: 1},
//	)
//	bits, _ := c.Sample() // bits[0] == bits[1], always
//
// Non-Clifford gates, state-vector amplitudes and noise channels are out
// of scope. See examples/ for runnable demos.
//
//	go get github.com/kvantor/chp
package chp
