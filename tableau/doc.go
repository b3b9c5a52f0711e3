// Package tableau implements the Aaronson–Gottesman CHP binary tableau for
// simulating stabilizer quantum states under Clifford operations.
//
// What:
//
//   - Tableau holds the (2n+1)×(2n+1) boolean matrix encoding n-qubit
//     stabilizer state: n destabilizer generator rows, n stabilizer generator
//     rows, one scratch row, with X-exponent, Z-exponent and sign columns.
//   - H, Phase and CNOT conjugate the generators in place in O(n).
//   - Measure performs a projective single-qubit measurement in O(n²),
//     using the internal rowsum Pauli-product routine.
//
// Why:
//
//   - Clifford circuits on n qubits run in polynomial time and space here,
//     versus the exponential cost of a full state-vector simulation.
//   - Error-correction codes, randomized benchmarking and entanglement
//     distribution protocols are Clifford-only and fit this model exactly.
//
// Complexity:
//
//   - H / Phase / CNOT: O(n) time, O(1) extra memory.
//   - Measure:          O(n²) time worst case, O(1) extra memory.
//   - Zero / New:       O(n²) time and memory.
//
// Randomness:
//
//   - Only Measure's random branch consumes randomness. The source is a
//     per-Tableau *rand.Rand injected at construction (WithSeed / WithRand);
//     there is no ambient global source, so runs replay exactly under a
//     fixed seed. math/rand.Rand is NOT goroutine-safe: never share one
//     Tableau, or one injected Rand, across goroutines.
//
// Errors:
//
//   - ErrBadQubits:      qubit count below 1.
//   - ErrBadShape:       construction matrix is not odd-square (2n+1)×(2n+1).
//   - ErrQubitRange:     qubit index outside [0, n).
//   - ErrSameQubit:      CNOT control equals target.
//   - ErrNotImplemented: Pauli-string conversion stub.
//
// Every operation validates before mutating: a returned error means the
// tableau was not touched.
package tableau
