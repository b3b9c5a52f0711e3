// Package circuit builds and samples Clifford circuits on top of the
// tableau package.
//
// What:
//
//   - Gate is a closed variant set: Hadamard(target), CNOT(control, target)
//     and Measure(target). Each variant knows how to apply itself to a
//     *tableau.Tableau; only Measure produces an outcome.
//   - Circuit exclusively owns one Tableau and an ordered, append-only
//     gate sequence, and replays the sequence to sample outcome bitstrings.
//
// Why:
//
//   - Separates circuit description (cheap, reusable, printable) from
//     state evolution (the tableau), mirroring how stabilizer-circuit
//     tooling is normally layered.
//
// Sampling policy:
//
//   - Sample resets the owned tableau to the zero state before replaying,
//     so repeated Sample calls are independent, identically-prepared
//     trials. The random source is NOT reset: successive calls draw fresh
//     bits from one stream, which is what makes the trials independent
//     under a fixed seed.
//
// Validation:
//
//   - Append never validates qubit indices; range violations surface when
//     the offending gate is applied during Sample, wrapped around the
//     tableau sentinel errors (errors.Is works through the wrapping).
//
// Concurrency:
//
//   - A Circuit, like its Tableau, belongs to one goroutine at a time.
//     Run parallel sampling with one Circuit per goroutine, each with its
//     own seed.
package circuit
