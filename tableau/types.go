// Package tableau - sentinel errors and construction options.
package tableau

import (
	"errors"
	"math/rand"
)

// Sentinel errors for tableau operations.
var (
	// ErrBadQubits indicates a qubit count below 1.
	ErrBadQubits = errors.New("tableau: qubit count must be at least 1")

	// ErrBadShape indicates a construction matrix that is not square with
	// odd dimension (2n+1)×(2n+1) for some n ≥ 1, or is not rectangular.
	ErrBadShape = errors.New("tableau: matrix must be (2n+1)×(2n+1) for n ≥ 1")

	// ErrQubitRange indicates a qubit index outside [0, n).
	ErrQubitRange = errors.New("tableau: qubit index out of range")

	// ErrSameQubit indicates a CNOT whose control and target coincide.
	ErrSameQubit = errors.New("tableau: CNOT control and target must differ")

	// ErrNotImplemented is returned by the Pauli-string conversion stub.
	ErrNotImplemented = errors.New("tableau: Pauli-string conversion not implemented")
)

// Option configures a Tableau at construction time.
//
// Options are applied left to right; the last randomness option wins.
type Option func(*Tableau)

// WithSeed seeds the tableau's private random source deterministically.
// Policy follows the package default: seed==0 selects the fixed default
// seed, so a zero value still yields reproducible runs.
func WithSeed(seed int64) Option {
	return func(t *Tableau) {
		t.rng = rngFromSeed(seed)
	}
}

// WithRand installs a caller-supplied random source. The tableau takes
// ownership of the stream: do not share r with other tableaus or
// goroutines. A nil r is ignored and the default deterministic source
// is kept.
func WithRand(r *rand.Rand) Option {
	return func(t *Tableau) {
		if r != nil {
			t.rng = r
		}
	}
}
