package tableau

import (
	"fmt"
	"math/rand"

	"github.com/kvantor/chp/binmat"
)

// Tableau encodes an n-qubit stabilizer state as a (2n+1)×(2n+1) boolean
// matrix, following Aaronson & Gottesman (Phys. Rev. A 70, 052328).
//
// Layout:
//
//   - Rows 0..n-1:   destabilizer generators.
//   - Rows n..2n-1:  stabilizer generators (these define the state).
//   - Row 2n:        scratch row, used transiently by Measure.
//   - Cols 0..n-1:   X-exponents; cols n..2n-1: Z-exponents;
//     col 2n: sign bit r (true ⇒ phase −1).
//
// Row i encodes the Pauli ⊗ⱼ X^xᵢⱼ Z^zᵢⱼ with overall sign (−1)^rᵢ.
// n is fixed for the lifetime of the Tableau. Symplectic validity of the
// generator rows is maintained by the operations themselves and never
// re-checked at runtime.
//
// A Tableau is exclusively owned: exactly one logical caller mutates it at
// a time, and there is no internal locking. Independent concurrent runs
// need one Tableau (and one random source) each.
type Tableau struct {
	n   int
	m   binmat.Matrix
	rng *rand.Rand
}

// Zero returns the tableau of the all-zero state |0…0⟩ on n qubits:
// the (2n+1)×(2n+1) matrix with the diagonal of the first 2n rows set.
// Returns ErrBadQubits when n < 1.
//
// Time Complexity: O(n²)
func Zero(n int, opts ...Option) (*Tableau, error) {
	if n < 1 {
		return nil, ErrBadQubits
	}
	t := &Tableau{n: n, m: zeroMatrix(n), rng: rngFromSeed(0)}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// New builds a Tableau from an explicit matrix. The matrix must be
// rectangular and square with odd dimension (2n+1) for some n ≥ 1, else
// ErrBadShape is returned. The matrix is deep-copied: the caller's slice
// is never aliased by the Tableau.
//
// Time Complexity: O(n²)
func New(m binmat.Matrix, opts ...Option) (*Tableau, error) {
	rows, cols := m.Dims()
	if !m.Rectangular() || rows != cols || rows%2 == 0 || rows < 3 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadShape, rows, cols)
	}
	t := &Tableau{n: (rows - 1) / 2, m: m.Clone(), rng: rngFromSeed(0)}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// zeroMatrix allocates the identity-pattern matrix of the zero state.
func zeroMatrix(n int) binmat.Matrix {
	m := binmat.Zero(2*n+1, 2*n+1)
	for i := 0; i < 2*n; i++ {
		m[i][i] = true
	}
	return m
}

// NQubits returns the number of simulated qubits n.
func (t *Tableau) NQubits() int { return t.n }

// Matrix returns a deep copy of the tableau's (2n+1)×(2n+1) matrix.
// Mutating the returned matrix never affects the Tableau.
//
// Time Complexity: O(n²)
func (t *Tableau) Matrix() binmat.Matrix { return t.m.Clone() }

// Clone returns an independent copy of the tableau state. The clone keeps
// its own default deterministic random source; pass options to override.
//
// Time Complexity: O(n²)
func (t *Tableau) Clone(opts ...Option) *Tableau {
	c := &Tableau{n: t.n, m: t.m.Clone(), rng: rngFromSeed(0)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset restores the zero state |0…0⟩ in place. The random source is kept,
// so a sequence of runs separated by Reset draws from one stream.
//
// Time Complexity: O(n²)
func (t *Tableau) Reset() {
	for i, row := range t.m {
		for j := range row {
			row[j] = i == j && i < 2*t.n
		}
	}
}

// checkQubit validates a single qubit index.
func (t *Tableau) checkQubit(a int) error {
	if a < 0 || a >= t.n {
		return fmt.Errorf("%w: qubit %d, n=%d", ErrQubitRange, a, t.n)
	}
	return nil
}

// H applies a Hadamard gate to qubit a.
//
// For every generator row i in [0, 2n): rᵢ ^= xᵢₐ∧zᵢₐ, then xᵢₐ and zᵢₐ
// swap (X ↔ Z under conjugation by H).
//
// Time Complexity: O(n)
func (t *Tableau) H(a int) error {
	if err := t.checkQubit(a); err != nil {
		return err
	}
	za, sign := a+t.n, 2*t.n
	for i := 0; i < 2*t.n; i++ {
		row := t.m[i]
		row[sign] = row[sign] != (row[a] && row[za])
		row[a], row[za] = row[za], row[a]
	}
	return nil
}

// Phase applies a phase (S) gate to qubit a.
//
// For every generator row i in [0, 2n): rᵢ ^= xᵢₐ∧zᵢₐ, then zᵢₐ ^= xᵢₐ.
// Reads and writes act on the tableau's own matrix.
//
// Time Complexity: O(n)
func (t *Tableau) Phase(a int) error {
	if err := t.checkQubit(a); err != nil {
		return err
	}
	za, sign := a+t.n, 2*t.n
	for i := 0; i < 2*t.n; i++ {
		row := t.m[i]
		row[sign] = row[sign] != (row[a] && row[za])
		row[za] = row[za] != row[a]
	}
	return nil
}

// CNOT applies a controlled-NOT with control qubit a and target qubit b.
//
// For every generator row i in [0, 2n), with the row's values read before
// any write: rᵢ ^= xᵢₐ∧zᵢᵦ∧(xᵢᵦ⊕zᵢₐ⊕1), then xᵢᵦ ^= xᵢₐ, then zᵢₐ ^= zᵢᵦ.
// Returns ErrSameQubit when a == b.
//
// Time Complexity: O(n)
func (t *Tableau) CNOT(a, b int) error {
	if err := t.checkQubit(a); err != nil {
		return err
	}
	if err := t.checkQubit(b); err != nil {
		return err
	}
	if a == b {
		return ErrSameQubit
	}
	sign := 2 * t.n
	for i := 0; i < 2*t.n; i++ {
		row := t.m[i]
		xa, xb := row[a], row[b]
		za, zb := row[a+t.n], row[b+t.n]
		// xb ⊕ za ⊕ 1 is the equality xb == za over GF(2).
		row[sign] = row[sign] != (xa && zb && (xb == za))
		row[b] = xb != xa
		row[a+t.n] = za != zb
	}
	return nil
}
