package tableau

// This file implements projective single-qubit measurement and the rowsum
// Pauli-product routine it depends on. Both follow section III of
// Aaronson & Gottesman, Phys. Rev. A 70, 052328.

// b2i maps a tableau bit to its integer exponent.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// rowsum left-multiplies the Pauli encoded in row i into row h: after the
// call, row h encodes the group product of the two operators with the
// correct overall sign.
//
// Per qubit j the phase function g(x₁,z₁,x₂,z₂) contributes the exponent
// of i (the imaginary unit) picked up when multiplying single-qubit
// Paulis, with row i supplying (x₁,z₁) and row h supplying (x₂,z₂):
//
//	(0,0) → 0
//	(1,1) → z₂ − x₂
//	(1,0) → z₂·(2x₂ − 1)
//	(0,1) → x₂·(1 − 2z₂)
//
// The accumulated 2rᵢ + 2rₕ + Σg is 0 or 2 (mod 4) for commuting
// products; the sign bit of row h becomes true iff it is nonzero mod 4.
// The X- and Z-columns of row i are then XORed into row h.
//
// Time Complexity: O(n)
func (t *Tableau) rowsum(h, i int) {
	n, sign := t.n, 2*t.n
	rh, ri := t.m[h], t.m[i]

	sum := 0
	for j := 0; j < n; j++ {
		x1, z1 := ri[j], ri[j+n]
		x2, z2 := rh[j], rh[j+n]
		switch {
		case !x1 && !z1:
			// identity contributes nothing
		case x1 && z1:
			sum += b2i(z2) - b2i(x2)
		case x1:
			sum += b2i(z2) * (2*b2i(x2) - 1)
		default:
			sum += b2i(x2) * (1 - 2*b2i(z2))
		}
	}

	phase := 2*b2i(ri[sign]) + 2*b2i(rh[sign]) + sum
	rh[sign] = ((phase%4)+4)%4 != 0
	for j := 0; j < n; j++ {
		rh[j] = rh[j] != ri[j]
		rh[j+n] = rh[j+n] != ri[j+n]
	}
}

// Measure performs a projective Z-basis measurement of qubit a, mutating
// the tableau to the post-measurement state and returning the outcome
// (false ⇒ |0⟩, true ⇒ |1⟩).
//
// If some stabilizer generator anticommutes with Zₐ (a stabilizer row p
// with xₚₐ set exists) the outcome is uniformly random, drawn from the
// tableau's injected source; the state collapses accordingly. Otherwise
// the outcome is determined by the state and computed in the scratch row
// without altering any generator row.
//
// The qubit index is validated before any mutation, so an error return
// leaves the state untouched.
//
// Time Complexity: O(n²) worst case
func (t *Tableau) Measure(a int) (bool, error) {
	if err := t.checkQubit(a); err != nil {
		return false, err
	}
	n, last := t.n, 2*t.n

	// First stabilizer generator anticommuting with Z_a.
	p := -1
	for r := n; r < 2*n; r++ {
		if t.m[r][a] {
			p = r
			break
		}
	}

	if p >= 0 {
		// Random branch: make row p the sole generator anticommuting
		// with Z_a, then replace it by Z_a signed with a random outcome.
		for i := 0; i < 2*n; i++ {
			if i != p && t.m[i][a] {
				t.rowsum(i, p)
			}
		}
		copy(t.m[p-n], t.m[p])
		for j := range t.m[p] {
			t.m[p][j] = false
		}
		outcome := t.rng.Intn(2) == 1
		t.m[p][last] = outcome
		t.m[p][a+n] = true
		return outcome, nil
	}

	// Deterministic branch: accumulate the product of the stabilizers
	// paired with destabilizers that anticommute with Z_a; its sign is
	// the outcome.
	scratch := t.m[last]
	for j := range scratch {
		scratch[j] = false
	}
	for i := 0; i < n; i++ {
		if t.m[i][a] {
			t.rowsum(last, i+n)
		}
	}
	return scratch[last], nil
}
