// Package tableau - deterministic RNG policy for measurement outcomes.
//
// Goals:
//   - Determinism: same seed ⇒ identical outcome sequences across platforms.
//   - Encapsulation: one RNG per Tableau; no time-based sources hidden anywhere.
//   - Safety: math/rand.Rand is NOT goroutine-safe; a Tableau and its source
//     belong to exactly one goroutine at a time.
package tableau

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
