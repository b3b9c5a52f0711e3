package tableau_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantor/chp/tableau"
)

// TestMeasure_ZeroStateAlwaysFalse: every qubit of |0…0⟩ measures to
// false deterministically, across repeated calls, for several sizes.
func TestMeasure_ZeroStateAlwaysFalse(t *testing.T) {
	for n := 1; n <= 4; n++ {
		tab, err := tableau.Zero(n)
		require.NoError(t, err)
		for a := 0; a < n; a++ {
			for rep := 0; rep < 5; rep++ {
				got, err := tab.Measure(a)
				require.NoError(t, err)
				assert.Falsef(t, got, "n=%d qubit %d rep %d", n, a, rep)
			}
		}
	}
}

// TestMeasure_OneStateAlwaysTrue prepares |1⟩ = H·S·S·H |0⟩ and checks
// the deterministic branch reports true without touching the generators.
func TestMeasure_OneStateAlwaysTrue(t *testing.T) {
	tab, err := tableau.Zero(1)
	require.NoError(t, err)
	require.NoError(t, tab.H(0))
	require.NoError(t, tab.Phase(0))
	require.NoError(t, tab.Phase(0))
	require.NoError(t, tab.H(0))

	before := tab.Matrix()
	for rep := 0; rep < 5; rep++ {
		got, err := tab.Measure(0)
		require.NoError(t, err)
		assert.True(t, got, "rep %d", rep)
	}
	after := tab.Matrix()
	// Only the scratch row may differ between calls.
	assert.True(t, before[:2*1].Equal(after[:2*1]),
		"deterministic measurement must leave generator rows alone")
}

// TestMeasure_PlusStateCollapses: measuring |+⟩ is random, but a second
// measurement of the collapsed state repeats the first outcome.
func TestMeasure_PlusStateCollapses(t *testing.T) {
	for seed := int64(1); seed <= 32; seed++ {
		tab, err := tableau.Zero(1, tableau.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, tab.H(0))

		first, err := tab.Measure(0)
		require.NoError(t, err)
		second, err := tab.Measure(0)
		require.NoError(t, err)
		assert.Equalf(t, first, second, "seed %d: collapsed state must repeat", seed)
	}
}

// TestMeasure_PlusStateSeedDeterminism: a fixed seed replays the exact
// outcome sequence; distinct tableaus with the same seed agree.
func TestMeasure_PlusStateSeedDeterminism(t *testing.T) {
	sample := func(seed int64) []bool {
		tab, err := tableau.Zero(1, tableau.WithSeed(seed))
		require.NoError(t, err)
		out := make([]bool, 0, 8)
		for i := 0; i < 8; i++ {
			require.NoError(t, tab.H(0))
			got, err := tab.Measure(0)
			require.NoError(t, err)
			out = append(out, got)
		}
		return out
	}
	assert.Equal(t, sample(42), sample(42), "same seed, same sequence")
}

// TestMeasure_InjectedRand: a caller-supplied *rand.Rand drives outcomes.
func TestMeasure_InjectedRand(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	want := rand.New(rand.NewSource(7)).Intn(2) == 1

	tab, err := tableau.Zero(1, tableau.WithRand(rng))
	require.NoError(t, err)
	require.NoError(t, tab.H(0))

	got, err := tab.Measure(0)
	require.NoError(t, err)
	assert.Equal(t, want, got, "outcome must be the source's next bit")
}

// TestMeasure_BellCorrelated: preparing a Bell pair and measuring both
// qubits yields equal outcomes in every one of ≥1000 independent trials,
// and both outcome values occur across trials.
func TestMeasure_BellCorrelated(t *testing.T) {
	const trials = 1000
	sawTrue, sawFalse := false, false
	for i := 0; i < trials; i++ {
		tab, err := tableau.Zero(2, tableau.WithSeed(int64(i+1)))
		require.NoError(t, err)
		require.NoError(t, tab.H(0))
		require.NoError(t, tab.CNOT(0, 1))

		m0, err := tab.Measure(0)
		require.NoError(t, err)
		m1, err := tab.Measure(1)
		require.NoError(t, err)

		require.Equalf(t, m0, m1, "trial %d: Bell outcomes must agree", i)
		if m0 {
			sawTrue = true
		} else {
			sawFalse = true
		}
	}
	assert.True(t, sawTrue, "random branch must produce true outcomes")
	assert.True(t, sawFalse, "random branch must produce false outcomes")
}

// TestMeasure_RandomBranchInstallsZGenerator: after collapsing |+⟩, the
// replaced stabilizer row is Z on the measured qubit signed with the
// outcome, and the old stabilizer moved into the destabilizer slot.
func TestMeasure_RandomBranchInstallsZGenerator(t *testing.T) {
	tab, err := tableau.Zero(1, tableau.WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, tab.H(0))
	// Pre-measurement: destabilizer Z, stabilizer X.
	outcome, err := tab.Measure(0)
	require.NoError(t, err)

	m := tab.Matrix()
	assert.Equal(t, []bool{T, F, F}, m[0], "old stabilizer X becomes the destabilizer")
	assert.Equal(t, []bool{F, T, outcome}, m[1], "new stabilizer is ±Z")
}
