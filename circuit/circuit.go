package circuit

import (
	"fmt"
	"strings"

	"github.com/kvantor/chp/tableau"
)

// Circuit owns one Tableau and an ordered, append-only gate sequence.
// The qubit count is fixed at construction and always equals the owned
// tableau's n.
type Circuit struct {
	nqubits int
	tab     *tableau.Tableau
	gates   []Gate
}

// New creates a circuit on nqubits qubits with a fresh zero-state
// tableau. Randomness options (tableau.WithSeed, tableau.WithRand) are
// forwarded to the tableau. Returns tableau.ErrBadQubits when nqubits < 1.
//
// Time Complexity: O(n²)
func New(nqubits int, opts ...tableau.Option) (*Circuit, error) {
	tab, err := tableau.Zero(nqubits, opts...)
	if err != nil {
		return nil, err
	}
	return &Circuit{nqubits: nqubits, tab: tab}, nil
}

// NQubits returns the circuit's fixed qubit count.
func (c *Circuit) NQubits() int { return c.nqubits }

// Len returns the number of appended gates.
func (c *Circuit) Len() int { return len(c.gates) }

// Gates returns a copy of the gate sequence in append order.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)
	return out
}

// Tableau exposes the owned tableau for inspection. The tableau remains
// exclusively owned by the circuit: mutating it between Sample calls is
// the caller's responsibility and is overwritten by Sample's reset.
func (c *Circuit) Tableau() *tableau.Tableau { return c.tab }

// Append adds gates to the end of the sequence. No qubit-range validation
// happens here; out-of-range targets surface as errors when the gate is
// applied during Sample.
//
// Time Complexity: O(len(gates)) amortized
func (c *Circuit) Append(gates ...Gate) {
	c.gates = append(c.gates, gates...)
}

// Sample resets the owned tableau to the zero state, replays the full
// gate sequence in append order and returns the Measure outcomes in
// encounter order. Repeated calls are independent trials of the same
// circuit: the state is re-prepared each time while the random source
// keeps advancing.
//
// On a gate error the run stops and the partial outcomes are discarded;
// the tableau is left mid-run but the next Sample resets it anyway.
//
// Time Complexity: O(len(gates)·n²) worst case
func (c *Circuit) Sample() ([]bool, error) {
	c.tab.Reset()
	outcomes := make([]bool, 0, len(c.gates))
	for i, g := range c.gates {
		outcome, measured, err := g.Apply(c.tab)
		if err != nil {
			return nil, fmt.Errorf("circuit: gate %d (%s): %w", i, g, err)
		}
		if measured {
			outcomes = append(outcomes, outcome)
		}
	}
	return outcomes, nil
}

// String renders the circuit one gate per line, in append order.
func (c *Circuit) String() string {
	lines := make([]string, len(c.gates))
	for i, g := range c.gates {
		lines[i] = g.String()
	}
	return strings.Join(lines, "\n")
}
