package circuit

import (
	"strconv"
	"strings"

	"github.com/kvantor/chp/tableau"
)

// Gate is one operation of a Clifford circuit. The variant set is closed:
// Hadamard, CNOT and Measure are the only implementations (the unexported
// method seals the interface). Gates are immutable values; applying one
// mutates the tableau, never the gate.
type Gate interface {
	// Apply mutates tab according to the variant's semantics. The outcome
	// is meaningful only when measured is true, which holds exactly for
	// Measure gates.
	Apply(tab *tableau.Tableau) (outcome, measured bool, err error)

	// ProducesOutcome reports whether Apply yields a measurement outcome.
	ProducesOutcome() bool

	// Noisy reports the noise marker. No variant defines noise semantics;
	// the flag exists in the data model only.
	Noisy() bool

	// Name is the short operation mnemonic used in renderings.
	Name() string

	// Targets lists the qubit indices the gate acts on, in declaration
	// order (control before target for CNOT).
	Targets() []int

	// String renders the gate as "NAME target…".
	String() string

	sealed()
}

// gateString renders a gate line: mnemonic followed by space-separated
// qubit indices in declaration order.
func gateString(name string, targets []int) string {
	var sb strings.Builder
	sb.WriteString(name)
	for _, q := range targets {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(q))
	}
	return sb.String()
}

// Hadamard applies H to its target qubit.
type Hadamard struct {
	Target int
}

func (g Hadamard) Apply(tab *tableau.Tableau) (bool, bool, error) {
	return false, false, tab.H(g.Target)
}

func (g Hadamard) ProducesOutcome() bool { return false }
func (g Hadamard) Noisy() bool { return false }
func (g Hadamard) Name() string { return "H" }
func (g Hadamard) Targets() []int { return []int{g.Target} }
func (g Hadamard) String() string { return gateString(g.Name(), g.Targets()) }
func (g Hadamard) sealed() {}

// CNOT applies a controlled-NOT with the given control and target qubits.
type CNOT struct {
	Control int
	Target  int
}

func (g CNOT) Apply(tab *tableau.Tableau) (bool, bool, error) {
	return false, false, tab.CNOT(g.Control, g.Target)
}

func (g CNOT) ProducesOutcome() bool { return false }
func (g CNOT) Noisy() bool { return false }
func (g CNOT) Name() string { return "CX" }
func (g CNOT) Targets() []int { return []int{g.Control, g.Target} }
func (g CNOT) String() string { return gateString(g.Name(), g.Targets()) }
func (g CNOT) sealed() {}

// Measure projectively measures its target qubit in the Z basis.
type Measure struct {
	Target int
}

func (g Measure) Apply(tab *tableau.Tableau) (bool, bool, error) {
	outcome, err := tab.Measure(g.Target)
	return outcome, err == nil, err
}

func (g Measure) ProducesOutcome() bool { return true }
func (g Measure) Noisy() bool { return false }
func (g Measure) Name() string { return "M" }
func (g Measure) Targets() []int { return []int{g.Target} }
func (g Measure) String() string { return gateString(g.Name(), g.Targets()) }
func (g Measure) sealed() {}
