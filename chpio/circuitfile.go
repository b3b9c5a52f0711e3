package chpio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kvantor/chp/circuit"
	"github.com/kvantor/chp/tableau"
)

// Sentinel errors for the circuit text format.
var (
	// ErrBadGateLine indicates a malformed line: wrong argument count,
	// non-integer index, or a qubits header after the first gate.
	ErrBadGateLine = errors.New("chpio: malformed circuit line")

	// ErrUnknownGate indicates a gate mnemonic outside {H, CX, M}.
	ErrUnknownGate = errors.New("chpio: unknown gate")

	// ErrEmptyCircuit indicates the input had neither a qubits header nor
	// any gate line, so no qubit count can be established.
	ErrEmptyCircuit = errors.New("chpio: circuit has no qubits header and no gates")
)

// ParseCircuit reads the circuit text format and builds a Circuit.
// Randomness options are forwarded to the circuit's tableau. When the
// optional "qubits N" header is absent, the qubit count is inferred as
// one past the highest index mentioned by any gate.
//
// Time Complexity: O(lines + n²)
func ParseCircuit(r io.Reader, opts ...tableau.Option) (*circuit.Circuit, error) {
	var (
		gates   []circuit.Gate
		nqubits = -1
		maxQ    = -1
		lineNum int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "qubits":
			if len(gates) > 0 || nqubits >= 0 {
				return nil, fmt.Errorf("%w: line %d: qubits header must appear once, before gates", ErrBadGateLine, lineNum)
			}
			v, err := strconv.Atoi(fields[len(fields)-1])
			if len(fields) != 2 || err != nil || v < 1 {
				return nil, fmt.Errorf("%w: line %d: want \"qubits N\" with N ≥ 1", ErrBadGateLine, lineNum)
			}
			nqubits = v
		case "H", "M":
			q, err := gateArgs(fields, 1)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d", err, lineNum)
			}
			if fields[0] == "H" {
				gates = append(gates, circuit.Hadamard{Target: q[0]})
			} else {
				gates = append(gates, circuit.Measure{Target: q[0]})
			}
			maxQ = max(maxQ, q[0])
		case "CX":
			q, err := gateArgs(fields, 2)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d", err, lineNum)
			}
			gates = append(gates, circuit.CNOT{Control: q[0], Target: q[1]})
			maxQ = max(maxQ, q[0], q[1])
		default:
			return nil, fmt.Errorf("%w: line %d: %q", ErrUnknownGate, lineNum, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("chpio: read circuit: %w", err)
	}

	if nqubits < 0 {
		if maxQ < 0 {
			return nil, ErrEmptyCircuit
		}
		nqubits = maxQ + 1
	}

	c, err := circuit.New(nqubits, opts...)
	if err != nil {
		return nil, err
	}
	c.Append(gates...)
	return c, nil
}

// gateArgs parses exactly want qubit indices from a gate line.
// Indices must be non-negative integers; range checking stays lazy.
func gateArgs(fields []string, want int) ([]int, error) {
	if len(fields) != want+1 {
		return nil, fmt.Errorf("%w: %s takes %d index(es)", ErrBadGateLine, fields[0], want)
	}
	out := make([]int, want)
	for i := 0; i < want; i++ {
		v, err := strconv.Atoi(fields[i+1])
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: bad qubit index %q", ErrBadGateLine, fields[i+1])
		}
		out[i] = v
	}
	return out, nil
}

// RenderCircuit writes the circuit in the text format ParseCircuit reads:
// a qubits header followed by one gate per line, newline-terminated.
// RenderCircuit and ParseCircuit round-trip exactly.
func RenderCircuit(w io.Writer, c *circuit.Circuit) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "qubits %d\n", c.NQubits()); err != nil {
		return fmt.Errorf("chpio: render circuit: %w", err)
	}
	for _, g := range c.Gates() {
		if _, err := fmt.Fprintln(bw, g); err != nil {
			return fmt.Errorf("chpio: render circuit: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("chpio: render circuit: %w", err)
	}
	return nil
}
