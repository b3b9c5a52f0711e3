package chpio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/kvantor/chp/binmat"
	"github.com/kvantor/chp/tableau"
)

// ErrBadSnapshot indicates a snapshot document that is malformed or
// internally inconsistent (qubit count vs. matrix shape, bad row runes).
var ErrBadSnapshot = errors.New("chpio: bad tableau snapshot")

// Snapshot is the YAML document schema for a persisted tableau: the
// qubit count and the (2n+1)×(2n+1) boolean matrix row-major, each row a
// '0'/'1' string (scratch row included).
type Snapshot struct {
	NQubits int      `yaml:"nqubits"`
	Rows    []string `yaml:"rows"`
}

// NewSnapshot captures the tableau's current matrix.
//
// Time Complexity: O(n²)
func NewSnapshot(tab *tableau.Tableau) Snapshot {
	m := tab.Matrix()
	rows := make([]string, len(m))
	for i, row := range m {
		rows[i] = binmat.RowString(row)
	}
	return Snapshot{NQubits: tab.NQubits(), Rows: rows}
}

// EncodeSnapshot writes the tableau's state as a YAML snapshot document.
func EncodeSnapshot(w io.Writer, tab *tableau.Tableau) error {
	out, err := yaml.Marshal(NewSnapshot(tab))
	if err != nil {
		return fmt.Errorf("chpio: encode snapshot: %w", err)
	}
	if _, err = w.Write(out); err != nil {
		return fmt.Errorf("chpio: encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a YAML snapshot document and rebuilds the tableau,
// forwarding options to the tableau constructor. The declared qubit count
// must match the matrix shape; shape violations surface as the tableau
// package's ErrBadShape.
func DecodeSnapshot(r io.Reader, opts ...tableau.Option) (*tableau.Tableau, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("chpio: decode snapshot: %w", err)
	}

	var s Snapshot
	if err = yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}

	m := make(binmat.Matrix, len(s.Rows))
	for i, rs := range s.Rows {
		row, err := binmat.ParseRow(rs)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadSnapshot, i, err)
		}
		m[i] = row
	}

	tab, err := tableau.New(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("chpio: decode snapshot: %w", err)
	}
	if s.NQubits != tab.NQubits() {
		return nil, fmt.Errorf("%w: declared nqubits %d, matrix encodes %d",
			ErrBadSnapshot, s.NQubits, tab.NQubits())
	}
	return tab, nil
}
