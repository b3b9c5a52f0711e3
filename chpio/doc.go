// Package chpio implements the interchange surfaces of the simulator:
// a line-oriented circuit text format and YAML tableau snapshots.
//
// Circuit text format:
//
//	# comment lines and blank lines are ignored
//	qubits 2        (optional header; inferred from gate targets if absent)
//	H 0
//	CX 0 1
//	M 0
//	M 1
//
// Gate lines use the rendering of the circuit package: mnemonic followed
// by space-separated qubit indices in declaration order. The header, when
// present, must precede the first gate line. Qubit indices are not
// range-checked here; the circuit validates lazily at application time.
//
// Tableau snapshots:
//
//	nqubits: 2
//	rows: ["10000", "01000", "00100", "00010", "00000"]
//
// Rows encode the (2n+1)×(2n+1) boolean matrix row-major, one '0'/'1'
// string per row, scratch row included. DecodeSnapshot rebuilds a
// tableau through the tableau package's shape validation.
//
// Errors:
//
//   - ErrBadGateLine:  malformed line (arity, index syntax, stray header).
//   - ErrUnknownGate:  mnemonic outside {H, CX, M}.
//   - ErrEmptyCircuit: no header and no gates to infer a qubit count from.
//   - ErrBadSnapshot:  inconsistent or malformed snapshot document.
//
// Shape violations discovered while rebuilding a snapshot surface as the
// tableau package's ErrBadShape through errors.Is.
package chpio
