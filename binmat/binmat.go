// Package binmat provides a minimal dense boolean matrix used as the
// binary (GF(2)) state representation of stabilizer tableaus.
package binmat

import "strings"

// Matrix is a row-major dense boolean matrix.
//
// A nil or empty Matrix has zero rows. Rows may in principle have differing
// lengths; use Rectangular to validate before treating the value as a true
// matrix. All helpers are allocation-explicit: Clone is the only way to get
// an independent copy, plain assignment shares backing storage.
type Matrix [][]bool

// Zero returns a rows×cols matrix with every entry false.
//
// Time Complexity: O(rows·cols)
func Zero(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]bool, cols)
	}
	return m
}

// Clone returns a deep copy of m. Mutating the copy never affects m.
//
// Time Complexity: O(rows·cols)
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]bool, len(row))
		copy(out[i], row)
	}
	return out
}

// Dims returns the row count and the column count of the first row
// (0 if the matrix has no rows).
func (m Matrix) Dims() (rows, cols int) {
	rows = len(m)
	if rows > 0 {
		cols = len(m[0])
	}
	return rows, cols
}

// Rectangular reports whether every row has the same length.
// The empty matrix is rectangular.
//
// Time Complexity: O(rows)
func (m Matrix) Rectangular() bool {
	if len(m) == 0 {
		return true
	}
	w := len(m[0])
	for _, row := range m[1:] {
		if len(row) != w {
			return false
		}
	}
	return true
}

// Equal reports whether m and o have identical shape and entries.
//
// Time Complexity: O(rows·cols)
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for i, row := range m {
		if len(row) != len(o[i]) {
			return false
		}
		for j, v := range row {
			if v != o[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the matrix as one line of '0'/'1' runes per row.
// Intended for debugging and test diagnostics only.
func (m Matrix) String() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if v {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}
