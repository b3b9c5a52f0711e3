package binmat

import "errors"

// ErrBadBit indicates a row string contained a rune other than '0' or '1'.
var ErrBadBit = errors.New("binmat: row must contain only '0' and '1'")

// ParseRow decodes a string of '0'/'1' runes into a boolean row.
// Returns ErrBadBit on any other rune.
//
// Time Complexity: O(len(s))
func ParseRow(s string) ([]bool, error) {
	row := make([]bool, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			// already false
		case '1':
			row[i] = true
		default:
			return nil, ErrBadBit
		}
	}
	return row, nil
}

// RowString encodes a boolean row as a string of '0'/'1' runes.
// It is the inverse of ParseRow.
func RowString(row []bool) string {
	buf := make([]byte, len(row))
	for i, v := range row {
		if v {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
