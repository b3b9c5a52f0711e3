package tableau

// PauliStrings would render the stabilizer generator rows in a textual
// Pauli-operator form ("+XX", "-ZI", …) for interchange with external
// tools. The conversion is declared as part of the public surface but is
// intentionally unimplemented: it always returns ErrNotImplemented and
// never partial data.
func (t *Tableau) PauliStrings() ([]string, error) {
	return nil, ErrNotImplemented
}
