package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvantor/chp/chpio"
	"github.com/kvantor/chp/circuit"
	"github.com/kvantor/chp/tableau"
)

// NewShowCommand creates the show command: parse a circuit file and print
// its gate listing, one "NAME target…" line per gate.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <circuit-file>",
		Short: "Print the gate sequence of a circuit file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCircuit(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "qubits: %d, gates: %d\n", c.NQubits(), c.Len())
			if c.Len() > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

// loadCircuit parses a circuit file, forwarding randomness options to
// the circuit's tableau.
func loadCircuit(path string, opts ...tableau.Option) (*circuit.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open circuit file: %w", err)
	}
	defer f.Close()

	c, err := chpio.ParseCircuit(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}
