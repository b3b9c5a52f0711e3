package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kvantor/chp/chpio"
	"github.com/kvantor/chp/tableau"
)

// StateOptions holds flags for the state command.
type StateOptions struct {
	*RootOptions
	Seed int64
}

// NewStateCommand creates the state command: replay a circuit once and
// dump the final tableau as a YAML snapshot.
func NewStateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "state <circuit-file>",
		Short: "Print the post-run tableau snapshot of a circuit",
		Long: `Replay the circuit once against the zero state and print the resulting
stabilizer tableau as a YAML snapshot (measurements collapse the state;
use --seed to pin their outcomes).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCircuit(args[0], tableau.WithSeed(opts.Seed))
			if err != nil {
				return err
			}
			if _, err = c.Sample(); err != nil {
				return fmt.Errorf("replay %s: %w", args[0], err)
			}
			slog.Debug("circuit replayed", "path", args[0], "nqubits", c.NQubits())
			return chpio.EncodeSnapshot(cmd.OutOrStdout(), c.Tableau())
		},
	}

	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 selects the fixed default)")

	return cmd
}
