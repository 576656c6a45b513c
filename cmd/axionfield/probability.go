package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func NewProbabilityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probability [axion mass in eV]",
		Short: "Evaluate the constant-field conversion probability",
		Long: `Evaluate the constant-field conversion probability.

The photon effective mass and absorption are derived from the buffer gas
when one is set with --gas; otherwise the magnet bore is treated as vacuum.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ma, err := parseFloatArg(args, "axion mass")
			if err != nil {
				return err
			}

			f, err := newField()
			if err != nil {
				return err
			}

			prob := f.Probability(ma, 0, 0)
			slog.Debug("evaluated conversion probability",
				"B", magnetField, "L", magnetBore, "Ea", axionEnergy, "ma", ma)
			fmt.Printf("P(ma=%g eV) = %.6e\n", ma, prob)

			return nil
		},
	}
}
