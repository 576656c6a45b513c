package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	logLevel    = "info"
	magnetField = 2.5     // T
	magnetBore  = 10000.0 // mm
	axionEnergy = 4.2     // keV
	gasName     = ""
	gasDensity  = 0.0 // g/cm3
)

func setupLogger() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
	return nil
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "axionfield",
		Short: "axionfield computes axion-photon conversion probabilities in helioscope magnets",
		Long: `axionfield computes axion-photon conversion probabilities in helioscope magnets.

It evaluates the closed-form constant-field probability, plans buffer-gas
density scans, and renders probability curves.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")
	globalFlags.Float64VarP(&magnetField, "field", "B", magnetField, "transverse magnetic field in T")
	globalFlags.Float64VarP(&magnetBore, "length", "L", magnetBore, "coherence length in mm")
	globalFlags.Float64VarP(&axionEnergy, "energy", "E", axionEnergy, "axion energy in keV")
	globalFlags.StringVarP(&gasName, "gas", "g", gasName, "buffer gas name (He, Ne, Ar, Xe); empty for vacuum")
	globalFlags.Float64VarP(&gasDensity, "density", "d", gasDensity, "buffer gas density in g/cm3")

	cmd.AddCommand(
		NewProbabilityCommand(),
		NewScanCommand(),
		NewPlotCommand(),
	)

	return cmd
}
