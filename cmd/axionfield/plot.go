package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/helioscope-dev/axionfield"
)

var (
	plotMinMass = 0.0
	plotMaxMass = 0.5
	plotPoints  = 1000
	plotOutput  = "probability.png"
)

func NewPlotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the conversion probability as a function of axion mass",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if plotPoints < 2 {
				return fmt.Errorf("need at least 2 points, got %d", plotPoints)
			}
			if plotMaxMass <= plotMinMass {
				return fmt.Errorf("max mass %g must exceed min mass %g", plotMaxMass, plotMinMass)
			}

			f, err := newField()
			if err != nil {
				return err
			}

			masses := axionfield.MassGrid(plotMinMass, plotMaxMass, plotPoints)
			curve := f.ProbabilitySweep(masses, 0)

			pts := make(plotter.XYs, 0, len(curve))
			for _, s := range curve {
				pts = append(pts, plotter.XY{X: s.Mass, Y: s.Probability})
			}

			p := plot.New()
			p.Title.Text = "Axion-Photon Conversion Probability"
			p.X.Label.Text = "axion mass [eV]"
			p.Y.Label.Text = "P(a->g)"
			line, err := plotter.NewLine(pts)
			if err != nil {
				return fmt.Errorf("failed to build line: %v", err)
			}
			plotutil.AddLines(p, line)
			if err := p.Save(6*vg.Inch, 4*vg.Inch, plotOutput); err != nil {
				return fmt.Errorf("failed to save plot: %v", err)
			}

			slog.Info("probability curve rendered", "path", plotOutput, "points", plotPoints)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&plotMinMass, "min-mass", plotMinMass, "first axion mass in eV")
	flags.Float64Var(&plotMaxMass, "max-mass", plotMaxMass, "last axion mass in eV")
	flags.IntVar(&plotPoints, "points", plotPoints, "number of curve samples")
	flags.StringVarP(&plotOutput, "output", "o", plotOutput, "output PNG path")

	return cmd
}
