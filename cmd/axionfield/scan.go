package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/helioscope-dev/axionfield"
)

var (
	scanMaxMass  = axionfield.DefaultScanMaxMass
	scanRampDown = float64(axionfield.DefaultScanRampDown)
	scanCSVPath  = ""
	scanXLSXPath = ""
)

func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Plan a buffer-gas density scan",
		Long: `Plan a buffer-gas density scan.

Each step holds the gas at a density whose photon effective mass matches
one axion mass setting, then advances by the resonance width. The table
is printed to stdout and can additionally be saved as CSV or XLSX.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := gasName
			if name == "" {
				name = axionfield.DefaultScanGas
			}

			f, err := newField()
			if err != nil {
				return err
			}

			points, err := f.MassDensityScan(name, scanMaxMass, scanRampDown)
			if err != nil {
				return fmt.Errorf("failed to plan scan: %v", err)
			}
			slog.Info("scan planned", "gas", name, "steps", len(points))

			printScanTable(points)

			if scanCSVPath != "" {
				if err := saveScanCSV(scanCSVPath, points); err != nil {
					return fmt.Errorf("failed to save CSV: %v", err)
				}
				slog.Info("scan table saved", "path", scanCSVPath)
			}
			if scanXLSXPath != "" {
				if err := saveScanXLSX(scanXLSXPath, name, points); err != nil {
					return fmt.Errorf("failed to save XLSX: %v", err)
				}
				slog.Info("scan table saved", "path", scanXLSXPath)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&scanMaxMass, "max-mass", scanMaxMass, "axion mass in eV at which the scan stops")
	flags.Float64Var(&scanRampDown, "ramp-down", scanRampDown, "step acceleration exponent toward high masses")
	flags.StringVar(&scanCSVPath, "csv", scanCSVPath, "write the scan table to this CSV file")
	flags.StringVar(&scanXLSXPath, "xlsx", scanXLSXPath, "write the scan table to this XLSX file")

	return cmd
}

func printScanTable(points []axionfield.ScanPoint) {
	fmt.Printf("%4s  %12s  %14s\n", "No", "mass [eV]", "density [g/cm3]")
	for i, p := range points {
		fmt.Printf("%4d  %12.6f  %14.6e\n", i+1, p.Mass, p.Density)
	}
}

func saveScanCSV(filename string, points []axionfield.ScanPoint) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()

	w := csv.NewWriter(fp)
	if err := w.Write([]string{"step", "mass_eV", "density_g_cm3"}); err != nil {
		return err
	}
	for i, p := range points {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(p.Mass, 'g', 12, 64),
			strconv.FormatFloat(p.Density, 'g', 12, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func saveScanXLSX(filename, gas string, points []axionfield.ScanPoint) error {
	f := excelize.NewFile()

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)
	f.SetCellValue(summary, "A1", "Gas")
	f.SetCellValue(summary, "B1", gas)
	f.SetCellValue(summary, "A2", "Field [T]")
	f.SetCellValue(summary, "B2", magnetField)
	f.SetCellValue(summary, "A3", "Length [mm]")
	f.SetCellValue(summary, "B3", magnetBore)
	f.SetCellValue(summary, "A4", "Energy [keV]")
	f.SetCellValue(summary, "B4", axionEnergy)
	f.SetCellValue(summary, "A5", "Steps")
	f.SetCellValue(summary, "B5", len(points))

	sheet := "Scan"
	f.NewSheet(sheet)
	f.SetCellValue(sheet, "A1", "step")
	f.SetCellValue(sheet, "B1", "mass [eV]")
	f.SetCellValue(sheet, "C1", "density [g/cm3]")
	for i, p := range points {
		row := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(sheet, cell, i+1)
		cell, _ = excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(sheet, cell, p.Mass)
		cell, _ = excelize.CoordinatesToCellName(3, row)
		f.SetCellValue(sheet, cell, p.Density)
	}

	return f.SaveAs(filename)
}
