package axionfield

import "math"

// Default arguments for MassDensityScan.
const (
	DefaultScanGas      = "He"
	DefaultScanMaxMass  = 0.15 // eV
	DefaultScanRampDown = 5
)

// ScanPoint is one experiment setting of a continuous mass scan: the axion
// mass probed, in eV, and the buffer gas density that puts the resonance on
// it, in g/cm3.
type ScanPoint struct {
	Mass    float64
	Density float64
}

// MassDensityScan determines the sequence of gas density settings that keeps
// consecutive resonance peaks overlapping while stepping the probed axion
// mass up to maMax (eV), as needed for a continuous-sensitivity scan of a
// helioscope experiment.
//
// The first point sits where the vacuum probability reaches half its
// maximum, at FWHM/2. Each following step advances the mass by
// FWHM/factor at the current density, with
//
//	factor = exp(-ma*rampDown) + 1
//
// falling from 2 towards 1 as the mass grows, so the sampling is densest in
// the narrow low-mass region and relaxes towards full-width steps at high
// mass, covering the range without gaps.
//
// The scan temporarily detaches any assigned buffer gas and works on a fresh
// instance of the named species; the original association is restored before
// returning, on every path.
func (f *Field) MassDensityScan(gasName string, maMax, rampDown float64) ([]ScanPoint, error) {
	previousGas := f.gas
	f.gas = nil
	defer func() { f.gas = previousGas }()

	// In vacuum now.
	firstMass := f.ResonanceFWHM(DefaultFWHMStep) / 2

	gas := NewBufferGas()
	if err := gas.SetDensity(gasName, 0); err != nil {
		return nil, err
	}
	f.gas = gas // in gas now

	ma := firstMass
	density, err := gas.DensityForMass(firstMass, f.Ea)
	if err != nil {
		return nil, err
	}

	points := []ScanPoint{{Mass: ma, Density: density}}

	for ma < maMax {
		factor := math.Exp(-ma*rampDown) + 1
		if err := gas.SetDensity(gasName, density); err != nil {
			return nil, err
		}

		ma += f.ResonanceFWHM(DefaultFWHMStep) / factor
		density, err = gas.DensityForMass(ma, f.Ea)
		if err != nil {
			return nil, err
		}

		points = append(points, ScanPoint{Mass: ma, Density: density})
	}

	f.logger.Debug("mass density scan complete",
		"gas", gasName, "points", len(points),
		"firstMass_eV", firstMass, "lastMass_eV", ma)

	return points, nil
}
