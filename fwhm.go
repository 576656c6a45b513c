package axionfield

// DefaultFWHMStep is the axion mass increment, in eV, used by the scan
// controller when sampling the resonance curve.
const DefaultFWHMStep = 1e-5

// fwhmMaxMass bounds the FWHM search; crossing it means the resonance curve
// never fell to half height within the physical scan range.
const fwhmMaxMass = 10 // eV

// ResonanceFWHM computes the full width at half maximum of the conversion
// probability resonance as a function of the axion mass, by scanning the
// mass upward from the resonance peak in increments of step (eV) until the
// probability falls below half its peak value.
//
// The resonance mass is the photon effective mass in the assigned buffer
// gas, or zero in vacuum; without a gas the returned width is therefore the
// mass range over which the probability stays above half the maximum vacuum
// probability. The curve is evaluated with the cached field state.
//
// Exceeding the 10 eV mass cutoff or computing a non-positive width are
// reported failures: both are logged and degrade to the cutoff or to the
// raw step, never to a panic.
func (f *Field) ResonanceFWHM(step float64) float64 {
	resonanceMass := 0.0
	if f.gas != nil {
		resonanceMass = f.gas.PhotonMass(f.Ea)
	}

	// Scanning towards the right, valid also for vacuum.
	scanMass := resonanceMass
	pmax := f.Probability(resonanceMass, 0, 0)
	for pmax/2 < f.Probability(scanMass, 0, 0) {
		scanMass += step
		if scanMass > fwhmMaxMass {
			f.logger.Error("resonance FWHM scan exceeded the mass cutoff",
				"cutoff_eV", float64(fwhmMaxMass), "step_eV", step)
			return fwhmMaxMass
		}
	}

	fwhm := scanMass - resonanceMass
	if fwhm <= 0 {
		f.logger.Error("resonance FWHM came out non-positive",
			"fwhm_eV", fwhm, "step_eV", step)
		fwhm = step
	}
	return 2 * fwhm
}
