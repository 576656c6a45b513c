package axionfield

// BL computes the magnetic field times length factor in natural units.
//
// Bmag is the transverse magnetic field in T and Lcoh the coherence length
// in mm. The result is given for an axion-photon coupling of 1e-10 GeV^-1.
func BL(Bmag, Lcoh float64) float64 {
	lengthInMeters := Lcoh * mmToM

	tm := lightSpeed / naturalElectron / gevToEV // eV --> GeV
	sol := lengthInMeters * Bmag * tm
	sol = sol * 1.0e-10

	return sol
}

// BLHalfSquared computes the (BL/2)^2 amplitude prefactor in natural units.
//
// It is the vacuum conversion probability at resonance and the normalization
// carried by every probability formula in this package. Bmag in T, Lcoh in
// mm, result for an axion-photon coupling of 1e-10 GeV^-1.
func BLHalfSquared(Bmag, Lcoh float64) float64 {
	lengthInMeters := Lcoh * mmToM

	tm := lightSpeed / naturalElectron / gevToEV // eV --> GeV
	sol := lengthInMeters * Bmag * tm / 2
	sol = sol * sol * 1.0e-20

	return sol
}
