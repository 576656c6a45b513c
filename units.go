package axionfield

// Physical constants and unit-conversion factors used by the probability
// formulas. The engine works in experiment units (T, mm, keV, eV, cm-1) and
// converts to natural units only inside the formulas, so every constant here
// documents the conversion it performs.
const (
	// lightSpeed is the speed of light in m/s.
	lightSpeed = 2.99792458e8

	// naturalElectron is the electron charge in natural units, sqrt(4*pi*alpha).
	naturalElectron = 0.302822120872

	// phMeterIneV converts photon path lengths from meters to eV^-1
	// (one meter expressed in inverse electronvolts, 1/(hbar*c)).
	phMeterIneV = 5.0677307171e6

	mmToM   = 1e-3 // mm -> m
	mmToCm  = 0.1  // mm -> cm
	mToCm   = 100  // m -> cm
	keVToEV = 1e3  // keV -> eV
	gevToEV = 1e9  // GeV -> eV
)
