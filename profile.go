package axionfield

import (
	"math"
	"math/cmplx"
)

// ProbabilityProfile computes the axion-photon conversion probability over a
// non-uniform field described by a sampled profile, using equation (28) from
// Redondo and Ringwald, "Light shining through walls" (arXiv:1011.3741).
//
// profile holds transverse field magnitudes in T sampled every deltaL mm
// along the path, so the coherence length is (len(profile)-1)*deltaL. Ea is
// the axion energy in keV, ma the axion mass in eV; mg and absLength follow
// the override rules of Probability. The complex phasor is accumulated with
// the midpoint rule over each profile segment, which keeps the computation
// time proportional to the profile length at the price of an uncontrolled
// integration error.
//
// The gas density is assumed homogeneous along the path.
func (f *Field) ProbabilityProfile(profile []float64, deltaL, Ea, ma, mg, absLength float64) float64 {
	lcoh := float64(len(profile)-1) * deltaL // mm
	if len(profile) < 2 {
		lcoh = 0
	}
	cohLength := lcoh * mmToM

	photonMass := f.photonMassOrGas(mg, Ea)

	fieldAverage := 0.0
	if len(profile) > 0 {
		for _, b := range profile {
			fieldAverage += b
		}
		fieldAverage /= float64(len(profile))
	}

	if ma == 0 && photonMass == 0 {
		return BLHalfSquared(fieldAverage, lcoh)
	}

	q := (ma*ma - photonMass*photonMass) / 2 / (Ea * keVToEV)

	gamma := f.absorptionOrGas(absLength, Ea)
	gammaL := gamma * cohLength * mToCm

	deltaIneV := deltaL * mmToM * phMeterIneV
	sum := complex(0, 0)
	for n := 0; n < len(profile)-1; n++ {
		bMiddle := 0.5 * (profile[n] + profile[n+1])

		lStepIneV := (float64(n) + 0.5) * deltaIneV
		lStepInCm := (float64(n) + 0.5) * deltaL * mmToCm

		phasor := cmplx.Exp(complex(0.5*gamma*lStepInCm, -q*lStepIneV))
		sum += complex(bMiddle*deltaL, 0) * phasor // T by mm
	}

	rho := cmplx.Abs(sum)
	// The midpoint sum carries physical T*mm units, recovered in natural
	// units through the unit prefactor BLHalfSquared(1, 1).
	return math.Exp(-gammaL) * rho * rho * BLHalfSquared(1, 1)
}
