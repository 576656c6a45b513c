package axionfield

import "math"

// Default accuracy parameters for FieldMapProbability, matching the
// reference integration setup.
const (
	DefaultAccuracy     = 0.1
	DefaultNumIntervals = 100
	DefaultQAWOLevels   = 20
)

// MapResult is the outcome of a field-map probability integration.
//
// On success Status is zero and ErrorEstimate holds the propagated absolute
// error of the probability. On quadrature failure Status carries the
// non-zero quadrature status and both values are zero; the tag keeps a
// failure code from being mistaken for a legitimate error estimate.
type MapResult struct {
	Probability   float64
	ErrorEstimate float64
	Status        int
}

// Failed reports whether the underlying quadrature aborted.
func (r MapResult) Failed() bool { return r.Status != 0 }

// FieldMapProbability computes the axion-photon conversion probability by
// integrating the assigned magnetic field map along its pre-set parametric
// track (Redondo-Ringwald equation (28), as in ProbabilityProfile, but with
// the integration driven by an adaptive quadrature that requests field
// evaluations on demand and reports an error estimate).
//
// Ea in keV, ma in eV; photon mass and absorption are taken from the
// assigned buffer gas, or vacuum without one. accuracy is the absolute and
// relative integration tolerance, numIntervals bounds the quadrature
// workspace, and qawoLevels bounds the oscillatory-rule resolution used in
// the off-resonance case.
//
// A missing field map or a track length <= 0 yields a zero MapResult and an
// error log entry; the call never panics.
func (f *Field) FieldMapProbability(Ea, ma, accuracy float64, numIntervals, qawoLevels int) MapResult {
	if f.fieldMap == nil {
		f.logger.Error("field map probability requires a magnetic field map; " +
			"assign one with Field.AssignFieldMap")
		return MapResult{}
	}
	if f.fieldMap.TrackLength() <= 0 {
		f.logger.Error("field map probability requires a configured track",
			"trackLength_mm", f.fieldMap.TrackLength())
		return MapResult{}
	}

	photonMass := 0.0 // vacuum
	if f.gas != nil {
		photonMass = f.gas.PhotonMass(Ea)
	}

	q := (ma*ma - photonMass*photonMass) / 2 / (Ea * keVToEV)
	q = q * phMeterIneV * mmToM // mm-1

	gamma := 0.0
	if f.gas != nil {
		gamma = f.gas.PhotonAbsorptionLength(Ea) * mmToCm // mm-1
	}

	if q == 0 {
		return f.resonanceIntegral(gamma, accuracy, numIntervals)
	}
	return f.offResonanceIntegral(q, gamma, accuracy, numIntervals, qawoLevels)
}

// resonanceIntegral handles q == 0, where the oscillatory weight reduces to
// one and a plain adaptive rule applies.
func (f *Field) resonanceIntegral(gamma, accuracy float64, numIntervals int) MapResult {
	fieldMap := f.fieldMap
	integrand := func(s float64) float64 {
		return fieldMap.FieldAt(s) * math.Exp(0.5*gamma*s)
	}

	length := fieldMap.TrackLength()
	value, abserr, status := integrateQAG(integrand, 0, length, accuracy, accuracy, numIntervals)
	if status != quadOK {
		return MapResult{Status: status}
	}

	gammaL := gamma * length
	c := math.Exp(-gammaL) * BLHalfSquared(1, 1)

	return MapResult{
		Probability:   c * value * value,
		ErrorEstimate: 2 * c * value * abserr,
	}
}

// offResonanceIntegral handles q != 0, integrating the cosine- and
// sine-weighted forms of the oscillating phasor separately.
func (f *Field) offResonanceIntegral(q, gamma, accuracy float64, numIntervals, qawoLevels int) MapResult {
	fieldMap := f.fieldMap
	integrand := func(s float64) float64 {
		return fieldMap.FieldAt(s) * math.Exp(0.5*gamma*s)
	}

	length := fieldMap.TrackLength()

	re, reErr, status := integrateQAWO(integrand, 0, length, q, qawoCosine,
		qawoLevels, accuracy, accuracy, numIntervals)
	if status != quadOK {
		return MapResult{Status: status}
	}

	im, imErr, status := integrateQAWO(integrand, 0, length, q, qawoSine,
		qawoLevels, accuracy, accuracy, numIntervals)
	if status != quadOK {
		return MapResult{Status: status}
	}

	gammaL := gamma * length
	c := math.Exp(-gammaL) * BLHalfSquared(1, 1)

	return MapResult{
		Probability:   c * (re*re + im*im),
		ErrorEstimate: 2 * c * math.Sqrt(re*re*reErr*reErr+im*im*imErr*imErr),
	}
}
