// Package axionfield computes the probability that an axion converts into a
// detectable photon while traversing a magnetic field region.
//
// # Overview
//
// Axions mix with photons inside a transverse magnetic field. For an axion
// of mass ma and energy Ea crossing a field B over a coherence length L, the
// conversion probability follows the van Bibber closed form
//
//	P = M * (BL/2)^2 * (1 + exp(-GammaL) - 2*exp(-GammaL/2)*cos(phi))
//
// where phi is the accumulated phase from the axion-photon momentum
// transfer, GammaL the photon absorption in the traversed medium and
// M = 1/(phi^2 + GammaL^2/4). A buffer gas gives the photon an effective
// mass, moving the resonance (phi = 0) to a non-zero axion mass; tuning the
// gas density tunes the mass the experiment is sensitive to.
//
// # Probability strategies
//
// The Field engine implements four strategies:
//
//   - Probability / ProbabilityAt - constant-field closed form
//   - ProbabilityProfile - midpoint-rule integration over a sampled
//     non-uniform field profile (deterministic cost, uncontrolled error)
//   - FieldMapProbability - adaptive quadrature over an assigned FieldMap
//     (controlled accuracy with an error estimate, uncontrolled cost)
//   - AbsorptionProbability - the absorption observable instead of the
//     conversion one
//
// # Quick start
//
// Compute the conversion probability for a 2 T field, a 10 m coherence
// length and a 4.2 keV, 0.1 eV axion in vacuum:
//
//	field := axionfield.New()
//	p := field.ProbabilityAt(2, 10000, 4.2, 0.1, 0, 0)
//
// The full-argument call caches field, length and energy, so subsequent
// calls may supply only the mass:
//
//	p2 := field.Probability(0.01, 0, 0)
//
// Assign a buffer gas to compute in a gaseous medium; the photon mass and
// absorption are then derived from the gas whenever the explicit arguments
// are zero:
//
//	gas := axionfield.NewBufferGas()
//	gas.SetDensity("He", 2.4e-7)
//	field.AssignBufferGas(gas)
//	p3 := field.Probability(0.01, 0, 0)
//
// # Scan planning
//
// ResonanceFWHM measures the width of the resonance curve, and
// MassDensityScan builds on it to plan the (mass, density) settings of a
// continuous helioscope scan:
//
//	points, err := field.MassDensityScan("He", 0.15, 5)
//
// All units are experiment units: T, mm, keV for the field state, eV for
// axion and photon masses, cm-1 for absorption lengths, g/cm3 for gas
// densities. Probabilities are quoted at an axion-photon coupling of
// 1e-10 GeV^-1.
package axionfield
