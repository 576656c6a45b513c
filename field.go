package axionfield

import (
	"context"
	"log/slog"
	"math"
)

// Default field state, matching the reference helioscope setup.
const (
	DefaultMagneticField   = 2.5   // T
	DefaultCoherenceLength = 10000 // mm
	DefaultAxionEnergy     = 4.2   // keV
)

// Field computes axion-photon transition probabilities inside a magnetic
// field region.
//
// A Field caches the magnetic field magnitude, coherence length and axion
// energy; probability calls that supply all three update the cache for
// subsequent calls that omit them. A BufferGas may be assigned to model a
// gaseous medium, and a FieldMap to enable the quadrature-based strategy
// over a non-uniform field.
//
// The engine borrows the gas and field-map handles and performs no lifetime
// management over them. It is not safe for concurrent use: either guard a
// shared instance externally or use one Field per goroutine.
type Field struct {
	Bmag float64 // magnetic field, T
	Lcoh float64 // coherence length, mm
	Ea   float64 // axion energy, keV

	gas      *BufferGas
	fieldMap FieldMap

	logger *slog.Logger
}

// New returns a Field with the default state and a vacuum medium.
func New() *Field {
	return &Field{
		Bmag:   DefaultMagneticField,
		Lcoh:   DefaultCoherenceLength,
		Ea:     DefaultAxionEnergy,
		logger: slog.Default(),
	}
}

// SetMagneticField caches the magnetic field in T.
func (f *Field) SetMagneticField(b float64) { f.Bmag = b }

// SetCoherenceLength caches the coherence length in mm.
func (f *Field) SetCoherenceLength(l float64) { f.Lcoh = l }

// SetAxionEnergy caches the axion energy in keV.
func (f *Field) SetAxionEnergy(ea float64) { f.Ea = ea }

// AssignBufferGas associates a buffer gas with the engine. A nil gas means
// vacuum.
func (f *Field) AssignBufferGas(g *BufferGas) { f.gas = g }

// AssignFieldMap associates a magnetic field map with the engine, enabling
// FieldMapProbability. A nil map makes that strategy unavailable.
func (f *Field) AssignFieldMap(m FieldMap) { f.fieldMap = m }

// BufferGas returns the currently assigned gas, nil for vacuum.
func (f *Field) BufferGas() *BufferGas { return f.gas }

// SetLogger replaces the engine logger. A nil logger restores the default.
func (f *Field) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	f.logger = l
}

// photonMassOrGas returns mg unless it is zero and a gas is attached, in
// which case the gas photon mass at the given energy applies. Vacuum stays
// at zero.
func (f *Field) photonMassOrGas(mg, energyKeV float64) float64 {
	if mg == 0 && f.gas != nil {
		return f.gas.PhotonMass(energyKeV)
	}
	return mg
}

// absorptionOrGas returns absLength (cm-1) unless it is zero and a gas is
// attached, in which case the gas absorption at the given energy applies.
func (f *Field) absorptionOrGas(absLength, energyKeV float64) float64 {
	if absLength == 0 && f.gas != nil {
		return f.gas.PhotonAbsorptionLength(energyKeV)
	}
	return absLength
}

// Probability computes the axion-photon conversion probability in a constant
// magnetic field, using equation (11) from van Bibber, Phys. Rev. D 39 (1989).
//
// ma is the axion mass in eV. mg is the photon effective mass in eV; zero
// means derive it from the assigned buffer gas, or vacuum without one.
// absLength is the inverse photon absorption length in cm-1 with the same
// override rule. Field, coherence length and energy come from the cached
// state. The result is given for an axion-photon coupling of 1e-10 GeV^-1.
func (f *Field) Probability(ma, mg, absLength float64) float64 {
	cohLength := f.Lcoh * mmToM

	photonMass := f.photonMassOrGas(mg, f.Ea)

	if f.logger.Enabled(context.Background(), slog.LevelDebug) {
		f.logger.Debug("transmission probability",
			"photonMass_eV", photonMass, "axionMass_eV", ma,
			"energy_keV", f.Ea, "Lcoh_mm", f.Lcoh, "Bmag_T", f.Bmag)
	}

	if ma == 0 && photonMass == 0 {
		return BLHalfSquared(f.Bmag, f.Lcoh)
	}

	q := (ma*ma - photonMass*photonMass) / 2 / (f.Ea * keVToEV)
	l := cohLength * phMeterIneV
	phi := q * l

	gamma := f.absorptionOrGas(absLength, f.Ea)
	gammaL := gamma * cohLength * mToCm

	mFactor := phi*phi + gammaL*gammaL/4
	mFactor = 1 / mFactor

	return mFactor * BLHalfSquared(f.Bmag, f.Lcoh) *
		(1 + math.Exp(-gammaL) - 2*math.Exp(-gammaL/2)*math.Cos(phi))
}

// ProbabilityAt caches the magnetic field (T), coherence length (mm) and
// axion energy (keV) and then computes Probability with them.
func (f *Field) ProbabilityAt(Bmag, Lcoh, Ea, ma, mg, absLength float64) float64 {
	f.Bmag = Bmag
	f.Lcoh = Lcoh
	f.Ea = Ea

	return f.Probability(ma, mg, absLength)
}

// AbsorptionProbability computes the axion absorption probability in a
// constant magnetic field, using equation (18) from van Bibber, Phys. Rev. D
// 39 (1989). Arguments follow the Probability contract.
func (f *Field) AbsorptionProbability(ma, mg, absLength float64) float64 {
	cohLength := f.Lcoh * mmToM

	photonMass := f.photonMassOrGas(mg, f.Ea)

	if ma == 0 && photonMass == 0 {
		return BLHalfSquared(f.Bmag, f.Lcoh)
	}

	q := (ma*ma - photonMass*photonMass) / 2 / (f.Ea * keVToEV)
	l := cohLength * phMeterIneV
	phi := q * l

	gamma := f.absorptionOrGas(absLength, f.Ea)
	gammaL := gamma * cohLength * mToCm

	mFactor := phi*phi + gammaL*gammaL/4
	mFactor = 1 / mFactor

	return mFactor * BLHalfSquared(f.Bmag, f.Lcoh) * gammaL
}

// AbsorptionProbabilityAt caches (Bmag, Lcoh, Ea) and then computes
// AbsorptionProbability with them.
func (f *Field) AbsorptionProbabilityAt(Bmag, Lcoh, Ea, ma, mg, absLength float64) float64 {
	f.Bmag = Bmag
	f.Lcoh = Lcoh
	f.Ea = Ea

	return f.AbsorptionProbability(ma, mg, absLength)
}
