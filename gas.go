package axionfield

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
)

// photonMassScale converts sqrt(electron density / molar weight) into a
// photon effective mass. m_gamma = 28.77 * sqrt(rho * FF / W) eV, with rho
// in g/cm3, FF the atomic form factor in e/atom and W in g/mol.
const photonMassScale = 28.77

// ErrUnknownGas reports a species with no tabulated atomic data.
type ErrUnknownGas struct{ Name string }

func (e ErrUnknownGas) Error() string {
	return fmt.Sprintf("axionfield: no atomic data for buffer gas %q", e.Name)
}

// BufferGas models the gaseous medium filling the magnetic field region.
//
// A BufferGas is a mix of species, each with its own partial density in
// g/cm3. It provides the photon effective mass and the photon absorption
// length as functions of the photon energy, interpolated from tabulated
// atomic form factors (e/atom) and mass attenuation coefficients (cm2/g).
//
// The zero-species gas behaves as vacuum: zero photon mass, zero absorption.
type BufferGas struct {
	names     []string
	densities []float64
	species   []gasSpecies

	logger *slog.Logger
}

// NewBufferGas returns an empty gas mix (vacuum until a density is set).
func NewBufferGas() *BufferGas {
	return &BufferGas{logger: slog.Default()}
}

// SetDensity assigns the partial density (g/cm3) of the named species,
// registering the species on first use.
func (g *BufferGas) SetDensity(name string, density float64) error {
	idx, err := g.findGasIndex(name)
	if err != nil {
		return err
	}
	g.densities[idx] = density
	return nil
}

// Density returns the partial density of the named species, registering the
// species on first use.
func (g *BufferGas) Density(name string) (float64, error) {
	idx, err := g.findGasIndex(name)
	if err != nil {
		return 0, err
	}
	return g.densities[idx], nil
}

func (g *BufferGas) findGasIndex(name string) (int, error) {
	for i, n := range g.names {
		if n == name {
			return i, nil
		}
	}
	sp, ok := gasData[name]
	if !ok {
		return 0, ErrUnknownGas{Name: name}
	}
	g.names = append(g.names, name)
	g.densities = append(g.densities, 0)
	g.species = append(g.species, sp)
	return len(g.names) - 1, nil
}

// PhotonMass returns the photon effective mass in eV acquired in this medium
// at the given photon energy in keV.
func (g *BufferGas) PhotonMass(energyKeV float64) float64 {
	sum := 0.0
	for i := range g.names {
		ff, err := interpolate(g.species[i].factorEnergy, g.species[i].formFactor, energyKeV)
		if err != nil {
			g.logger.Error("buffer gas form factor lookup failed",
				"gas", g.names[i], "energy_keV", energyKeV, "err", err)
			continue
		}
		sum += g.densities[i] * ff / g.species[i].weight
	}
	return photonMassScale * math.Sqrt(sum)
}

// PhotonAbsorptionLength returns the inverse photon absorption length
// Gamma in cm-1 at the given photon energy in keV.
func (g *BufferGas) PhotonAbsorptionLength(energyKeV float64) float64 {
	attLength := 0.0
	for i := range g.names {
		mu, err := interpolate(g.species[i].absEnergy, g.species[i].absCoeff, energyKeV)
		if err != nil {
			g.logger.Error("buffer gas absorption lookup failed",
				"gas", g.names[i], "energy_keV", energyKeV, "err", err)
			continue
		}
		attLength += g.densities[i] * mu
	}
	return attLength
}

// PhotonAbsorptionLengthIneV returns the absorption length expressed in eV.
func (g *BufferGas) PhotonAbsorptionLengthIneV(energyKeV float64) float64 {
	return cmToEV(g.PhotonAbsorptionLength(energyKeV))
}

// cmToEV transforms an inverse length from cm-1 to eV.
func cmToEV(lInv float64) float64 {
	return lInv / phMeterIneV / 0.01
}

// DensityForMass inverts PhotonMass for the first registered species: it
// returns the density in g/cm3 at which a photon of the given energy (keV)
// acquires an effective mass of massEv. The mix must contain exactly the
// species whose density is being tuned; contributions from other registered
// species are not taken into account.
func (g *BufferGas) DensityForMass(massEv, energyKeV float64) (float64, error) {
	if len(g.names) == 0 {
		return 0, fmt.Errorf("axionfield: DensityForMass on a gas with no species")
	}
	sp := g.species[0]
	ff, err := interpolate(sp.factorEnergy, sp.formFactor, energyKeV)
	if err != nil {
		return 0, fmt.Errorf("axionfield: form factor for %s: %w", g.names[0], err)
	}
	m := massEv / photonMassScale
	return m * m * sp.weight / ff, nil
}

// interpolate evaluates the piecewise-linear table y(x) at the given point.
// Points outside the tabulated range are an error, never extrapolated.
func interpolate(xs, ys []float64, x float64) (float64, error) {
	if len(xs) < 2 || x < xs[0] || x > xs[len(xs)-1] {
		return 0, fmt.Errorf("energy %g keV outside tabulated range [%g, %g]",
			x, first(xs), last(xs))
	}
	i := sort.SearchFloat64s(xs, x)
	if i > 0 && (i == len(xs) || xs[i] != x) {
		i--
	}
	if i == len(xs)-1 {
		i--
	}
	m := (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
	return ys[i] + m*(x-xs[i]), nil
}

func first(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return xs[0]
}

func last(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return xs[len(xs)-1]
}
