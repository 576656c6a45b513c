package axionfield

import (
	"math"
	"testing"
)

func TestProbabilityVacuumDegenerate(t *testing.T) {
	field := New()

	for _, b := range []float64{0, 1, 2, 2.5, 5} {
		for _, l := range []float64{0, 100, 10000} {
			got := field.ProbabilityAt(b, l, 4.2, 0, 0, 0)
			want := BLHalfSquared(b, l)
			AssertClose(t, "vacuum resonance probability", got, want, 0)
		}
	}
}

func TestProbabilityClosedFormReference(t *testing.T) {
	// B = 2 T, L = 10000 mm, Ea = 4.2 keV, ma = 0.1 eV, vacuum.
	field := New()
	got := field.ProbabilityAt(2, 10000, 4.2, 0.1, 0, 0)

	// Van Bibber eq. (11) with Gamma = 0, written out independently.
	q := 0.1 * 0.1 / 2 / (4.2 * 1e3)           // eV
	l := 10.0 * phMeterIneV                    // eV^-1
	phi := q * l
	want := BLHalfSquared(2, 10000) * (2 - 2*math.Cos(phi)) / (phi * phi)

	AssertRelClose(t, "closed-form probability", got, want, 1e-12)
	t.Logf("P(2 T, 10 m, 4.2 keV, 0.1 eV) = %.10g", got)
}

func TestProbabilityStateCache(t *testing.T) {
	field := New()

	first := field.ProbabilityAt(2, 10000, 4.2, 0.1, 0, 0)

	if field.Bmag != 2 || field.Lcoh != 10000 || field.Ea != 4.2 {
		t.Fatalf("ProbabilityAt did not cache state: B=%g L=%g Ea=%g",
			field.Bmag, field.Lcoh, field.Ea)
	}

	// The short form must reuse the cached triple.
	second := field.Probability(0.1, 0, 0)
	AssertClose(t, "cached-state probability", second, first, 0)
}

func TestProbabilityNeverClamped(t *testing.T) {
	// The formulas are total: off-resonance values are tiny but finite,
	// and nothing rejects a physically degenerate zero field.
	field := New()

	if p := field.ProbabilityAt(0, 10000, 4.2, 0.5, 0, 0); p != 0 {
		t.Errorf("zero field should give zero probability, got %g", p)
	}

	p := field.ProbabilityAt(2, 10000, 4.2, 1.0, 0, 0)
	if p <= 0 || math.IsNaN(p) {
		t.Errorf("off-resonance probability should be small and positive, got %g", p)
	}
}

func TestProbabilityGasOverrideRules(t *testing.T) {
	gas := NewBufferGas()
	if err := gas.SetDensity("He", 1e-6); err != nil {
		t.Fatal(err)
	}

	field := New()
	field.AssignBufferGas(gas)

	mg := gas.PhotonMass(field.Ea)
	if mg <= 0 {
		t.Fatalf("gas photon mass = %g, want positive", mg)
	}
	gamma := gas.PhotonAbsorptionLength(field.Ea)

	// mg == 0 and absLength == 0 derive both from the gas.
	derived := field.Probability(0.01, 0, 0)
	explicit := field.Probability(0.01, mg, gamma)
	AssertRelClose(t, "gas-derived vs explicit", derived, explicit, 1e-14)

	// An explicit photon mass must win over the gas.
	vacuumLike := field.Probability(0.01, mg/2, gamma)
	if vacuumLike == derived {
		t.Errorf("explicit photon mass ignored: %g == %g", vacuumLike, derived)
	}
}

func TestAbsorptionProbabilityVacuumDegenerate(t *testing.T) {
	field := New()
	got := field.AbsorptionProbabilityAt(2.5, 10000, 4.2, 0, 0, 0)
	AssertClose(t, "vacuum absorption probability", got, BLHalfSquared(2.5, 10000), 0)
}

func TestAbsorptionProbabilityMonotonicInAbsLength(t *testing.T) {
	field := New()
	field.SetMagneticField(2.5)
	field.SetCoherenceLength(10000)
	field.SetAxionEnergy(4.2)

	prev := 0.0
	probs := make([]float64, 0, 8)
	for _, gamma := range []float64{1e-7, 1e-6, 1e-5, 1e-4, 1e-3} {
		p := field.AbsorptionProbability(0.01, 0.01, gamma)
		if p < prev {
			t.Errorf("absorption probability decreased: Gamma=%g gave %g after %g",
				gamma, p, prev)
		}
		prev = p
		probs = append(probs, p)
	}

	t.Logf("absorption probabilities over Gamma sweep: %v", probs)
}
