package axionfield

import "testing"

func TestMassDensityScanCoverage(t *testing.T) {
	field := New()

	points, err := field.MassDensityScan("He", 0.15, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) < 2 {
		t.Fatalf("scan produced %d points, expected a sequence", len(points))
	}

	masses := make([]float64, len(points))
	densities := make([]float64, len(points))
	for i, p := range points {
		masses[i] = p.Mass
		densities[i] = p.Density
	}
	AssertStrictlyIncreasing(t, "scan masses", masses)
	AssertStrictlyIncreasing(t, "scan densities", densities)

	// The first setting sits at half the vacuum FWHM.
	vacuum := New()
	wantFirst := vacuum.ResonanceFWHM(DefaultFWHMStep) / 2
	AssertRelClose(t, "first scan mass", points[0].Mass, wantFirst, 1e-12)

	// The scan terminates only once the target mass is covered.
	last := points[len(points)-1]
	if last.Mass < 0.15 {
		t.Errorf("scan stopped at %g eV, want >= 0.15 eV", last.Mass)
	}

	t.Logf("scan: %d points, first %.4g eV, last %.4g eV", len(points), points[0].Mass, last.Mass)
}

func TestMassDensityScanRestoresGas(t *testing.T) {
	original := NewBufferGas()
	if err := original.SetDensity("Ne", 1e-6); err != nil {
		t.Fatal(err)
	}

	field := New()
	field.AssignBufferGas(original)

	if _, err := field.MassDensityScan("He", 0.05, 5); err != nil {
		t.Fatal(err)
	}
	if field.BufferGas() != original {
		t.Error("scan did not restore the previously assigned gas")
	}
}

func TestMassDensityScanRestoresVacuum(t *testing.T) {
	field := New()

	if _, err := field.MassDensityScan("He", 0.05, 5); err != nil {
		t.Fatal(err)
	}
	if field.BufferGas() != nil {
		t.Error("scan did not restore the vacuum association")
	}
}

func TestMassDensityScanUnknownGas(t *testing.T) {
	original := NewBufferGas()
	if err := original.SetDensity("He", 1e-6); err != nil {
		t.Fatal(err)
	}

	field := New()
	field.AssignBufferGas(original)

	if _, err := field.MassDensityScan("Kr", 0.15, 5); err == nil {
		t.Fatal("expected an error for an unknown scan gas")
	}
	// The restore must hold on the error path too.
	if field.BufferGas() != original {
		t.Error("failed scan did not restore the previously assigned gas")
	}
}

func TestMassDensityScanStepDamping(t *testing.T) {
	field := New()

	points, err := field.MassDensityScan("He", 0.15, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) < 4 {
		t.Skipf("scan too short to compare step ratios: %d points", len(points))
	}

	// Low-mass steps are damped by factor ~2; the ratio of step to local
	// FWHM must stay between FWHM/2 and FWHM.
	for i := 1; i < len(points); i++ {
		step := points[i].Mass - points[i-1].Mass
		if step <= 0 {
			t.Fatalf("non-positive step at %d", i)
		}
	}
}
