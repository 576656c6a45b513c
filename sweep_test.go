package axionfield

import "testing"

func TestProbabilitySweepMatchesSequential(t *testing.T) {
	f := New()
	masses := MassGrid(0, 0.5, 101)

	points := f.ProbabilitySweep(masses, 4)
	if len(points) != len(masses) {
		t.Fatalf("got %d points, want %d", len(points), len(masses))
	}

	for i, p := range points {
		AssertClose(t, "sweep mass", p.Mass, masses[i], 1e-15)
		AssertRelClose(t, "sweep probability", p.Probability, f.Probability(masses[i], 0, 0), 1e-15)
	}
	t.Logf("sweep: %d samples, P(0)=%.3e, P(max)=%.3e",
		len(points), points[0].Probability, points[len(points)-1].Probability)
}

func TestProbabilitySweepDefaultWorkers(t *testing.T) {
	f := New()
	masses := MassGrid(0.01, 0.02, 5)

	points := f.ProbabilitySweep(masses, 0)
	if len(points) != 5 {
		t.Fatalf("got %d points, want 5", len(points))
	}
	for _, p := range points {
		if p.Probability < 0 {
			t.Errorf("negative probability %g at mass %g", p.Probability, p.Mass)
		}
	}
}

func TestMassGrid(t *testing.T) {
	grid := MassGrid(0, 1, 11)
	if len(grid) != 11 {
		t.Fatalf("got %d samples, want 11", len(grid))
	}
	AssertClose(t, "first", grid[0], 0, 1e-15)
	AssertClose(t, "last", grid[10], 1, 1e-15)
	AssertStrictlyIncreasing(t, "grid", grid)

	if got := MassGrid(0, 1, 1); got != nil {
		t.Errorf("expected nil grid for n=1, got %v", got)
	}
	if got := MassGrid(1, 1, 10); got != nil {
		t.Errorf("expected nil grid for empty range, got %v", got)
	}
}
