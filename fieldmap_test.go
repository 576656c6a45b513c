package axionfield

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestProfileFieldMapInterpolation(t *testing.T) {
	m := NewProfileFieldMap([]float64{1, 2, 4}, 100)

	if l := m.TrackLength(); l != 200 {
		t.Fatalf("track length = %g, want 200", l)
	}

	AssertClose(t, "sample point", m.FieldAt(0), 1, 0)
	AssertClose(t, "sample point", m.FieldAt(100), 2, 0)
	AssertClose(t, "midpoint interpolation", m.FieldAt(50), 1.5, 1e-12)
	AssertClose(t, "midpoint interpolation", m.FieldAt(150), 3, 1e-12)
	AssertClose(t, "end of track", m.FieldAt(200), 4, 0)

	if b := m.FieldAt(-1); b != 0 {
		t.Errorf("field before the track = %g, want 0", b)
	}
	if b := m.FieldAt(201); b != 0 {
		t.Errorf("field past the track = %g, want 0", b)
	}
}

func TestProfileFieldMapSingleSample(t *testing.T) {
	m := NewProfileFieldMap([]float64{2}, 100)
	if l := m.TrackLength(); l != 0 {
		t.Errorf("single-sample track length = %g, want 0", l)
	}
}

func TestGridFieldMapConstantField(t *testing.T) {
	grid := NewGridFieldMap(Vector3{0, 0, 0}, 100, 3, 3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				grid.SetNode(i, j, k, Vector3{0, 1.5, 0})
			}
		}
	}

	// Trilinear interpolation of a constant field is the constant.
	for _, p := range []Vector3{{0, 0, 0}, {50, 50, 50}, {199, 13, 170}, {200, 200, 200}} {
		b := grid.FieldVector(p)
		AssertClose(t, "constant grid field", b.Y, 1.5, 1e-12)
	}

	// Outside the mesh the field vanishes.
	if b := grid.FieldVector(Vector3{-1, 0, 0}); b.Norm() != 0 {
		t.Errorf("field outside mesh = %+v, want zero", b)
	}
	if b := grid.FieldVector(Vector3{0, 0, 201}); b.Norm() != 0 {
		t.Errorf("field outside mesh = %+v, want zero", b)
	}
}

func TestGridFieldMapTrack(t *testing.T) {
	grid := NewGridFieldMap(Vector3{0, 0, 0}, 100, 3, 3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				grid.SetNode(i, j, k, Vector3{0.5, 2, 0})
			}
		}
	}

	if l := grid.TrackLength(); l != 0 {
		t.Fatalf("track length before SetTrack = %g, want 0", l)
	}

	grid.SetTrack(Vector3{100, 100, 0}, Vector3{0, 0, 1})
	AssertClose(t, "track length", grid.TrackLength(), 200, 1e-9)

	// The transverse component drops the projection on the track.
	want := math.Sqrt(0.5*0.5 + 2*2)
	AssertClose(t, "transverse field", grid.FieldAt(50), want, 1e-12)

	// A track starting outside the volume is not configured.
	grid.SetTrack(Vector3{-500, 100, 0}, Vector3{0, 0, 1})
	if l := grid.TrackLength(); l != 0 {
		t.Errorf("outside track length = %g, want 0", l)
	}
}

func TestGridFieldMapTransversalProfile(t *testing.T) {
	grid := NewGridFieldMap(Vector3{0, 0, 0}, 100, 3, 3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				grid.SetNode(i, j, k, Vector3{0, 2, 0})
			}
		}
	}

	profile := grid.TransversalProfile(Vector3{100, 100, 0}, Vector3{100, 100, 200}, 50)
	if len(profile) != 5 {
		t.Fatalf("profile has %d samples, want 5", len(profile))
	}
	for _, b := range profile {
		AssertClose(t, "profile sample", b, 2, 1e-12)
	}
}

func TestLoadGridFieldMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.dat")

	content := "# x y z Bx By Bz\n"
	for _, x := range []float64{0, 100} {
		for _, y := range []float64{0, 100} {
			for _, z := range []float64{0, 100} {
				content += formatNode(x, y, z, 0, 2, 0)
			}
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	grid, err := LoadGridFieldMap(path)
	if err != nil {
		t.Fatal(err)
	}

	b := grid.FieldVector(Vector3{50, 50, 50})
	AssertClose(t, "loaded grid field", b.Y, 2, 1e-12)

	grid.SetTrack(Vector3{50, 50, 0}, Vector3{0, 0, 1})
	AssertClose(t, "loaded grid track", grid.TrackLength(), 100, 1e-9)
}

func TestLoadGridFieldMapRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	short := filepath.Join(dir, "short.dat")
	if err := os.WriteFile(short, []byte("0 0 0 0 1 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGridFieldMap(short); err == nil {
		t.Error("expected an error for a degenerate mesh")
	}

	malformed := filepath.Join(dir, "malformed.dat")
	if err := os.WriteFile(malformed, []byte("0 0 0 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGridFieldMap(malformed); err == nil {
		t.Error("expected an error for malformed columns")
	}

	if _, err := LoadGridFieldMap(filepath.Join(dir, "missing.dat")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func formatNode(x, y, z, bx, by, bz float64) string {
	return fmt.Sprintf("%g %g %g %g %g %g\n", x, y, z, bx, by, bz)
}
