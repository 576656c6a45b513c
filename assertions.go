package axionfield

import (
	"math"
	"testing"
)

// Test helpers for numerical properties of the probability formulas.
// They follow the usual t.Helper pattern so failures point at the caller.

// AssertClose verifies |got - want| <= tol.
func AssertClose(t *testing.T, name string, got, want, tol float64) {
	t.Helper()

	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("%s: got non-finite value %v", name, got)
	}
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.12g, want %.12g (abs tolerance %.3g, off by %.3g)",
			name, got, want, tol, math.Abs(got-want))
	}
}

// AssertRelClose verifies the relative deviation |got/want - 1| <= tol.
// A zero want falls back to an absolute comparison against tol.
func AssertRelClose(t *testing.T, name string, got, want, tol float64) {
	t.Helper()

	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("%s: got non-finite value %v", name, got)
	}
	if want == 0 {
		AssertClose(t, name, got, want, tol)
		return
	}
	rel := math.Abs(got/want - 1)
	if rel > tol {
		t.Errorf("%s = %.12g, want %.12g (rel tolerance %.3g, off by %.3g)",
			name, got, want, tol, rel)
	}
}

// AssertStrictlyIncreasing verifies the sequence grows at every step.
func AssertStrictlyIncreasing(t *testing.T, name string, xs []float64) {
	t.Helper()

	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Errorf("%s not strictly increasing at index %d: %.6g -> %.6g",
				name, i, xs[i-1], xs[i])
		}
	}
}
