package bezfit

import (
	"math"
	"testing"
)

func verifyRoots(t *testing.T, roots []float64, n int, want []float64) {
	t.Helper()
	if n != len(want) {
		t.Fatalf("got %d roots %v, want %d (%v)", n, roots[:n], len(want), want)
	}
	const epsilon = 1e-12
	for i, r := range roots[:n] {
		if math.Abs(r-want[i]) > epsilon {
			t.Errorf("root %d: got %g, want %g", i, r, want[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	// x² − 5x + 6 = (x−2)(x−3)
	roots, n := SolveQuadratic(6, -5, 1)
	verifyRoots(t, roots[:], n, []float64{2, 3})

	// x² + 1 has no real roots.
	_, n = SolveQuadratic(1, 0, 1)
	verifyRoots(t, nil, n, nil)

	// Nearly linear: 2x − 4.
	roots, n = SolveQuadratic(-4, 2, 0)
	verifyRoots(t, roots[:], n, []float64{2})
}

func TestSolveCubic(t *testing.T) {
	// (x−1)(x−2)(x−3) = x³ − 6x² + 11x − 6
	roots, n := SolveCubic(-6, 11, -6, 1)
	if n != 3 {
		t.Fatalf("got %d roots, want 3", n)
	}
	sorted := []float64{roots[0], roots[1], roots[2]}
	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j] < sorted[i] {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if math.Abs(sorted[i]-want[i]) > 1e-9 {
			t.Errorf("root %d: got %g, want %g", i, sorted[i], want[i])
		}
	}

	// x³ − 1 has a single real root.
	roots, n = SolveCubic(-1, 0, 0, 1)
	if n != 1 || math.Abs(roots[0]-1) > 1e-12 {
		t.Errorf("got %v (%d roots), want single root 1", roots[:n], n)
	}

	// Degenerates to quadratic when c3 is zero.
	roots, n = SolveCubic(6, -5, 1, 0)
	verifyRoots(t, roots[:], n, []float64{2, 3})
}
