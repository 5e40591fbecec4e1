package bezfit

import (
	"math"
	"testing"
)

func TestChordLengths(t *testing.T) {
	// Sampled from a cubic arch; the reference values come from running the
	// chord-length computation on these exact samples.
	c := CubicBez{Pt(50, 200), Pt(100, 50), Pt(200, 50), Pt(250, 200)}
	ts := []float64{0, 0.1, 0.15, 0.3, 0.7, 0.85, 1.0}
	points := make([]Point, len(ts))
	for i, tt := range ts {
		points[i] = c.Eval(tt)
	}
	got := ChordLengths(points)
	want := []float64{0, 0.141, 0.2029, 0.3575, 0.6428, 0.7973, 1.0}
	if len(got) != len(want) {
		t.Fatalf("got %d parameters, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 5e-3 {
			t.Errorf("parameter %d: got %g, want %g", i, got[i], want[i])
		}
	}
}

func TestChordLengthsProperties(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(5, 1)}
	got := ChordLengths(points)
	if got[0] != 0 || got[len(got)-1] != 1 {
		t.Errorf("parameters must span [0, 1], got %v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Errorf("parameters must increase, got %v", got)
		}
	}
	// Chord lengths 1, 1, 4 give cumulative 0, 1/6, 2/6, 1.
	diff(t, []float64{0, 1.0 / 6.0, 2.0 / 6.0, 1}, got)
}

func TestChordLengthsCoincident(t *testing.T) {
	p := Pt(3, 3)
	got := ChordLengths([]Point{p, p, p})
	diff(t, []float64{0, 0.5, 1}, got)
}

func TestUniformParams(t *testing.T) {
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, UniformParams(5))
}

func TestCentripetalParams(t *testing.T) {
	// Chords 1 and 4; square roots 1 and 2 give cumulative 0, 1/3, 1.
	got := CentripetalParams([]Point{Pt(0, 0), Pt(1, 0), Pt(5, 0)})
	want := []float64{0, 1.0 / 3.0, 1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("parameter %d: got %g, want %g", i, got[i], want[i])
		}
	}
}

func TestEstimateParams(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(1, 0), Pt(3, 0)}
	diff(t, ChordLengths(points), EstimateParams(points, ChordLength))
	diff(t, UniformParams(3), EstimateParams(points, Uniform))
	diff(t, CentripetalParams(points), EstimateParams(points, Centripetal))
}
