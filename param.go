package bezfit

import "math"

// ParamHeuristic selects how sample parameters are estimated when the
// samples don't carry their own.
type ParamHeuristic uint8

const (
	// ChordLength assigns parameters proportional to the cumulative
	// distance between consecutive samples. It is the default.
	ChordLength ParamHeuristic = iota
	// Uniform spaces parameters evenly, ignoring geometry.
	Uniform
	// Centripetal uses the square root of the chord distances, which is
	// less prone to overshooting near sharp turns.
	Centripetal
)

func (h ParamHeuristic) String() string {
	switch h {
	case ChordLength:
		return "chord-length"
	case Uniform:
		return "uniform"
	case Centripetal:
		return "centripetal"
	default:
		return "unknown"
	}
}

// ChordLengths returns the chord-length parameterization of points,
// normalized to [0, 1]. If all points coincide there are no chords to
// measure and the result degrades to a uniform spacing.
func ChordLengths(points []Point) []float64 {
	return accumulatedParams(points, func(a, b Point) float64 {
		return a.Distance(b)
	})
}

// CentripetalParams returns the centripetal parameterization of points,
// normalized to [0, 1]. Coincident input degrades like [ChordLengths].
func CentripetalParams(points []Point) []float64 {
	return accumulatedParams(points, func(a, b Point) float64 {
		return math.Sqrt(a.Distance(b))
	})
}

// UniformParams returns n evenly spaced parameters from 0 to 1.
func UniformParams(n int) []float64 {
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) / float64(n-1)
	}
	if n > 0 {
		ts[n-1] = 1.0
	}
	return ts
}

func accumulatedParams(points []Point, metric func(a, b Point) float64) []float64 {
	ts := make([]float64, len(points))
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += metric(points[i-1], points[i])
		ts[i] = total
	}
	if total == 0.0 {
		return UniformParams(len(points))
	}
	for i := range ts {
		ts[i] /= total
	}
	ts[len(ts)-1] = 1.0
	return ts
}

// EstimateParams applies the heuristic h to points.
func EstimateParams(points []Point, h ParamHeuristic) []float64 {
	switch h {
	case Uniform:
		return UniformParams(len(points))
	case Centripetal:
		return CentripetalParams(points)
	default:
		return ChordLengths(points)
	}
}
