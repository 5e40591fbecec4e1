package bezfit

import (
	"fmt"
	"math"
)

type SegmentKind uint8

const (
	// A quadratic Bézier segment.
	QuadKind SegmentKind = iota + 1
	// A cubic Bézier segment.
	CubicKind
)

func (k SegmentKind) String() string {
	switch k {
	case QuadKind:
		return "quadratic"
	case CubicKind:
		return "cubic"
	default:
		return fmt.Sprintf("SegmentKind(%d)", uint8(k))
	}
}

// Degree returns the polynomial degree of segments of this kind.
func (k SegmentKind) Degree() int {
	switch k {
	case QuadKind:
		return 2
	case CubicKind:
		return 3
	default:
		return 0
	}
}

// Segment represents a quadratic or cubic Bézier segment. This type acts as
// a sort of tagged union over [QuadBez] and [CubicBez].
type Segment struct {
	// We don't use an interface for Segment because we want {Quad,
	// Cubic}.Subdivide to return their respective types, not Segment. But we
	// cannot encode that in Go interfaces.
	//
	// This also avoids having to allocate for segments.

	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	// P3 is unused when Kind == QuadKind.
	P3 Point
}

// Quad returns the quadratic Bézier represented by this segment. This is
// only valid when Kind == QuadKind.
func (seg Segment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg Segment) Cubic() CubicBez {
	switch seg.Kind {
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		panic("invalid segment kind")
	}
}

func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		panic("invalid segment kind")
	}
}

// Tangent returns the first derivative of the segment at t.
func (seg Segment) Tangent(t float64) Vec2 {
	switch seg.Kind {
	case QuadKind:
		return Vec2(seg.Quad().Differentiate().Eval(t))
	case CubicKind:
		return Vec2(seg.Cubic().Differentiate().Eval(t))
	default:
		panic("invalid segment kind")
	}
}

func (seg Segment) Start() Point {
	return seg.P0
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		panic("invalid segment kind")
	}
}

func (seg Segment) Subdivide() (Segment, Segment) {
	switch seg.Kind {
	case QuadKind:
		q0, q1 := seg.Quad().Subdivide()
		return q0.Seg(), q1.Seg()
	case CubicKind:
		c0, c1 := seg.Cubic().Subdivide()
		return c0.Seg(), c1.Seg()
	default:
		panic("invalid segment kind")
	}
}

func (seg Segment) Subsegment(t0, t1 float64) Segment {
	switch seg.Kind {
	case QuadKind:
		return seg.Quad().Subsegment(t0, t1).Seg()
	case CubicKind:
		return seg.Cubic().Subsegment(t0, t1).Seg()
	default:
		panic("invalid segment kind")
	}
}

// Nearest returns the curve parameter and euclidean distance of the point on
// the segment closest to pt.
func (seg Segment) Nearest(pt Point) (t, dist float64) {
	if seg.IsDegenerate() {
		return 0.0, pt.Distance(seg.P0)
	}
	var distSq float64
	switch seg.Kind {
	case QuadKind:
		distSq, t = seg.Quad().Nearest(pt)
	case CubicKind:
		distSq, t = seg.Cubic().Nearest(pt)
	default:
		panic("invalid segment kind")
	}
	return t, math.Sqrt(distSq)
}

// IsDegenerate reports whether all of the segment's control points coincide.
func (seg Segment) IsDegenerate() bool {
	switch seg.Kind {
	case QuadKind:
		return seg.P0 == seg.P1 && seg.P0 == seg.P2
	case CubicKind:
		return seg.P0 == seg.P1 && seg.P0 == seg.P2 && seg.P0 == seg.P3
	default:
		return false
	}
}

// Weights returns the Bernstein basis weights of the segment's control
// points at t. For quadratics only the first three entries are meaningful;
// the second return value is the number of control points.
func (seg Segment) Weights(t float64) ([4]float64, int) {
	mt := 1.0 - t
	switch seg.Kind {
	case QuadKind:
		return [4]float64{mt * mt, 2.0 * mt * t, t * t}, 3
	case CubicKind:
		return [4]float64{mt * mt * mt, 3.0 * mt * mt * t, 3.0 * mt * t * t, t * t * t}, 4
	default:
		panic("invalid segment kind")
	}
}

// ControlPoints returns the segment's control points, on-curve endpoints
// included.
func (seg Segment) ControlPoints() []Point {
	switch seg.Kind {
	case QuadKind:
		return []Point{seg.P0, seg.P1, seg.P2}
	case CubicKind:
		return []Point{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		panic("invalid segment kind")
	}
}
