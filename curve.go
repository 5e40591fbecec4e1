package bezfit

import "fmt"

// Curve is a sequence of Bézier segments joined end to start. A closed
// curve's last segment additionally ends where the first one starts.
type Curve struct {
	Segments []Segment
	Closed   bool
}

// NewCurve builds an open curve from segments, validating that consecutive
// segments join with C0 continuity. It returns an error wrapping
// [ErrInvalidInput] if a join is broken or no segments are given.
func NewCurve(segments ...Segment) (Curve, error) {
	if len(segments) == 0 {
		return Curve{}, fmt.Errorf("%w: curve needs at least one segment", ErrInvalidInput)
	}
	for i := 1; i < len(segments); i++ {
		if segments[i].Start() != segments[i-1].End() {
			return Curve{}, fmt.Errorf("%w: segment %d starts at %v, previous ends at %v",
				ErrInvalidInput, i, segments[i].Start(), segments[i-1].End())
		}
	}
	return Curve{Segments: segments}, nil
}

// NewClosedCurve builds a closed curve from segments. In addition to the C0
// joins checked by [NewCurve], the last segment must end at the first
// segment's start point.
func NewClosedCurve(segments ...Segment) (Curve, error) {
	c, err := NewCurve(segments...)
	if err != nil {
		return Curve{}, err
	}
	if c.End() != c.Start() {
		return Curve{}, fmt.Errorf("%w: closed curve ends at %v, starts at %v",
			ErrInvalidInput, c.End(), c.Start())
	}
	c.Closed = true
	return c, nil
}

// Start returns the start point of the first segment.
func (c Curve) Start() Point {
	return c.Segments[0].Start()
}

// End returns the end point of the last segment.
func (c Curve) End() Point {
	return c.Segments[len(c.Segments)-1].End()
}

// Join appends o's segments to c. The first segment of o must start where c
// ends, and neither curve may be closed.
func (c Curve) Join(o Curve) (Curve, error) {
	if c.Closed || o.Closed {
		return Curve{}, fmt.Errorf("%w: cannot join closed curves", ErrInvalidInput)
	}
	if len(o.Segments) == 0 {
		return c, nil
	}
	if len(c.Segments) == 0 {
		return o, nil
	}
	if o.Start() != c.End() {
		return Curve{}, fmt.Errorf("%w: joined curve starts at %v, previous ends at %v",
			ErrInvalidInput, o.Start(), c.End())
	}
	segments := make([]Segment, 0, len(c.Segments)+len(o.Segments))
	segments = append(segments, c.Segments...)
	segments = append(segments, o.Segments...)
	return Curve{Segments: segments}, nil
}

// Subdivide halves every segment, returning a curve that traces the same
// locus with twice the segment count.
func (c Curve) Subdivide() Curve {
	segments := make([]Segment, 0, 2*len(c.Segments))
	for _, seg := range c.Segments {
		s0, s1 := seg.Subdivide()
		segments = append(segments, s0, s1)
	}
	return Curve{Segments: segments, Closed: c.Closed}
}

// Nearest returns the index of the segment closest to pt, the curve
// parameter on that segment, and the euclidean distance. Ties resolve to
// the earliest segment.
func (c Curve) Nearest(pt Point) (seg int, t float64, dist float64) {
	var best option[float64]
	for i, s := range c.Segments {
		st, sd := s.Nearest(pt)
		if !best.isSet || sd < best.value {
			best.set(sd)
			seg = i
			t = st
		}
	}
	return seg, t, best.value
}

// ControlPoint is a point of the flat control point representation of a
// curve. On-curve points are segment endpoints; off-curve points are the
// interior Bézier control points between them.
type ControlPoint struct {
	Pos Point
	On  bool
}

// ControlPoints flattens the curve to its control point list. Shared join
// points appear once. For closed curves the closing on-curve point (equal
// to the first) is omitted.
func (c Curve) ControlPoints() []ControlPoint {
	var cps []ControlPoint
	for i, seg := range c.Segments {
		pts := seg.ControlPoints()
		start := 0
		if i > 0 {
			start = 1
		}
		for j := start; j < len(pts); j++ {
			on := j == 0 || j == len(pts)-1
			cps = append(cps, ControlPoint{Pos: pts[j], On: on})
		}
	}
	if c.Closed && len(cps) > 1 {
		cps = cps[:len(cps)-1]
	}
	return cps
}

// CurveFromControlPoints rebuilds a curve from its flat control point list.
// Two consecutive on-curve points become a straight chord, encoded as a
// quadratic with its control point at the chord midpoint. One off-curve
// point between on-curve points yields a quadratic, two yield a cubic. More
// than two consecutive off-curve points, or a list that does not start
// on-curve, is invalid.
//
// A list ending in off-curve points closes the curve: the trailing run
// wraps around to the first point, mirroring how [Curve.ControlPoints]
// flattens closed curves.
func CurveFromControlPoints(cps []ControlPoint) (Curve, error) {
	if len(cps) < 2 {
		return Curve{}, fmt.Errorf("%w: need at least two control points, got %d", ErrInvalidInput, len(cps))
	}
	if !cps[0].On {
		return Curve{}, fmt.Errorf("%w: control point list must start on-curve", ErrInvalidInput)
	}
	var segments []Segment
	start := cps[0].Pos
	var off []Point
	for _, cp := range cps[1:] {
		if !cp.On {
			off = append(off, cp.Pos)
			continue
		}
		seg, err := segmentBetween(start, off, cp.Pos)
		if err != nil {
			return Curve{}, err
		}
		segments = append(segments, seg)
		start = cp.Pos
		off = off[:0]
	}
	if len(off) != 0 {
		seg, err := segmentBetween(start, off, cps[0].Pos)
		if err != nil {
			return Curve{}, err
		}
		segments = append(segments, seg)
		return NewClosedCurve(segments...)
	}
	return NewCurve(segments...)
}

func segmentBetween(start Point, off []Point, end Point) (Segment, error) {
	switch len(off) {
	case 0:
		return Line{start, end}.Seg(), nil
	case 1:
		return QuadBez{start, off[0], end}.Seg(), nil
	case 2:
		return CubicBez{start, off[0], off[1], end}.Seg(), nil
	default:
		return Segment{}, fmt.Errorf("%w: %d consecutive off-curve points", ErrInvalidInput, len(off))
	}
}
