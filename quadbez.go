package bezfit

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

// Nearest returns the squared distance and curve parameter of the point on
// the quadratic closest to pt, using an analytical algorithm based on cubic
// root finding.
func (q QuadBez) Nearest(pt Point) (distSq, outT float64) {
	evalT := func(pt Point, tBest *float64, rBest *option[float64], t float64, p0 Point) {
		r := p0.Sub(pt).Hypot2()
		if !rBest.isSet || r < rBest.value || (r == rBest.value && t < *tBest) {
			rBest.set(r)
			*tBest = t
		}
	}
	tryT := func(
		q *QuadBez,
		pt Point,
		tBest *float64,
		rBest *option[float64],
		t float64,
	) bool {
		if !(t >= 0.0 && t <= 1.0) {
			return true
		}
		evalT(pt, tBest, rBest, t, q.Eval(t))
		return false
	}
	d0 := q.P1.Sub(q.P0)
	d1 := Vec2(q.P0).Add(Vec2(q.P2)).Sub(Vec2(q.P1).Mul(2.0))
	d := q.P0.Sub(pt)
	c0 := d.Dot(d0)
	c1 := 2.0*d0.Hypot2() + d.Dot(d1)
	c2 := 3.0 * d1.Dot(d0)
	c3 := d1.Hypot2()
	roots, n := SolveCubic(c0, c1, c2, c3)
	var rBest option[float64]
	tBest := 0.0
	needEnds := n == 0

	for _, t := range roots[:n] {
		b := tryT(&q, pt, &tBest, &rBest, t)
		if b {
			needEnds = true
		}
	}
	if needEnds {
		evalT(pt, &tBest, &rBest, 0.0, q.P0)
		evalT(pt, &tBest, &rBest, 1.0, q.P2)
	}

	return rBest.value, tBest
}

func (q QuadBez) Seg() Segment {
	return Segment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}
