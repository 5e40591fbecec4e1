package bezfit

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Number of uniform samples used to seed Newton iteration in Nearest.
const nearestSeedSamples = 16

// Nearest returns the squared distance and curve parameter of the point on
// the cubic closest to pt.
//
// The minimizer of |B(t)−pt|² satisfies (B(t)−pt)·B′(t) = 0, a quintic in t.
// Instead of solving the quintic we seed from the best of a coarse uniform
// sampling and polish with Newton steps clamped to [0, 1]. The endpoints are
// always candidates. Ties resolve to the smallest t.
func (c CubicBez) Nearest(pt Point) (distSq, t float64) {
	if c.P0 == c.P1 && c.P0 == c.P2 && c.P0 == c.P3 {
		return pt.DistanceSquared(c.P0), 0.0
	}
	bestT := 0.0
	bestR := pt.DistanceSquared(c.P0)
	consider := func(t float64) {
		r := pt.DistanceSquared(c.Eval(t))
		if r < bestR || (r == bestR && t < bestT) {
			bestR = r
			bestT = t
		}
	}
	consider(1.0)

	d := c.Differentiate()
	dd := d.Differentiate()
	// f(t) = (B(t)−pt)·B′(t), f′(t) = |B′(t)|² + (B(t)−pt)·B″(t)
	f := func(t float64) float64 {
		return c.Eval(t).Sub(pt).Dot(Vec2(d.Eval(t)))
	}
	df := func(t float64) float64 {
		dv := Vec2(d.Eval(t))
		return dv.Hypot2() + c.Eval(t).Sub(pt).Dot(Vec2(dd.Eval(t)))
	}

	seedT := 0.0
	seedR := bestR
	for i := 1; i < nearestSeedSamples; i++ {
		t := float64(i) / float64(nearestSeedSamples)
		r := pt.DistanceSquared(c.Eval(t))
		if r < seedR {
			seedR = r
			seedT = t
		}
	}
	t = seedT
	for iter := 0; iter < 12; iter++ {
		deriv := df(t)
		if deriv == 0.0 {
			break
		}
		next := t - f(t)/deriv
		next = min(max(next, 0.0), 1.0)
		if next == t {
			break
		}
		t = next
	}
	consider(t)
	return bestR, bestT
}

func (c CubicBez) Seg() Segment {
	return Segment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}
