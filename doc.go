// Package bezfit approximates ordered 2D sample points with quadratic and
// cubic Bézier curves, using least-squares fitting.
//
// # Geometry
//
// The geometric vocabulary is small: [Point] and [Vec2] value types,
// the concrete curves [Line], [QuadBez], and [CubicBez], and [Segment], a
// tagged union over the Bézier forms. [Curve] strings segments together
// end-to-start, optionally closing the loop back to the first one.
// Curves can also be viewed as flat lists of on- and off-curve control
// points (see [Curve.ControlPoints] and [CurveFromControlPoints]), the
// representation used by the JSON point format.
//
// # Fitting
//
// Three fitters are provided, in increasing order of cost and quality:
//
//   - [FitLinear] solves a single linear least-squares system for the
//     interior control points, holding the endpoints and the sample
//     parameters fixed.
//   - [FitAlternating] alternates between re-estimating each sample's
//     parameter by projection onto the current curve and re-solving the
//     linear system, keeping the best curve seen so far.
//   - [FitGaussNewton] runs damped Gauss-Newton iterations over the
//     interior control points, and optionally the per-sample parameters,
//     with a backtracking line search.
//
// All fitters take an [Options] value and return a [FitReport] describing
// the residual sum of squares, the number of iterations spent, and whether
// the run converged. Degenerate inputs degrade to heuristic results with
// Converged set to false and the report's Err wrapping
// [ErrDegenerateGeometry] or [ErrNonConvergence]; structurally invalid
// inputs fail with [ErrInvalidInput].
//
// # Encodings
//
// The subpackage svgpath converts curves to and from the M/L/C/Q/Z subset
// of SVG path data. The subpackage pointjson handles the JSON control
// point record format {"x": …, "y": …, "on": …}.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//   - [Least-Squares Fitting of Data with B-Spline Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
// [Least-Squares Fitting of Data with B-Spline Curves]: https://www.geometrictools.com/Documentation/BSplineCurveLeastSquaresFit.pdf
package bezfit
