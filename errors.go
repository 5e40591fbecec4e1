package bezfit

import "errors"

var (
	// ErrInvalidInput reports input that violates a structural precondition,
	// such as too few samples or a curve with disconnected segments. It is
	// returned before any fitting work happens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateGeometry reports geometry that admits no meaningful
	// fit, such as all samples coinciding. The fitters degrade to a
	// heuristic result and carry it in FitReport.Err rather than failing.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrNonConvergence reports an iterative fit that exhausted its
	// iteration budget or stalled without an improving step. Like
	// ErrDegenerateGeometry it is carried in FitReport.Err alongside the
	// best result found.
	ErrNonConvergence = errors.New("did not converge")
)
