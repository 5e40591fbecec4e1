// Package pointjson reads and writes the JSON control point record format
//
//	[{"x": 1.5, "y": 2.0, "on": true}, …]
//
// The "on" field marks on-curve points and defaults to true when omitted.
package pointjson

import (
	"encoding/json"
	"fmt"

	"github.com/bezfit/bezfit"
)

type record struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	On *bool   `json:"on,omitempty"`
}

// Marshal renders control points as a JSON array. The "on" field is always
// written, so output round-trips without relying on the default.
func Marshal(cps []bezfit.ControlPoint) ([]byte, error) {
	recs := make([]record, len(cps))
	for i, cp := range cps {
		on := cp.On
		recs[i] = record{X: cp.Pos.X, Y: cp.Pos.Y, On: &on}
	}
	return json.Marshal(recs)
}

// Unmarshal parses a JSON control point array. A record without an "on"
// field is on-curve. Errors wrap [bezfit.ErrInvalidInput].
func Unmarshal(data []byte) ([]bezfit.ControlPoint, error) {
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("%w: %v", bezfit.ErrInvalidInput, err)
	}
	cps := make([]bezfit.ControlPoint, len(recs))
	for i, rec := range recs {
		on := true
		if rec.On != nil {
			on = *rec.On
		}
		cps[i] = bezfit.ControlPoint{Pos: bezfit.Pt(rec.X, rec.Y), On: on}
	}
	return cps, nil
}

// EncodeCurve renders a curve through its control point representation.
func EncodeCurve(c bezfit.Curve) ([]byte, error) {
	return Marshal(c.ControlPoints())
}

// DecodeCurve parses a control point array and rebuilds the curve. A list
// ending in off-curve points denotes a closed curve, the form EncodeCurve
// emits for one.
func DecodeCurve(data []byte) (bezfit.Curve, error) {
	cps, err := Unmarshal(data)
	if err != nil {
		return bezfit.Curve{}, err
	}
	return bezfit.CurveFromControlPoints(cps)
}
