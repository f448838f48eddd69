// Package sampling produces sampled curve points for visualization
// consumers. Samples are recomputed on every call; nothing here retains
// state between calls.
package sampling

import (
	"github.com/catenalab/catenary/internal/catenary"
	"github.com/catenalab/catenary/pkg/constants"
)

// Point is a single sampled curve coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve samples n evenly spaced points over [0, spec.Span].
func Curve(spec catenary.Spec, p catenary.Params, n int) []Point {
	return CurveOver(p, 0, spec.Span, n)
}

// CurveOver samples n evenly spaced points over the caller-supplied domain
// [x0, x1]. Counts below two degenerate to the single point at x0.
func CurveOver(p catenary.Params, x0, x1 float64, n int) []Point {
	if n < constants.MinSampleCount {
		return []Point{{X: x0, Y: p.Y(x0)}}
	}
	points := make([]Point, n)
	width := x1 - x0
	for i := range points {
		x := x0 + float64(i)*width/float64(n-1)
		points[i] = Point{X: x, Y: p.Y(x)}
	}
	return points
}

// Endpoints returns the two fixed endpoint markers at height diameter/2.
func Endpoints(spec catenary.Spec) [2]Point {
	return [2]Point{
		{X: 0, Y: spec.Diameter / 2},
		{X: spec.Span, Y: spec.Diameter / 2},
	}
}
