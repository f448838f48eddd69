// Package catenary defines the data structures describing a catenary curve
// and includes functions for fitting the curve parameters to a pair of fixed
// endpoints and computing the derived geometry.
//
// The curve is y = a*cosh((x-b)/a). The two endpoints sit at x = 0 and
// x = Span, both at height Diameter/2.
package catenary

import (
	"errors"
	"fmt"
	"math"

	"github.com/catenalab/catenary/pkg/constants"
	"github.com/catenalab/catenary/pkg/mathutil"
)

// ErrInvalidSpec indicates endpoint geometry that cannot describe a catenary.
var ErrInvalidSpec = errors.New("invalid catenary spec")

// Spec describes the two fixed endpoints: Diameter is the vertical distance
// between them and Span the horizontal distance.
type Spec struct {
	Diameter float64
	Span     float64
}

// Validate checks that the endpoint geometry is physically meaningful.
// Span/diameter ratios beyond the practical convergence limit are legal here;
// validation.SpecWarnings reports those separately.
func (s Spec) Validate() error {
	if !mathutil.IsFinite(s.Diameter) || !mathutil.IsFinite(s.Span) {
		return fmt.Errorf("%w: diameter and span must be finite, got (%v, %v)", ErrInvalidSpec, s.Diameter, s.Span)
	}
	if s.Diameter <= 0 {
		return fmt.Errorf("%w: diameter must be > 0, got %v", ErrInvalidSpec, s.Diameter)
	}
	if s.Span < 0 {
		return fmt.Errorf("%w: span must be >= 0, got %v", ErrInvalidSpec, s.Span)
	}
	return nil
}

// Params holds the catenary parameters: scale A and horizontal offset B.
type Params struct {
	A float64
	B float64
}

// DefaultParams returns the search starting point.
func DefaultParams() Params {
	return Params{A: constants.DefaultA, B: constants.DefaultB}
}

// Y returns the curve height a*cosh((x-b)/a) at horizontal position x.
func (p Params) Y(x float64) float64 {
	return p.A * math.Cosh((x-p.B)/p.A)
}

// FitResult carries the fitted parameters along with the final boundary
// error, the number of search iterations, and whether the error target was
// reached. Converged == false means the step size underflowed first and the
// parameters are best-effort.
type FitResult struct {
	Params
	Err        float64
	Iterations int
	Converged  bool
}
