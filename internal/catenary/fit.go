package catenary

import (
	"math"

	"github.com/catenalab/catenary/pkg/constants"
	"github.com/catenalab/catenary/pkg/mathutil"
	"go.uber.org/zap"
)

// Fitter owns a Spec plus the current curve parameters. Parameters start at
// the default (1, 1) and are replaced by Fit; the derived-geometry methods
// evaluate whatever parameters are current, so they are only meaningful
// after a fit. A single Fitter must not run concurrent Fit calls; distinct
// Fitters are independent.
type Fitter struct {
	spec   Spec
	params Params
	logger *zap.Logger
}

// NewFitter constructs a Fitter for the given endpoint geometry.
func NewFitter(spec Spec, logger *zap.Logger) (*Fitter, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fitter{spec: spec, params: DefaultParams(), logger: logger}, nil
}

// Spec returns the endpoint geometry the fitter was constructed with.
func (f *Fitter) Spec() Spec {
	return f.spec
}

// Params returns the current curve parameters.
func (f *Fitter) Params() Params {
	return f.params
}

// BoundaryError measures how far candidate parameters (a, b) are from
// passing through both endpoints: the sum of absolute height errors at x = 0
// and x = span. Numerically invalid evaluations (a == 0, cosh overflow)
// yield the sentinel value so the search treats them as bad but comparable
// candidates instead of faulting.
func BoundaryError(spec Spec, a, b float64) float64 {
	if a == 0 {
		return constants.SentinelError
	}
	target := spec.Diameter / 2
	e1 := a*math.Cosh((0-b)/a) - target
	e2 := a*math.Cosh((spec.Span-b)/a) - target
	err := math.Abs(e1) + math.Abs(e2)
	if !mathutil.IsFinite(err) {
		return constants.SentinelError
	}
	return err
}

// Fit runs the compass search from the default starting point and stores the
// fitted parameters on the fitter. precision <= 0 selects the default.
func (f *Fitter) Fit(precision float64) FitResult {
	return f.fit(precision, nil)
}

// fit is the search loop. Each iteration evaluates all 9 candidates
// {a-s, a, a+s} x {b-s, b, b+s} (the center included, deliberately), commits
// the best strict improvement once per iteration, and only shrinks the step
// on iterations with no improvement. It terminates when the incumbent error
// reaches the precision target or the shrunk step falls below it. observe,
// when non-nil, receives the incumbent error after every committed move.
func (f *Fitter) fit(precision float64, observe func(err float64)) FitResult {
	if precision <= 0 {
		precision = constants.DefaultPrecision
	}

	step := constants.DefaultStep
	errVal := constants.SentinelError
	a, b := constants.DefaultA, constants.DefaultB
	iterations := 0

	for errVal > precision {
		iterations++
		improved := false
		bestErr := errVal
		bestA, bestB := a, b

		for _, ca := range [...]float64{a - step, a, a + step} {
			for _, cb := range [...]float64{b - step, b, b + step} {
				if candErr := BoundaryError(f.spec, ca, cb); candErr < bestErr {
					bestErr = candErr
					bestA, bestB = ca, cb
					improved = true
				}
			}
		}

		if !improved {
			step /= constants.StepReductionFactor
			if step < precision {
				break
			}
			continue
		}

		a, b = bestA, bestB
		errVal = bestErr
		if observe != nil {
			observe(errVal)
		}
	}

	f.params = Params{A: a, B: b}
	result := FitResult{
		Params:     f.params,
		Err:        errVal,
		Iterations: iterations,
		Converged:  errVal <= precision,
	}

	f.logger.Debug("catenary fit finished",
		zap.String("op", "catenary.Fit"),
		zap.Float64("a", result.A),
		zap.Float64("b", result.B),
		zap.Float64("error", result.Err),
		zap.Int("iterations", result.Iterations),
		zap.Bool("converged", result.Converged),
	)

	return result
}
