package catenary

import (
	"errors"
	"math"
	"testing"

	"github.com/catenalab/catenary/pkg/constants"
	"github.com/catenalab/catenary/pkg/mathutil"
	"go.uber.org/zap"
)

func TestNewFitterValidation(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{
			name:    "Valid spec",
			spec:    Spec{Diameter: 1.0, Span: 0.6},
			wantErr: false,
		},
		{
			name:    "Zero span is legal",
			spec:    Spec{Diameter: 1.0, Span: 0.0},
			wantErr: false,
		},
		{
			name:    "Zero diameter",
			spec:    Spec{Diameter: 0.0, Span: 0.6},
			wantErr: true,
		},
		{
			name:    "Negative diameter",
			spec:    Spec{Diameter: -1.0, Span: 0.6},
			wantErr: true,
		},
		{
			name:    "Negative span",
			spec:    Spec{Diameter: 1.0, Span: -0.1},
			wantErr: true,
		},
		{
			name:    "NaN diameter",
			spec:    Spec{Diameter: math.NaN(), Span: 0.6},
			wantErr: true,
		},
		{
			name:    "Infinite diameter",
			spec:    Spec{Diameter: math.Inf(1), Span: 0.6},
			wantErr: true,
		},
		{
			name:    "NaN span",
			spec:    Spec{Diameter: 1.0, Span: math.NaN()},
			wantErr: true,
		},
		{
			name:    "Infinite span",
			spec:    Spec{Diameter: 1.0, Span: math.Inf(1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFitter(tt.spec, zap.NewNop())
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFitter(%+v) error = %v, wantErr %t", tt.spec, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSpec) {
				t.Errorf("NewFitter(%+v) error = %v, expected ErrInvalidSpec", tt.spec, err)
			}
		})
	}
}

func TestBoundaryErrorSentinel(t *testing.T) {
	spec := Spec{Diameter: 1.0, Span: 0.6}

	tests := []struct {
		name string
		a    float64
		b    float64
	}{
		{
			name: "Zero scale",
			a:    0.0,
			b:    1.0,
		},
		{
			name: "Cosh overflow",
			a:    1e-300,
			b:    5.0,
		},
		{
			name: "Negative tiny scale",
			a:    -1e-300,
			b:    5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoundaryError(spec, tt.a, tt.b)
			if got != constants.SentinelError {
				t.Errorf("BoundaryError(%v, %v) = %v, expected sentinel %v", tt.a, tt.b, got, constants.SentinelError)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("BoundaryError(%v, %v) = %v, expected a finite value", tt.a, tt.b, got)
			}
		})
	}
}

func TestBoundaryErrorAtSolution(t *testing.T) {
	spec := Spec{Diameter: 1.0, Span: 0.6}

	// At the fitted optimum the residual should be near zero; far from it,
	// strictly larger.
	fitter, err := NewFitter(spec, nil)
	if err != nil {
		t.Fatalf("NewFitter() error = %v", err)
	}
	result := fitter.Fit(0)

	atSolution := BoundaryError(spec, result.A, result.B)
	offSolution := BoundaryError(spec, result.A+0.2, result.B)
	if atSolution >= offSolution {
		t.Errorf("BoundaryError at solution = %v, off solution = %v; expected the solution to score lower", atSolution, offSolution)
	}
}

func TestFitConvergence(t *testing.T) {
	fitter, err := NewFitter(Spec{Diameter: 1.0, Span: 0.6}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFitter() error = %v", err)
	}

	result := fitter.Fit(0)

	if !result.Converged {
		t.Errorf("Fit() Converged = false, expected convergence for diameter=1.0 span=0.6")
	}
	if result.Err > 1e-6 {
		t.Errorf("Fit() Err = %v, expected <= 1e-6", result.Err)
	}
	if result.A <= 0 {
		t.Errorf("Fit() A = %v, expected > 0", result.A)
	}
	if result.A < 0.30 || result.A > 0.45 {
		t.Errorf("Fit() A = %v, expected within [0.30, 0.45] for this geometry", result.A)
	}
	// Equal endpoint heights put the vertex at the horizontal midpoint.
	if !mathutil.WithinTolerance(result.B, 0.3, 1e-3) {
		t.Errorf("Fit() B = %v, expected ~0.3 (span/2)", result.B)
	}
	if result.Iterations <= 0 {
		t.Errorf("Fit() Iterations = %d, expected > 0", result.Iterations)
	}
}

func TestFitSymmetry(t *testing.T) {
	spec := Spec{Diameter: 1.0, Span: 0.6}
	fitter, err := NewFitter(spec, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFitter() error = %v", err)
	}
	result := fitter.Fit(0)

	tests := []struct {
		name string
		x    float64
	}{
		{
			name: "Left endpoint",
			x:    0.0,
		},
		{
			name: "Right endpoint",
			x:    spec.Span,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitter.Y(tt.x)
			// The fit bounds the summed endpoint error, so each endpoint is
			// at least that close.
			if !mathutil.WithinTolerance(got, spec.Diameter/2, result.Err+1e-9) {
				t.Errorf("Y(%v) = %v, expected %v within %v", tt.x, got, spec.Diameter/2, result.Err)
			}
		})
	}
}

func TestFitMonotonicImprovement(t *testing.T) {
	fitter, err := NewFitter(Spec{Diameter: 1.0, Span: 0.6}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFitter() error = %v", err)
	}

	var history []float64
	fitter.fit(0, func(err float64) {
		history = append(history, err)
	})

	if len(history) == 0 {
		t.Fatal("fit() recorded no committed improvements")
	}
	for i := 1; i < len(history); i++ {
		if history[i] > history[i-1] {
			t.Errorf("incumbent error increased at step %d: %v -> %v", i, history[i-1], history[i])
		}
	}
}

func TestFitZeroSpan(t *testing.T) {
	spec := Spec{Diameter: 1.0, Span: 0.0}
	fitter, err := NewFitter(spec, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFitter() error = %v", err)
	}

	result := fitter.Fit(0)

	if !mathutil.IsFinite(result.A) || !mathutil.IsFinite(result.B) || !mathutil.IsFinite(result.Err) {
		t.Fatalf("Fit() returned non-finite result %+v", result)
	}
	if result.A <= 0 {
		t.Errorf("Fit() A = %v, expected > 0", result.A)
	}
	// With coincident endpoints the curve degenerates to y = diameter/2 at
	// the only reachable position.
	if !mathutil.WithinTolerance(fitter.Y(0), spec.Diameter/2, 1e-6) {
		t.Errorf("Y(0) = %v, expected ~%v", fitter.Y(0), spec.Diameter/2)
	}
	if !mathutil.WithinTolerance(fitter.MidpointRadius(), spec.Diameter/2, 1e-6) {
		t.Errorf("MidpointRadius() = %v, expected ~%v", fitter.MidpointRadius(), spec.Diameter/2)
	}
}

func TestFitBeyondPracticalRatio(t *testing.T) {
	// span/diameter = 0.67 sits past the practical limit; the search must
	// still terminate with a finite best-effort result, just unconverged.
	fitter, err := NewFitter(Spec{Diameter: 1.0, Span: 0.67}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFitter() error = %v", err)
	}

	result := fitter.Fit(0)

	if !mathutil.IsFinite(result.A) || !mathutil.IsFinite(result.Err) {
		t.Fatalf("Fit() returned non-finite result %+v", result)
	}
	if result.Converged {
		t.Errorf("Fit() Converged = true, expected best-effort termination beyond the practical ratio")
	}
	if result.Err <= constants.DefaultPrecision {
		t.Errorf("Fit() Err = %v, expected above the precision target", result.Err)
	}
}

func TestFitCustomPrecision(t *testing.T) {
	fitter, err := NewFitter(Spec{Diameter: 1.0, Span: 0.6}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFitter() error = %v", err)
	}

	loose := fitter.Fit(1e-3)
	if !loose.Converged {
		t.Errorf("Fit(1e-3) Converged = false, expected convergence at loose precision")
	}
	if loose.Err > 1e-3 {
		t.Errorf("Fit(1e-3) Err = %v, expected <= 1e-3", loose.Err)
	}

	tight := fitter.Fit(constants.DefaultPrecision)
	if tight.Iterations < loose.Iterations {
		t.Errorf("tight fit took %d iterations, loose took %d; expected tight >= loose", tight.Iterations, loose.Iterations)
	}
}

func TestFitStoresParams(t *testing.T) {
	fitter, err := NewFitter(Spec{Diameter: 1.0, Span: 0.6}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFitter() error = %v", err)
	}

	if fitter.Params() != DefaultParams() {
		t.Errorf("Params() before fit = %+v, expected defaults %+v", fitter.Params(), DefaultParams())
	}

	result := fitter.Fit(0)
	if fitter.Params() != result.Params {
		t.Errorf("Params() after fit = %+v, expected stored result %+v", fitter.Params(), result.Params)
	}
}
