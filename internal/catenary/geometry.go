package catenary

import (
	"fmt"
	"math"
)

// AreaUnderCurve returns pi*a^2*(sinh(span/a) + span/a), the area between
// the curve and the baseline over [0, span].
func AreaUnderCurve(spec Spec, p Params) float64 {
	return math.Pi * p.A * p.A * (math.Sinh(spec.Span/p.A) + spec.Span/p.A)
}

// MidpointRadius returns the curve height at the horizontal midpoint.
func MidpointRadius(spec Spec, p Params) float64 {
	return p.Y(spec.Span / 2)
}

// MidpointDip returns how far the midpoint sags below the endpoint height.
// Negative values mean the curve rises above the endpoints, a signal the fit
// may be physically implausible for the given span/diameter ratio.
func MidpointDip(spec Spec, p Params) float64 {
	return spec.Diameter/2 - MidpointRadius(spec, p)
}

// MidpointGap returns the full vertical span of the curve at the midpoint,
// twice the midpoint radius.
func MidpointGap(spec Spec, p Params) float64 {
	return 2 * MidpointRadius(spec, p)
}

// Summary renders the curve geometry as plain text at 7-decimal precision.
func Summary(spec Spec, p Params) string {
	return fmt.Sprintf(
		"Catenary for diameter %g and span %g:\n"+
			"  Parameters (a, b): (%.7f, %.7f)\n"+
			"  Area under curve: %.7f\n"+
			"  Midpoint dip: %.7f\n"+
			"  Midpoint gap: %.7f",
		spec.Diameter, spec.Span, p.A, p.B,
		AreaUnderCurve(spec, p), MidpointDip(spec, p), MidpointGap(spec, p))
}

// Describe renders the curve geometry as markdown at 6-decimal precision.
func Describe(spec Spec, p Params) string {
	return fmt.Sprintf(
		"**Catenary parameters:**\n\n"+
			"- a = `%.6f`\n"+
			"- b = `%.6f`\n\n"+
			"**Geometric properties:**\n\n"+
			"- Area under curve: `%.6f m²`\n"+
			"- Midpoint dip: `%.6f m`\n"+
			"- Midpoint gap: `%.6f m`\n",
		p.A, p.B,
		AreaUnderCurve(spec, p), MidpointDip(spec, p), MidpointGap(spec, p))
}

// Y returns the curve height at x for the current parameters.
func (f *Fitter) Y(x float64) float64 {
	return f.params.Y(x)
}

// AreaUnderCurve returns the area under the current curve over [0, span].
func (f *Fitter) AreaUnderCurve() float64 {
	return AreaUnderCurve(f.spec, f.params)
}

// MidpointRadius returns the current curve height at the midpoint.
func (f *Fitter) MidpointRadius() float64 {
	return MidpointRadius(f.spec, f.params)
}

// MidpointDip returns the current midpoint sag below the endpoint height.
func (f *Fitter) MidpointDip() float64 {
	return MidpointDip(f.spec, f.params)
}

// MidpointGap returns the current full vertical span at the midpoint.
func (f *Fitter) MidpointGap() float64 {
	return MidpointGap(f.spec, f.params)
}

// Summary renders the current geometry as plain text.
func (f *Fitter) Summary() string {
	return Summary(f.spec, f.params)
}

// Describe renders the current geometry as markdown.
func (f *Fitter) Describe() string {
	return Describe(f.spec, f.params)
}
