// Package output provides utilities for formatting and displaying fit results.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/catenalab/catenary/internal/catenary"
	"github.com/catenalab/catenary/pkg/sampling"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable summary of the fitted curve.
func PrettyFormat(spec catenary.Spec, result catenary.FitResult) {
	FprettyFormat(os.Stdout, spec, result)
}

// FprettyFormat writes the human-readable summary to w.
func FprettyFormat(w io.Writer, spec catenary.Spec, result catenary.FitResult) {
	p := message.NewPrinter(language.English)
	_, _ = p.Fprintf(w, "%s\n", catenary.Summary(spec, result.Params))
	_, _ = p.Fprintf(w, "  Final error: %.3g after %d iterations (converged: %t)\n",
		result.Err, result.Iterations, result.Converged)
}

// MarkdownFormat outputs the markdown description of the fitted curve.
func MarkdownFormat(spec catenary.Spec, result catenary.FitResult) {
	fmt.Print(catenary.Describe(spec, result.Params))
}

// CsvFormat outputs the sampled curve in comma-separated value format with
// the two endpoint markers appended.
func CsvFormat(spec catenary.Spec, result catenary.FitResult, samples int) {
	FcsvFormat(os.Stdout, spec, result, samples)
}

// FcsvFormat writes the sampled curve CSV to w.
func FcsvFormat(w io.Writer, spec catenary.Spec, result catenary.FitResult, samples int) {
	points := sampling.Curve(spec, result.Params, samples)
	endpoints := sampling.Endpoints(spec)

	fmt.Fprintf(w, `"kind","x","y"`+"\n")
	for _, pt := range points {
		fmt.Fprintf(w, `"curve","%.7f","%.7f"`+"\n", pt.X, pt.Y)
	}
	for _, pt := range endpoints {
		fmt.Fprintf(w, `"endpoint","%.7f","%.7f"`+"\n", pt.X, pt.Y)
	}
}
