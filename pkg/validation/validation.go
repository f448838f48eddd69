// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/catenalab/catenary/internal/catenary"
	"github.com/catenalab/catenary/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatMarkdown, constants.OutputFormatCSV:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s, or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatMarkdown,
		constants.OutputFormatCSV, format)
}

// SpecWarnings reports conditions that do not prevent a fit but are known to
// undermine convergence. The returned strings are display-ready.
func SpecWarnings(spec catenary.Spec) []string {
	var warnings []string
	if spec.Diameter > 0 && spec.Span/spec.Diameter > constants.MaxSpanRatio {
		warnings = append(warnings, fmt.Sprintf(
			"span/diameter ratio %.4f exceeds the practical limit %.4f; the search may return an unconverged best-effort result",
			spec.Span/spec.Diameter, constants.MaxSpanRatio))
	}
	return warnings
}
