// Package constants provides shared constants for the catenary application.
package constants

// Fitting constants
const (
	// DefaultA is the starting value for the catenary scale parameter
	DefaultA = 1.0

	// DefaultB is the starting value for the catenary horizontal offset
	DefaultB = 1.0

	// DefaultStep is the initial step size for the compass search
	DefaultStep = 0.1

	// StepReductionFactor divides the step size when no candidate improves
	StepReductionFactor = 10.0

	// DefaultPrecision is the default fit precision target
	DefaultPrecision = 1e-7

	// SentinelError is the large finite value substituted for numerically
	// invalid boundary-error evaluations; it keeps all candidates comparable
	SentinelError = 1e12

	// MaxSpanRatio is the practical span/diameter limit beyond which the
	// search is not guaranteed to converge
	MaxSpanRatio = 0.6627
)

// Sampling constants
const (
	// DefaultSampleCount is the number of curve points sampled for output
	DefaultSampleCount = 200

	// MinSampleCount is the smallest sample count that spans the domain
	MinSampleCount = 2
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatMarkdown is the markdown output format
	OutputFormatMarkdown = "markdown"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the fit API
	DefaultServerAddress = ":8080"

	// DefaultMaxSampleCount is the largest per-request curve sample count
	DefaultMaxSampleCount = 10000
)
