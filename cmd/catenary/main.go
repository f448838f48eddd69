package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/catenalab/catenary/internal/catenary"
	"github.com/catenalab/catenary/internal/config"
	"github.com/catenalab/catenary/pkg/constants"
	"github.com/catenalab/catenary/pkg/output"
	"github.com/catenalab/catenary/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, markdown, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	precisionFlag := flag.Float64("precision", 0, "fit precision override")
	samplesFlag := flag.Int("samples", 0, "curve sample count override for csv output")
	flag.Parse()

	// Load the config file to get logging configuration and fit defaults
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := config.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	args := flag.Args()
	if len(args) != 2 {
		logger.Fatal("expected exactly two positional arguments: diameter span",
			zap.String("op", "main"),
			zap.Int("got", len(args)),
		)
	}

	diameter, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		logger.Fatal(fmt.Sprintf("invalid diameter %q", args[0]),
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	span, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		logger.Fatal(fmt.Sprintf("invalid span %q", args[1]),
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	spec := catenary.Spec{Diameter: diameter, Span: span}

	// Surface any convergence warnings before running the fit
	for _, warning := range validation.SpecWarnings(spec) {
		logger.Warn("Geometry warning: "+warning,
			zap.String("op", "main"),
		)
	}

	fitter, err := catenary.NewFitter(spec, logger)
	if err != nil {
		logger.Fatal("failed to construct fitter",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	precision := conf.Fit.Precision
	if *precisionFlag > 0 {
		precision = *precisionFlag
	}
	samples := conf.Fit.Samples
	if *samplesFlag > 0 {
		samples = *samplesFlag
	}

	result := fitter.Fit(precision)
	if !result.Converged {
		logger.Warn("fit stopped before reaching the requested precision",
			zap.String("op", "main"),
			zap.Float64("error", result.Err),
			zap.Int("iterations", result.Iterations),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(spec, result)
	case constants.OutputFormatMarkdown:
		output.MarkdownFormat(spec, result)
	case constants.OutputFormatCSV:
		output.CsvFormat(spec, result, samples)
	}
}
