// Package config defines the data structures related to configuration and
// includes functions for loading and applying defaults to the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/catenalab/catenary/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the catenary CLI.
type Configuration struct {
	Fit     FitConfig     `yaml:"fit,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// FitConfig holds default fitting parameters; CLI flags take precedence.
type FitConfig struct {
	Precision float64 `yaml:"precision,omitempty"` // error target for the fit
	Samples   int     `yaml:"samples,omitempty"`   // curve sample count for csv output
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, markdown, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file is not an error; the defaults are
// returned so the CLI works with positional arguments alone.
func LoadConfiguration(configPath string) (*Configuration, error) {
	var configuration Configuration

	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			configuration.ApplyDefaults()
			return &configuration, nil
		}
		return nil, fmt.Errorf("error checking config file, %s", err)
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills unset fitting parameters with the standard defaults.
func (conf *Configuration) ApplyDefaults() {
	if conf.Fit.Precision <= 0 {
		conf.Fit.Precision = constants.DefaultPrecision
	}
	if conf.Fit.Samples <= 0 {
		conf.Fit.Samples = constants.DefaultSampleCount
	}
}
