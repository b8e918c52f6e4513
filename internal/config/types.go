// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"mcfpack-cli/pkg/types"
)

// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
var ErrInvalidConfig = errors.New("invalid config")

type (
	// Config is the application configuration. All values have working
	// defaults; a config file only needs to state what differs.
	Config struct {
		Build   BuildConfig   `mapstructure:"build"`
		Publish PublishConfig `mapstructure:"publish"`
		UI      UIConfig      `mapstructure:"ui"`
	}

	// BuildConfig holds defaults for the build stages of the pipeline.
	BuildConfig struct {
		// Dir is the build directory handed to the external build system.
		Dir string `mapstructure:"dir"`
		// Type is the build configuration.
		Type types.BuildType `mapstructure:"type"`
		// Jobs is the parallel job count; 0 means auto-detect.
		Jobs types.JobCount `mapstructure:"jobs"`
	}

	// PublishConfig holds defaults for the publish stage.
	PublishConfig struct {
		// Dir is where produced packages are copied; empty disables publishing.
		Dir string `mapstructure:"dir"`
	}

	// UIConfig holds user-interface settings.
	UIConfig struct {
		// Verbose enables debug-level diagnostics.
		Verbose bool `mapstructure:"verbose"`
	}

	// InvalidConfigError is returned when a loaded Config fails validation.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		Field string
		Errs  []error
	}
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Build: BuildConfig{
			Dir:  "build",
			Type: types.BuildTypeRelease,
			Jobs: 0,
		},
	}
}

// Validate checks the loaded configuration's value types.
func (c *Config) Validate() error {
	if ok, errs := c.Build.Type.IsValid(); !ok {
		return &InvalidConfigError{Field: "build.type", Errs: errs}
	}
	if ok, errs := c.Build.Jobs.IsValid(); !ok {
		return &InvalidConfigError{Field: "build.jobs", Errs: errs}
	}
	if c.Build.Dir == "" {
		return &InvalidConfigError{Field: "build.dir", Errs: []error{errors.New("must be non-empty")}}
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config field %s: %v", e.Field, errors.Join(e.Errs...))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
