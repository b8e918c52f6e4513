// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"errors"

	"mcfpack-cli/pkg/types"
)

type (
	// Config is the immutable pipeline input, created once at startup from
	// user input and never mutated. Derived values live in ResolvedConfig.
	Config struct {
		// Target is the packaging target name as the user gave it.
		Target types.TargetName
		// BuildDir is the build directory path.
		BuildDir string
		// BuildType is the build configuration.
		BuildType types.BuildType
		// PublishDir, when non-empty, receives a copy of the produced
		// package as the final stage.
		PublishDir string
		// Jobs is the parallel job count; 0 means auto-detect.
		Jobs types.JobCount
		// Clean wipes the build directory before building.
		Clean bool
		// Verify extracts and validates the produced package.
		Verify bool
		// Test runs the structural checks; it implies Verify.
		Test bool
		// Verbose streams build-tool output and raises log verbosity.
		Verbose bool
	}

	// ResolvedConfig is a Config with its derived values computed: the
	// target normalized to carry the packaging prefix, the job count
	// resolved to a concrete number, and Verify forced on when Test is set.
	ResolvedConfig struct {
		Config
	}
)

// Resolve validates the Config and computes its derived values.
func (c Config) Resolve() (ResolvedConfig, error) {
	if ok, errs := c.Target.IsValid(); !ok {
		return ResolvedConfig{}, errors.Join(errs...)
	}
	if ok, errs := c.BuildType.IsValid(); !ok {
		return ResolvedConfig{}, errors.Join(errs...)
	}
	if ok, errs := c.Jobs.IsValid(); !ok {
		return ResolvedConfig{}, errors.Join(errs...)
	}
	if c.BuildDir == "" {
		return ResolvedConfig{}, errors.New("build directory must be non-empty")
	}

	resolved := ResolvedConfig{Config: c}
	resolved.Target = c.Target.Normalize()
	resolved.Jobs = c.Jobs.Resolve()
	if c.Test {
		resolved.Verify = true
	}
	return resolved, nil
}
