// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
)

const (
	// BuildTypeDebug builds with debug symbols and no optimization.
	BuildTypeDebug BuildType = "Debug"
	// BuildTypeRelease builds with full optimization and no debug symbols.
	BuildTypeRelease BuildType = "Release"
	// BuildTypeRelWithDebInfo builds optimized with debug symbols retained.
	BuildTypeRelWithDebInfo BuildType = "RelWithDebInfo"
	// BuildTypeMinSizeRel builds optimized for minimum binary size.
	BuildTypeMinSizeRel BuildType = "MinSizeRel"
)

// ErrInvalidBuildType is the sentinel error wrapped by InvalidBuildTypeError.
var ErrInvalidBuildType = errors.New("invalid build type")

type (
	// BuildType is a CMake build configuration name. Only the four standard
	// configurations are accepted; the external build system treats anything
	// else as a custom configuration, which this tool does not support.
	BuildType string

	// InvalidBuildTypeError is returned when a BuildType value is not one of
	// the four recognized configurations. It wraps ErrInvalidBuildType for
	// errors.Is() compatibility.
	InvalidBuildTypeError struct {
		Value BuildType
	}
)

// AllBuildTypes lists the accepted build configurations in display order.
func AllBuildTypes() []BuildType {
	return []BuildType{BuildTypeDebug, BuildTypeRelease, BuildTypeRelWithDebInfo, BuildTypeMinSizeRel}
}

// String returns the string representation of the BuildType.
func (b BuildType) String() string { return string(b) }

// IsValid returns whether the BuildType is one of the recognized configurations.
func (b BuildType) IsValid() (bool, []error) {
	switch b {
	case BuildTypeDebug, BuildTypeRelease, BuildTypeRelWithDebInfo, BuildTypeMinSizeRel:
		return true, nil
	}
	return false, []error{&InvalidBuildTypeError{Value: b}}
}

// Error implements the error interface for InvalidBuildTypeError.
func (e *InvalidBuildTypeError) Error() string {
	return fmt.Sprintf("invalid build type %q: must be one of Debug, Release, RelWithDebInfo, MinSizeRel", e.Value)
}

// Unwrap returns ErrInvalidBuildType for errors.Is() compatibility.
func (e *InvalidBuildTypeError) Unwrap() error { return ErrInvalidBuildType }
