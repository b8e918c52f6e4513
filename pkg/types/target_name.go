// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// TargetPrefix is the required prefix for packaging target names. Packaging
// targets are ordinary build-system targets whose build action produces a
// distributable archive; the prefix is the naming convention that marks them.
const TargetPrefix = "package-"

// ErrInvalidTargetName is the sentinel error wrapped by InvalidTargetNameError.
var ErrInvalidTargetName = errors.New("invalid target name")

type (
	// TargetName is the name of a packaging target (e.g., "package-my_app").
	// A valid name is non-empty and not whitespace-only. Names lacking the
	// "package-" prefix are accepted as input and normalized via Normalize.
	TargetName string

	// InvalidTargetNameError is returned when a TargetName value is empty or
	// whitespace-only. It wraps ErrInvalidTargetName for errors.Is() compatibility.
	InvalidTargetNameError struct {
		Value TargetName
	}
)

// String returns the string representation of the TargetName.
func (t TargetName) String() string { return string(t) }

// IsValid returns whether the TargetName is valid.
// A valid name must be non-empty and not whitespace-only.
func (t TargetName) IsValid() (bool, []error) {
	if strings.TrimSpace(string(t)) == "" {
		return false, []error{&InvalidTargetNameError{Value: t}}
	}
	return true, nil
}

// IsNormalized returns whether the name already carries the TargetPrefix.
func (t TargetName) IsNormalized() bool {
	return strings.HasPrefix(string(t), TargetPrefix)
}

// Normalize returns the name with the TargetPrefix prepended if absent.
// Normalization is idempotent: normalizing an already-normalized name
// returns it unchanged, so the prefix never appears twice.
func (t TargetName) Normalize() TargetName {
	if t.IsNormalized() {
		return t
	}
	return TargetName(TargetPrefix + string(t))
}

// Error implements the error interface for InvalidTargetNameError.
func (e *InvalidTargetNameError) Error() string {
	return fmt.Sprintf("invalid target name %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidTargetName for errors.Is() compatibility.
func (e *InvalidTargetNameError) Unwrap() error { return ErrInvalidTargetName }
