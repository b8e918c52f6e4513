// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
)

// ErrInvalidJobCount is the sentinel error wrapped by InvalidJobCountError.
var ErrInvalidJobCount = errors.New("invalid job count")

type (
	// JobCount is the number of parallel jobs passed to the external build
	// system. The zero value means "auto-detect": it is resolved to the
	// host's available parallelism at pipeline-start time. Negative values
	// are invalid.
	JobCount int

	// InvalidJobCountError is returned when a JobCount value is negative.
	// It wraps ErrInvalidJobCount for errors.Is() compatibility.
	InvalidJobCountError struct {
		Value JobCount
	}
)

// String returns the decimal string representation of the JobCount.
func (j JobCount) String() string { return strconv.Itoa(int(j)) }

// IsValid returns whether the JobCount is valid (non-negative).
func (j JobCount) IsValid() (bool, []error) {
	if j < 0 {
		return false, []error{&InvalidJobCountError{Value: j}}
	}
	return true, nil
}

// IsAuto returns whether the JobCount requests auto-detection.
func (j JobCount) IsAuto() bool { return j == 0 }

// Resolve returns the concrete job count: the value itself when positive,
// or the host's available parallelism when the value is zero.
func (j JobCount) Resolve() JobCount {
	if j > 0 {
		return j
	}
	return JobCount(runtime.NumCPU())
}

// Error implements the error interface for InvalidJobCountError.
func (e *InvalidJobCountError) Error() string {
	return fmt.Sprintf("invalid job count %d: must be zero (auto) or positive", e.Value)
}

// Unwrap returns ErrInvalidJobCount for errors.Is() compatibility.
func (e *InvalidJobCountError) Unwrap() error { return ErrInvalidJobCount }
