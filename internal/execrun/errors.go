// SPDX-License-Identifier: MPL-2.0

package execrun

import (
	"errors"
	"fmt"
	"strings"

	"mcfpack-cli/pkg/types"
)

var (
	// ErrToolMissing is the sentinel error wrapped by ToolMissingError.
	ErrToolMissing = errors.New("external tool missing")
	// ErrCommandFailed is the sentinel error wrapped by CommandFailedError.
	ErrCommandFailed = errors.New("external command failed")
)

type (
	// ToolMissingError is returned when the executable cannot be found on
	// the search path. It wraps ErrToolMissing for errors.Is() compatibility.
	ToolMissingError struct {
		Command string
	}

	// CommandFailedError is returned when an external command terminates
	// with a nonzero exit status. It wraps ErrCommandFailed for errors.Is()
	// compatibility.
	CommandFailedError struct {
		Command  string
		Args     []string
		ExitCode types.ExitCode
	}
)

// Error implements the error interface for ToolMissingError.
func (e *ToolMissingError) Error() string {
	return fmt.Sprintf("external tool %q not found on PATH", e.Command)
}

// Unwrap returns ErrToolMissing for errors.Is() compatibility.
func (e *ToolMissingError) Unwrap() error { return ErrToolMissing }

// Error implements the error interface for CommandFailedError.
func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("command %q exited with status %s",
		strings.Join(append([]string{e.Command}, e.Args...), " "), e.ExitCode)
}

// Unwrap returns ErrCommandFailed for errors.Is() compatibility.
func (e *CommandFailedError) Unwrap() error { return ErrCommandFailed }
