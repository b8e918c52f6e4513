// SPDX-License-Identifier: MPL-2.0

package execrun

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"mcfpack-cli/pkg/types"
)

type (
	// Invocation describes one external command: the executable, its argv,
	// the working directory it runs in, and whether its output is streamed
	// to the caller's console or discarded.
	Invocation struct {
		// Command is the executable name or path.
		Command string
		// Args is the argument vector, one element per argument.
		Args []string
		// Dir is the working directory. Empty means the calling process's
		// current directory.
		Dir string
		// StreamOutput inherits the child's stdout/stderr when true;
		// when false both streams are discarded.
		StreamOutput bool
	}

	// Result holds the captured output of a RunCapture invocation.
	Result struct {
		// Output is the child's standard output.
		Output string
		// ErrOutput is the child's standard error.
		ErrOutput string
	}

	// Runner invokes external commands synchronously. The zero value routes
	// streamed output to the process's own stdout/stderr; tests substitute
	// their own writers.
	Runner struct {
		// Stdout receives the child's standard output when streaming.
		Stdout io.Writer
		// Stderr receives the child's standard error when streaming.
		Stderr io.Writer
	}
)

// New creates a Runner that streams to the process's stdout/stderr.
func New() *Runner {
	return &Runner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes the invocation and blocks until the child terminates.
// A nonzero exit status is returned as a *CommandFailedError; the executable
// not being found is a *ToolMissingError.
func (r *Runner) Run(ctx context.Context, inv Invocation) error {
	cmd := exec.CommandContext(ctx, inv.Command, inv.Args...)
	cmd.Dir = inv.Dir

	if inv.StreamOutput {
		cmd.Stdout = r.stdout()
		cmd.Stderr = r.stderr()
	}

	return r.mapRunError(cmd.Run(), inv)
}

// RunCapture executes the invocation and collects the child's stdout and
// stderr. The captured output is returned even when the command fails, so
// callers can surface tool diagnostics in error reports.
func (r *Runner) RunCapture(ctx context.Context, inv Invocation) (*Result, error) {
	cmd := exec.CommandContext(ctx, inv.Command, inv.Args...)
	cmd.Dir = inv.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := r.mapRunError(cmd.Run(), inv)
	return &Result{Output: stdout.String(), ErrOutput: stderr.String()}, err
}

// mapRunError converts exec errors into the package's typed failures.
func (r *Runner) mapRunError(err error, inv Invocation) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandFailedError{
			Command:  inv.Command,
			Args:     inv.Args,
			ExitCode: types.ExitCode(exitErr.ExitCode()),
		}
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		return &ToolMissingError{Command: inv.Command}
	}

	return err
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
