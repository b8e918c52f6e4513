// SPDX-License-Identifier: MPL-2.0

package buildenv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"mcfpack-cli/internal/execrun"
	"mcfpack-cli/pkg/types"
)

const (
	// BuildTool is the external build system executable.
	BuildTool = "cmake"

	// CacheMarker is the file a successful configure step leaves in the
	// build directory. Its presence alone decides whether reconfiguration
	// runs; stale configuration from a different build type is not detected.
	CacheMarker = "CMakeCache.txt"
)

type (
	// CommandRunner abstracts execrun.Runner so tests can record the
	// commands an Environment issues without spawning processes.
	CommandRunner interface {
		Run(ctx context.Context, inv execrun.Invocation) error
		RunCapture(ctx context.Context, inv execrun.Invocation) (*execrun.Result, error)
	}

	// Environment is a build output directory plus the means to clean,
	// configure, and build it. One Environment is exclusively owned by one
	// pipeline run; concurrent use of the same directory is undefined.
	Environment struct {
		dir    string
		runner CommandRunner
		logger *log.Logger
	}
)

// New creates an Environment for the given build directory.
func New(dir string, runner CommandRunner, logger *log.Logger) *Environment {
	return &Environment{dir: dir, runner: runner, logger: logger}
}

// Dir returns the build directory path.
func (e *Environment) Dir() string { return e.dir }

// Exists reports whether the build directory is present.
func (e *Environment) Exists() bool {
	info, err := os.Stat(e.dir)
	return err == nil && info.IsDir()
}

// IsConfigured reports whether the cache marker is present in the build
// directory, i.e. whether a configure step has completed here before.
func (e *Environment) IsConfigured() bool {
	info, err := os.Stat(filepath.Join(e.dir, CacheMarker))
	return err == nil && !info.IsDir()
}

// Clean recursively removes the build directory. Removing a directory that
// does not exist is a no-op with a warning, not an error.
func (e *Environment) Clean() error {
	e.logger.Info("cleaning build directory", "dir", e.dir)

	if !e.Exists() {
		e.logger.Warn("build directory does not exist, skipping clean", "dir", e.dir)
		return nil
	}

	if err := os.RemoveAll(e.dir); err != nil {
		return fmt.Errorf("failed to remove build directory %s: %w", e.dir, err)
	}

	e.logger.Info("build directory cleaned")
	return nil
}

// Configure runs the build system's configure step. If the cache marker is
// already present this is a logged no-op: configuration is idempotent by
// presence check, not by content comparison. Otherwise the directory is
// created (including parents) and the configure command is issued with the
// build type and, if verbose, a verbose-makefile flag.
func (e *Environment) Configure(ctx context.Context, buildType types.BuildType, verbose bool) error {
	if e.IsConfigured() {
		e.logger.Info("using existing build configuration", "marker", CacheMarker)
		return nil
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return fmt.Errorf("failed to create build directory %s: %w", e.dir, err)
	}

	args := []string{"-B", e.dir, "-DCMAKE_BUILD_TYPE=" + buildType.String()}
	if verbose {
		args = append(args, "-DCMAKE_VERBOSE_MAKEFILE=ON")
	}

	e.logger.Info("configuring build system", "type", buildType)
	e.logger.Debug("running", "command", BuildTool, "args", args)

	return e.runner.Run(ctx, execrun.Invocation{
		Command:      BuildTool,
		Args:         args,
		StreamOutput: true,
	})
}

// Build runs the build system's build step scoped to the configuration and
// parallelism. It always executes: whether anything actually recompiles is
// the external tool's decision.
func (e *Environment) Build(ctx context.Context, buildType types.BuildType, jobs types.JobCount, verbose bool) error {
	args := []string{"--build", e.dir, "--config", buildType.String(), "-j", jobs.String()}
	if verbose {
		args = append(args, "--verbose")
	}

	e.logger.Info("building project", "type", buildType, "jobs", jobs)
	e.logger.Debug("running", "command", BuildTool, "args", args)

	return e.runner.Run(ctx, execrun.Invocation{
		Command:      BuildTool,
		Args:         args,
		StreamOutput: true,
	})
}

// BuildTarget runs the build step restricted to one named target. This is
// how packaging is implemented: packaging targets are themselves build
// targets. Child output is streamed only when verbose; otherwise it is
// captured so a failure can still show the tool's last lines.
func (e *Environment) BuildTarget(ctx context.Context, target types.TargetName, verbose bool) error {
	args := []string{"--build", e.dir, "--target", target.String()}
	if verbose {
		args = append(args, "--verbose")
	}

	e.logger.Debug("running", "command", BuildTool, "args", args)

	if verbose {
		return e.runner.Run(ctx, execrun.Invocation{
			Command:      BuildTool,
			Args:         args,
			StreamOutput: true,
		})
	}

	result, err := e.runner.RunCapture(ctx, execrun.Invocation{
		Command: BuildTool,
		Args:    args,
	})
	if err != nil {
		if result != nil && result.ErrOutput != "" {
			e.logger.Error("build tool output", "stderr", tailLines(result.ErrOutput, 10))
		}
		return err
	}
	return nil
}

// tailLines returns the last n lines of s, for surfacing captured tool
// output in failure logs without flooding the terminal.
func tailLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
