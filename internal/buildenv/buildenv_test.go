// SPDX-License-Identifier: MPL-2.0

package buildenv

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/charmbracelet/log"

	"mcfpack-cli/internal/execrun"
	"mcfpack-cli/pkg/types"
)

// recordingRunner records invocations instead of spawning processes. When
// markerDir is set, a Run call drops the cache marker there, mimicking a
// successful configure step.
type recordingRunner struct {
	invocations []execrun.Invocation
	captured    []execrun.Invocation
	markerDir   string
	err         error
	errOutput   string
}

func (r *recordingRunner) Run(_ context.Context, inv execrun.Invocation) error {
	r.invocations = append(r.invocations, inv)
	if r.err != nil {
		return r.err
	}
	if r.markerDir != "" {
		if err := os.WriteFile(filepath.Join(r.markerDir, CacheMarker), []byte("# stub"), 0644); err != nil {
			return err
		}
	}
	return nil
}

func (r *recordingRunner) RunCapture(_ context.Context, inv execrun.Invocation) (*execrun.Result, error) {
	r.captured = append(r.captured, inv)
	if r.err != nil {
		return &execrun.Result{ErrOutput: r.errOutput}, r.err
	}
	return &execrun.Result{}, nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestEnvironment_CleanRemovesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	env := New(dir, &recordingRunner{}, quietLogger())
	if !env.Exists() {
		t.Fatal("directory should exist before clean")
	}
	if err := env.Clean(); err != nil {
		t.Fatal(err)
	}
	if env.Exists() {
		t.Error("directory should not exist after clean")
	}
}

func TestEnvironment_CleanMissingDirectoryIsNoOp(t *testing.T) {
	env := New(filepath.Join(t.TempDir(), "never-created"), &recordingRunner{}, quietLogger())
	if err := env.Clean(); err != nil {
		t.Errorf("cleaning a missing directory should not error: %v", err)
	}
}

func TestEnvironment_ConfigureIssuesCommandOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	runner := &recordingRunner{markerDir: dir}
	env := New(dir, runner, quietLogger())

	ctx := context.Background()
	if err := env.Configure(ctx, types.BuildTypeRelease, false); err != nil {
		t.Fatal(err)
	}
	if err := env.Configure(ctx, types.BuildTypeRelease, false); err != nil {
		t.Fatal(err)
	}

	if len(runner.invocations) != 1 {
		t.Fatalf("configure issued %d commands, want 1", len(runner.invocations))
	}
	want := []string{"-B", dir, "-DCMAKE_BUILD_TYPE=Release"}
	if !slices.Equal(runner.invocations[0].Args, want) {
		t.Errorf("configure args = %v, want %v", runner.invocations[0].Args, want)
	}
	if !env.IsConfigured() {
		t.Error("environment should report configured after marker is written")
	}
}

func TestEnvironment_ConfigureAgainAfterClean(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	runner := &recordingRunner{markerDir: dir}
	env := New(dir, runner, quietLogger())

	ctx := context.Background()
	if err := env.Configure(ctx, types.BuildTypeDebug, false); err != nil {
		t.Fatal(err)
	}
	if err := env.Clean(); err != nil {
		t.Fatal(err)
	}
	if err := env.Configure(ctx, types.BuildTypeDebug, false); err != nil {
		t.Fatal(err)
	}

	if len(runner.invocations) != 2 {
		t.Errorf("configure after clean issued %d commands total, want 2", len(runner.invocations))
	}
}

func TestEnvironment_ConfigureVerboseFlag(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	runner := &recordingRunner{markerDir: dir}
	env := New(dir, runner, quietLogger())

	if err := env.Configure(context.Background(), types.BuildTypeRelease, true); err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(runner.invocations[0].Args, "-DCMAKE_VERBOSE_MAKEFILE=ON") {
		t.Errorf("verbose configure args missing makefile flag: %v", runner.invocations[0].Args)
	}
}

func TestEnvironment_BuildAlwaysRuns(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	runner := &recordingRunner{}
	env := New(dir, runner, quietLogger())

	ctx := context.Background()
	for range 2 {
		if err := env.Build(ctx, types.BuildTypeRelease, 4, false); err != nil {
			t.Fatal(err)
		}
	}

	if len(runner.invocations) != 2 {
		t.Fatalf("build issued %d commands, want 2 (no cache check)", len(runner.invocations))
	}
	want := []string{"--build", dir, "--config", "Release", "-j", "4"}
	if !slices.Equal(runner.invocations[0].Args, want) {
		t.Errorf("build args = %v, want %v", runner.invocations[0].Args, want)
	}
}

func TestEnvironment_BuildTargetStreamsOnlyWhenVerbose(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	runner := &recordingRunner{}
	env := New(dir, runner, quietLogger())

	ctx := context.Background()
	if err := env.BuildTarget(ctx, "package-my_app", false); err != nil {
		t.Fatal(err)
	}
	if err := env.BuildTarget(ctx, "package-my_app", true); err != nil {
		t.Fatal(err)
	}

	if len(runner.captured) != 1 {
		t.Errorf("non-verbose target build should capture output, got %d captured calls", len(runner.captured))
	}
	if len(runner.invocations) != 1 {
		t.Fatalf("verbose target build should stream, got %d streamed calls", len(runner.invocations))
	}
	if !runner.invocations[0].StreamOutput {
		t.Error("verbose target build should stream output")
	}
	want := []string{"--build", dir, "--target", "package-my_app", "--verbose"}
	if !slices.Equal(runner.invocations[0].Args, want) {
		t.Errorf("target build args = %v, want %v", runner.invocations[0].Args, want)
	}
}

func TestEnvironment_BuildTargetFailureSurfacesCapturedOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "build")
	runner := &recordingRunner{
		err:       &execrun.CommandFailedError{Command: BuildTool, ExitCode: 2},
		errOutput: "CMake Error: unknown target\n",
	}
	env := New(dir, runner, quietLogger())

	err := env.BuildTarget(context.Background(), "package-nope", false)
	if err == nil {
		t.Fatal("expected the target build to fail")
	}
	var cmdErr *execrun.CommandFailedError
	if !errors.As(err, &cmdErr) {
		t.Errorf("error should keep its command-failure type, got %v", err)
	}
}
