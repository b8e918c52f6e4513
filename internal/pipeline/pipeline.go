// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"mcfpack-cli/internal/buildenv"
	"mcfpack-cli/internal/issue"
	"mcfpack-cli/pkg/archive"
	"mcfpack-cli/pkg/layout"
)

type (
	// Pipeline drives one packaging run. Create a fresh Pipeline per run;
	// retrying means resolving a new one from Idle.
	Pipeline struct {
		cfg    ResolvedConfig
		env    *buildenv.Environment
		logger *log.Logger
		state  State
	}

	// Result collects everything a run produced. Fields beyond Artifact are
	// populated only when their stages ran.
	Result struct {
		// Artifact is the produced package archive.
		Artifact *Artifact
		// Extraction is the verification scratch directory; retained after
		// the run so the package can be inspected manually.
		Extraction *archive.Extraction
		// Report is the structural validation report.
		Report *layout.Report
		// PublishedPath is where the artifact was copied, when publishing ran.
		PublishedPath string
	}
)

// New resolves the configuration and assembles a Pipeline in the Idle state.
func New(cfg Config, runner buildenv.CommandRunner, logger *log.Logger) (*Pipeline, error) {
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, issue.WrapWithOperation(err, "resolve pipeline configuration")
	}

	if !cfg.Target.IsNormalized() {
		logger.Warn("target name should start with the packaging prefix, prepending it automatically",
			"target", resolved.Target)
	}

	return &Pipeline{
		cfg:    resolved,
		env:    buildenv.New(resolved.BuildDir, runner, logger),
		logger: logger,
		state:  StateIdle,
	}, nil
}

// Config returns the resolved configuration the pipeline runs with.
func (p *Pipeline) Config() ResolvedConfig { return p.cfg }

// State returns the pipeline's current state.
func (p *Pipeline) State() State { return p.state }

// Run executes the stage sequence and blocks until it finishes. The first
// fatal condition aborts all later stages, moves the pipeline to Failed,
// and is returned with the partial Result accumulated so far. No stage is
// retried; rerun a fresh Pipeline instead.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	p.logger.Info("packaging pipeline starting",
		"target", p.cfg.Target,
		"buildDir", p.cfg.BuildDir,
		"type", p.cfg.BuildType,
		"jobs", p.cfg.Jobs)

	if p.cfg.Clean {
		p.state = StateCleaning
		if err := p.env.Clean(); err != nil {
			return result, p.fail("clean build directory", p.cfg.BuildDir, err)
		}
	}

	p.state = StateConfiguring
	if err := p.env.Configure(ctx, p.cfg.BuildType, p.cfg.Verbose); err != nil {
		return result, p.fail("configure build directory", p.cfg.BuildDir, err)
	}

	p.state = StateBuilding
	if err := p.env.Build(ctx, p.cfg.BuildType, p.cfg.Jobs, p.cfg.Verbose); err != nil {
		return result, p.fail("build project", p.cfg.BuildDir, err)
	}

	p.state = StatePackaging
	p.logger.Info("creating package", "target", p.cfg.Target)
	if err := p.env.BuildTarget(ctx, p.cfg.Target, p.cfg.Verbose); err != nil {
		return result, p.fail("create package", p.cfg.Target.String(), err)
	}
	artifact, err := DiscoverArtifact(p.cfg.BuildDir)
	if err != nil {
		return result, p.fail("locate package archive", p.cfg.BuildDir, err)
	}
	result.Artifact = artifact
	p.logger.Info("package created", "name", artifact.Name, "format", artifact.Format)

	if p.cfg.Verify {
		p.state = StateExtracting
		extraction, err := archive.Extract(artifact.Path)
		if err != nil {
			return result, p.fail("extract package", artifact.Path, err)
		}
		result.Extraction = extraction
		p.logger.Info("package extracted for verification",
			"dir", extraction.Root, "files", len(extraction.Files))

		p.state = StateValidating
		report, err := layout.Validate(extraction.Root)
		if err != nil {
			return result, p.fail("validate package layout", extraction.Root, err)
		}
		result.Report = report
		if report.Status() == layout.SeverityFail {
			return result, p.fail("validate package layout", artifact.Name,
				fmt.Errorf("package violates the layout contract"))
		}
	}

	if p.cfg.PublishDir != "" {
		p.state = StatePublishing
		published, err := publishArtifact(artifact, p.cfg.PublishDir)
		if err != nil {
			return result, p.fail("publish package", p.cfg.PublishDir, err)
		}
		result.PublishedPath = published
		p.logger.Info("package published", "path", published)
	}

	p.state = StateDone
	p.logger.Info("packaging complete", "package", artifact.Path)
	return result, nil
}

// fail moves the pipeline to the Failed terminal state and wraps the cause
// with the stage's operation for a single top-level report.
func (p *Pipeline) fail(operation, resource string, err error) error {
	p.state = StateFailed
	return issue.NewErrorContext().
		WithOperation(operation).
		WithResource(resource).
		Wrap(err).
		BuildError()
}

// publishArtifact copies the artifact into publishDir, creating the
// directory if needed and overwriting any existing file of the same name.
func publishArtifact(artifact *Artifact, publishDir string) (string, error) {
	if err := os.MkdirAll(publishDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create publish directory: %w", err)
	}

	destPath := filepath.Join(publishDir, artifact.Name)

	src, err := os.Open(artifact.Path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", err
	}

	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", err
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		return "", fmt.Errorf("failed to copy package: %w", err)
	}

	return destPath, nil
}
