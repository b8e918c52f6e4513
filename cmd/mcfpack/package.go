// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"mcfpack-cli/internal/execrun"
	"mcfpack-cli/internal/pipeline"
	"mcfpack-cli/pkg/types"
)

var (
	packageTarget    string
	packageBuildDir  string
	packageBuildType string
	packageOutput    string
	packageJobs      int
	packageClean     bool
	packageExtract   bool
	packageTest      bool

	// packageCmd drives the full packaging pipeline.
	packageCmd = &cobra.Command{
		Use:   "package",
		Short: "Build a packaging target and verify the result",
		Long: `Build a packaging target and verify the result.

The target's "package-" prefix is prepended automatically when missing.
The pipeline configures the build directory on first use, builds the
project, runs the packaging target, and locates the produced archive
(.tar.gz preferred over .zip).

With --extract the archive is unpacked to a scratch directory and its
layout is checked. With --test the layout check additionally gates the
exit status on structural failures. With --output the archive is copied
to the given directory as the final step.`,
		RunE: runPackage,
	}
)

func init() {
	packageCmd.Flags().StringVarP(&packageTarget, "target", "t", "", "packaging target name (required)")
	packageCmd.Flags().StringVarP(&packageBuildDir, "build-dir", "b", "", "build directory (default from config)")
	packageCmd.Flags().StringVar(&packageBuildType, "build-type", "", "build type: Debug, Release, RelWithDebInfo, MinSizeRel (default from config)")
	packageCmd.Flags().StringVarP(&packageOutput, "output", "o", "", "publish the package to this directory")
	packageCmd.Flags().IntVarP(&packageJobs, "jobs", "j", 0, "parallel build jobs (0 = auto-detect)")
	packageCmd.Flags().BoolVar(&packageClean, "clean", false, "remove the build directory before building")
	packageCmd.Flags().BoolVar(&packageExtract, "extract", false, "extract the package and report its layout")
	packageCmd.Flags().BoolVar(&packageTest, "test", false, "extract and validate the package layout (implies --extract)")

	_ = packageCmd.MarkFlagRequired("target")
}

func runPackage(cmd *cobra.Command, _ []string) error {
	cfg, err := pipelineConfigFromFlags(cmd)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	logger := newPipelineLogger()
	p, err := pipeline.New(cfg, execrun.New(), logger)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	result, err := p.Run(cmd.Context())
	if result != nil && result.Report != nil {
		renderReport(os.Stderr, result.Report)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Fprintf(os.Stderr, "%s %s\n", SuccessStyle.Render("Package:"), PathStyle.Render(result.Artifact.Path))
	if result.PublishedPath != "" {
		fmt.Fprintf(os.Stderr, "%s %s\n", SuccessStyle.Render("Published:"), PathStyle.Render(result.PublishedPath))
	}
	if result.Extraction != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", SubtitleStyle.Render("Extracted to:"), PathStyle.Render(result.Extraction.Root))
	}
	return nil
}

// pipelineConfigFromFlags merges flag values over configuration defaults.
// A flag the user did not set falls back to the loaded configuration.
func pipelineConfigFromFlags(cmd *cobra.Command) (pipeline.Config, error) {
	defaults := currentConfig()

	buildDir := defaults.Build.Dir
	if cmd.Flags().Changed("build-dir") {
		buildDir = packageBuildDir
	}

	buildType := defaults.Build.Type
	if cmd.Flags().Changed("build-type") {
		buildType = types.BuildType(packageBuildType)
	}

	jobs := defaults.Build.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs = types.JobCount(packageJobs)
	}

	publishDir := defaults.Publish.Dir
	if cmd.Flags().Changed("output") {
		publishDir = packageOutput
	}

	return pipeline.Config{
		Target:     types.TargetName(packageTarget),
		BuildDir:   buildDir,
		BuildType:  buildType,
		PublishDir: publishDir,
		Jobs:       jobs,
		Clean:      packageClean,
		Verify:     packageExtract,
		Test:       packageTest,
		Verbose:    verbose,
	}, nil
}

// newPipelineLogger builds the stderr logger the pipeline reports through.
// Diagnostics go to stderr so build-tool output on stdout stays clean.
func newPipelineLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
}
