// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mcfpack-cli/pkg/archive"
	"mcfpack-cli/pkg/layout"
)

var (
	inspectKeep bool

	// inspectCmd validates an already-built archive without running a build.
	inspectCmd = &cobra.Command{
		Use:   "inspect <archive>",
		Short: "Extract and validate an existing package archive",
		Long: `Extract and validate an existing package archive.

The archive is unpacked to a scratch directory and checked against the
package layout contract: a single top-level directory containing bin/
with at least one executable, optional plugins/ and config/ directories,
and a README.txt. The exit status is non-zero when the check fails.`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
)

func init() {
	inspectCmd.Flags().BoolVar(&inspectKeep, "keep", false, "keep the extraction directory instead of removing it")
}

func runInspect(cmd *cobra.Command, args []string) error {
	archivePath := args[0]

	extraction, err := archive.Extract(archivePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}
	if inspectKeep {
		fmt.Fprintf(os.Stderr, "%s %s\n", SubtitleStyle.Render("Extracted to:"), PathStyle.Render(extraction.Root))
	} else {
		defer func() { _ = extraction.Remove() }()
	}

	report, err := layout.Validate(extraction.Root)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	renderReport(os.Stderr, report)
	if report.Status() == layout.SeverityFail {
		return &ExitError{Code: 1, Err: fmt.Errorf("package %s violates the layout contract", archivePath)}
	}
	return nil
}
