// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"

	"mcfpack-cli/pkg/layout"
)

// renderReport writes a human-readable validation report. Findings are
// printed in evaluation order with severity icons; counts and the README
// excerpt follow when present.
func renderReport(w io.Writer, report *layout.Report) {
	fmt.Fprintln(w, TitleStyle.Render("Package Structure"))
	if report.PackageDir != "" {
		fmt.Fprintf(w, "%s %s\n", SubtitleStyle.Render("Package directory:"), PathStyle.Render(report.PackageDir))
	}
	fmt.Fprintln(w)

	for _, finding := range report.Findings {
		fmt.Fprintf(w, "  %s %s\n", severityIcon(finding.Severity), finding.Message)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %d executables, %d plugins, %d config files\n",
		SubtitleStyle.Render("Contents:"), report.Executables, report.Plugins, report.ConfigFiles)

	if len(report.ReadmeExcerpt) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, SubtitleStyle.Render("README.txt:"))
		for _, line := range report.ReadmeExcerpt {
			fmt.Fprintln(w, excerptStyle.Render(line))
		}
	}

	fmt.Fprintln(w)
	switch {
	case report.Status() == layout.SeverityFail:
		fmt.Fprintln(w, ErrorStyle.Render("✗ Package structure check failed"))
	case report.HasWarnings():
		fmt.Fprintln(w, WarningStyle.Render("⚠ Package structure check passed with warnings"))
	default:
		fmt.Fprintln(w, SuccessStyle.Render("✓ Package structure check passed"))
	}
}

// severityIcon maps a finding severity to its styled marker.
func severityIcon(severity layout.Severity) string {
	switch severity {
	case layout.SeverityFail:
		return ErrorStyle.Render("✗")
	case layout.SeverityWarn:
		return WarningStyle.Render("⚠")
	default:
		return SuccessStyle.Render("✓")
	}
}
