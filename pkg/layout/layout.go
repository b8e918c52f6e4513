// SPDX-License-Identifier: MPL-2.0

// Package layout checks an extracted package tree against the structural
// contract a distributable must follow: one top-level directory containing
// optional bin/, plugins/, and config/ subdirectories and an optional
// README.txt.
//
// Validation is observation-only; it never mutates the filesystem. Each rule
// produces a Finding with pass, warn, or fail severity. Only the missing
// package directory is fatal: packages are allowed to omit every optional
// component, so all other gaps are warnings.
package layout

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"mcfpack-cli/pkg/platform"
)

const (
	// SeverityPass marks an informational finding for a satisfied rule.
	SeverityPass Severity = "pass"
	// SeverityWarn marks a missing optional component.
	SeverityWarn Severity = "warn"
	// SeverityFail marks a violated structural requirement.
	SeverityFail Severity = "fail"
)

// Rule names, in evaluation order.
const (
	RulePackageDir = "package-directory"
	RuleBin        = "bin"
	RulePlugins    = "plugins"
	RuleConfig     = "config"
	RuleReadme     = "readme"
)

// readmeExcerptLines caps how much of the README is captured for display.
const readmeExcerptLines = 20

type (
	// Severity classifies a Finding.
	Severity string

	// Finding is one rule's verdict over the extraction snapshot.
	Finding struct {
		// Rule names the check that produced this finding.
		Rule string
		// Severity is pass, warn, or fail.
		Severity Severity
		// Message is the human-readable verdict.
		Message string
	}

	// Report is the ordered result of validating one extracted package.
	// It is read-only once produced.
	Report struct {
		// PackageDir is the absolute path of the package's top-level
		// directory; empty when it was not found.
		PackageDir string
		// Findings lists every rule verdict in evaluation order.
		Findings []Finding
		// Executables counts executable entries in bin/.
		Executables int
		// Plugins counts shared-library files in plugins/.
		Plugins int
		// ConfigFiles counts regular files under config/, recursively.
		ConfigFiles int
		// ReadmeExcerpt holds the first lines of README.txt when present.
		ReadmeExcerpt []string
	}
)

// String returns the string representation of the Severity.
func (s Severity) String() string { return string(s) }

// Status reports the overall verdict: fail if any finding failed, pass
// otherwise. Warnings are advisory and never fail a package.
func (r *Report) Status() Severity {
	for _, f := range r.Findings {
		if f.Severity == SeverityFail {
			return SeverityFail
		}
	}
	return SeverityPass
}

// HasWarnings reports whether any finding carries SeverityWarn.
func (r *Report) HasWarnings() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityWarn {
			return true
		}
	}
	return false
}

// add appends a finding to the report.
func (r *Report) add(rule string, severity Severity, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Rule:     rule,
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Validate walks the extraction root and evaluates the structural contract.
// The returned error covers filesystem access problems only; contract
// violations are findings, not errors.
func Validate(extractionRoot string) (*Report, error) {
	report := &Report{}

	packageDir, err := findPackageDir(extractionRoot)
	if err != nil {
		return nil, err
	}
	if packageDir == "" {
		report.add(RulePackageDir, SeverityFail, "no package directory found in %s", extractionRoot)
		return report, nil
	}
	report.PackageDir = packageDir
	report.add(RulePackageDir, SeverityPass, "package directory: %s", filepath.Base(packageDir))

	if err := checkBin(report, packageDir); err != nil {
		return nil, err
	}
	if err := checkPlugins(report, packageDir); err != nil {
		return nil, err
	}
	if err := checkConfig(report, packageDir); err != nil {
		return nil, err
	}
	if err := checkReadme(report, packageDir); err != nil {
		return nil, err
	}

	return report, nil
}

// findPackageDir returns the first subdirectory of extractionRoot in sorted
// order, or empty when there is none. A well-formed package archive has
// exactly one.
func findPackageDir(extractionRoot string) (string, error) {
	entries, err := os.ReadDir(extractionRoot)
	if err != nil {
		return "", fmt.Errorf("failed to read extraction root %s: %w", extractionRoot, err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	if len(dirs) == 0 {
		return "", nil
	}
	sort.Strings(dirs)
	return filepath.Join(extractionRoot, dirs[0]), nil
}

// checkBin counts executables in bin/. A missing bin/ is a warning: the
// package is unusual but not malformed.
func checkBin(report *Report, packageDir string) error {
	binDir := filepath.Join(packageDir, "bin")
	entries, err := os.ReadDir(binDir)
	if os.IsNotExist(err) {
		report.add(RuleBin, SeverityWarn, "missing bin/ directory")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", binDir, err)
	}

	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return err
		}
		if platform.IsExecutable(entry.Name(), info.Mode()) {
			report.Executables++
		}
	}
	report.add(RuleBin, SeverityPass, "bin/ directory found (%d executables)", report.Executables)
	return nil
}

// checkPlugins counts shared libraries in plugins/. Plugins are optional;
// absence produces no finding at all.
func checkPlugins(report *Report, packageDir string) error {
	pluginsDir := filepath.Join(packageDir, "plugins")
	entries, err := os.ReadDir(pluginsDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", pluginsDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() && platform.IsSharedLib(entry.Name()) {
			report.Plugins++
		}
	}
	report.add(RulePlugins, SeverityPass, "plugins/ directory found (%d plugins)", report.Plugins)
	return nil
}

// checkConfig counts regular files under config/, recursively. Optional;
// absence produces no finding.
func checkConfig(report *Report, packageDir string) error {
	configDir := filepath.Join(packageDir, "config")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to stat %s: %w", configDir, err)
	}

	err := filepath.WalkDir(configDir, func(_ string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.Type().IsRegular() {
			report.ConfigFiles++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", configDir, err)
	}

	report.add(RuleConfig, SeverityPass, "config/ directory found (%d files)", report.ConfigFiles)
	return nil
}

// checkReadme looks for a top-level README.txt and captures its first lines
// for display. Absence is a warning.
func checkReadme(report *Report, packageDir string) error {
	readmePath := filepath.Join(packageDir, "README.txt")
	f, err := os.Open(readmePath)
	if os.IsNotExist(err) {
		report.add(RuleReadme, SeverityWarn, "missing README.txt")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", readmePath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for len(report.ReadmeExcerpt) < readmeExcerptLines && scanner.Scan() {
		report.ReadmeExcerpt = append(report.ReadmeExcerpt, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", readmePath, err)
	}

	report.add(RuleReadme, SeverityPass, "README.txt found")
	return nil
}
