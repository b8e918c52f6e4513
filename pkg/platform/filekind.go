// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
)

// SharedLibSuffixes lists the shared-library file suffixes recognized as
// plugin binaries, one per platform family.
func SharedLibSuffixes() []string {
	return []string{".so", ".dll", ".dylib"}
}

// IsSharedLib reports whether the file name carries a recognized
// shared-library suffix.
func IsSharedLib(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, suffix := range SharedLibSuffixes() {
		if ext == suffix {
			return true
		}
	}
	return false
}

// IsExecutable reports whether a regular file counts as an executable.
// On Windows the only reliable signal is the .exe suffix; elsewhere the
// execute permission bit decides.
func IsExecutable(name string, mode fs.FileMode) bool {
	return isExecutableOn(runtime.GOOS, name, mode)
}

// isExecutableOn is the GOOS-parameterized implementation, split out so
// both platform families are testable from any host.
func isExecutableOn(goos, name string, mode fs.FileMode) bool {
	if !mode.IsRegular() {
		return false
	}
	if goos == Windows {
		return strings.EqualFold(filepath.Ext(name), ".exe")
	}
	return mode.Perm()&0o111 != 0
}
