// SPDX-License-Identifier: MPL-2.0

// Package buildenv owns the external build system's output directory. It
// knows whether the directory has been configured (cache marker present)
// and issues the clean, configure, and build command shapes to the build
// tool. Incremental-build correctness is delegated entirely to the tool;
// this package never skips a build on its own judgment.
package buildenv
