// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/mcfpack/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/mcfpack/config.cue on macOS, %APPDATA%\mcfpack\config.cue
// on Windows), falling back to a config.cue in the current directory. The file supplies
// defaults for the packaging pipeline: build directory, build type, job count, publish
// directory, and UI verbosity. Command-line flags always win over file values.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
