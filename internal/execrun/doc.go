// SPDX-License-Identifier: MPL-2.0

// Package execrun is a thin synchronous wrapper around external command
// invocation. Commands are always assembled as argv lists, never as shell
// strings, and the working directory is an explicit parameter rather than
// ambient process state.
//
// Failure is typed: a command missing from the search path yields a
// ToolMissingError, and a nonzero exit status yields a CommandFailedError
// carrying the command, its arguments, and the exit code.
package execrun
