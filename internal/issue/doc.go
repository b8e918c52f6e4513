// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines error types that carry the failed operation, the
// resource involved, and remediation suggestions, improving the user
// experience when errors occur during CLI operations.
package issue
