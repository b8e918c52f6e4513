// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for parsing and validating CUE
// documents against an embedded schema, and for turning CUE's error values
// into readable, path-prefixed messages.
package cueutil
