// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes operating-system specific knowledge: GOOS
// name constants, the executable test used when counting package binaries,
// and the shared-library suffixes used to recognize plugin binaries.
package platform
