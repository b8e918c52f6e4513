// SPDX-License-Identifier: MPL-2.0

// mcfpack builds, packages, verifies, and publishes application bundles
// by orchestrating an external CMake toolchain.
package main

func main() {
	Execute()
}
