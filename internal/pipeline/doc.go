// SPDX-License-Identifier: MPL-2.0

// Package pipeline sequences the packaging workflow: clean, configure,
// build, package, then optional extraction, validation, and publishing.
//
// The pipeline is single-threaded and strictly sequential; each stage blocks
// on its external process before the next starts. Any fatal condition moves
// the pipeline to the Failed state and aborts the remaining stages; nothing
// is retried. The only parallelism lives inside the external build system's
// own build step, controlled by the resolved job count.
//
// The build directory is exclusively owned by one run at a time. No locking
// is implemented; concurrent runs against the same directory are undefined
// and must be prevented by the caller.
package pipeline
