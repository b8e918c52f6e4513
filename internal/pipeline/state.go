// SPDX-License-Identifier: MPL-2.0

package pipeline

// State identifies where a pipeline run currently is. Runs progress through
// the states in declaration order, skipping the conditional ones; Failed is
// a terminal state reachable from any non-terminal state.
type State string

const (
	// StateIdle is the initial state before Run is called.
	StateIdle State = "idle"
	// StateCleaning is entered only when the clean flag is set.
	StateCleaning State = "cleaning"
	// StateConfiguring runs the build system's configure step.
	StateConfiguring State = "configuring"
	// StateBuilding runs the full project build.
	StateBuilding State = "building"
	// StatePackaging builds the packaging target and discovers the artifact.
	StatePackaging State = "packaging"
	// StateExtracting unpacks the artifact for verification.
	StateExtracting State = "extracting"
	// StateValidating checks the extracted tree against the layout contract.
	StateValidating State = "validating"
	// StatePublishing copies the artifact to the publish directory.
	StatePublishing State = "publishing"
	// StateDone is the successful terminal state.
	StateDone State = "done"
	// StateFailed is the failure terminal state.
	StateFailed State = "failed"
)

// String returns the string representation of the State.
func (s State) String() string { return string(s) }

// IsTerminal reports whether the state ends a run.
func (s State) IsTerminal() bool { return s == StateDone || s == StateFailed }
