// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestBuildType_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		value    BuildType
		expected bool
	}{
		{name: "Debug", value: BuildTypeDebug, expected: true},
		{name: "Release", value: BuildTypeRelease, expected: true},
		{name: "RelWithDebInfo", value: BuildTypeRelWithDebInfo, expected: true},
		{name: "MinSizeRel", value: BuildTypeMinSizeRel, expected: true},
		{name: "empty", value: "", expected: false},
		{name: "lowercase", value: "release", expected: false},
		{name: "unknown", value: "Profile", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, errs := tt.value.IsValid()
			if valid != tt.expected {
				t.Errorf("IsValid() = %v, want %v", valid, tt.expected)
			}
			if !tt.expected && !errors.Is(errs[0], ErrInvalidBuildType) {
				t.Errorf("error should wrap ErrInvalidBuildType, got %v", errs[0])
			}
		})
	}
}

func TestJobCount_Resolve(t *testing.T) {
	if got := JobCount(4).Resolve(); got != 4 {
		t.Errorf("Resolve() of explicit count = %d, want 4", got)
	}
	if got := JobCount(0).Resolve(); got < 1 {
		t.Errorf("Resolve() of auto count = %d, want >= 1", got)
	}
	if !JobCount(0).IsAuto() {
		t.Error("JobCount(0).IsAuto() = false, want true")
	}
	if JobCount(2).IsAuto() {
		t.Error("JobCount(2).IsAuto() = true, want false")
	}
}

func TestJobCount_IsValid(t *testing.T) {
	if valid, _ := JobCount(-1).IsValid(); valid {
		t.Error("negative job count should be invalid")
	}
	if valid, _ := JobCount(0).IsValid(); !valid {
		t.Error("zero (auto) job count should be valid")
	}
}
