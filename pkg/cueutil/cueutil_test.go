// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Config: {
	build?: {
		dir?:  string
		jobs?: int & >=0
	}
	verbose?: bool
}
`

func TestValidateAgainstSchema(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string // substring of the expected error, empty for success
	}{
		{
			name: "valid document",
			data: `build: {dir: "out", jobs: 4}`,
		},
		{
			name: "empty document uses defaults",
			data: ``,
		},
		{
			name:    "wrong field type",
			data:    `build: {jobs: "four"}`,
			wantErr: "build.jobs",
		},
		{
			name:    "unknown field rejected by closed schema",
			data:    `buil: {}`,
			wantErr: "buil",
		},
		{
			name:    "syntax error",
			data:    `build: {`,
			wantErr: "config.cue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateAgainstSchema(testSchema, []byte(tt.data), "#Config", "config.cue")
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got result %v", tt.wantErr, result)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateAgainstSchema_DecodesValues(t *testing.T) {
	result, err := ValidateAgainstSchema(testSchema, []byte(`build: {dir: "out"}`), "#Config", "config.cue")
	if err != nil {
		t.Fatal(err)
	}
	build, ok := result["build"].(map[string]any)
	if !ok {
		t.Fatalf("build section missing from decoded map: %v", result)
	}
	if build["dir"] != "out" {
		t.Errorf("build.dir = %v, want %q", build["dir"], "out")
	}
}

func TestCheckFileSize(t *testing.T) {
	if err := CheckFileSize(make([]byte, 100), 100, "test.cue"); err != nil {
		t.Errorf("size at limit should pass: %v", err)
	}
	if err := CheckFileSize(make([]byte, 101), 100, "test.cue"); err == nil {
		t.Error("size over limit should fail")
	}
	if err := CheckFileSize([]byte{}, 100, "test.cue"); err != nil {
		t.Errorf("empty data should pass: %v", err)
	}
}
