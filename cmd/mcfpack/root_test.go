// SPDX-License-Identifier: MPL-2.0

package main

import (
	"testing"

	"mcfpack-cli/internal/config"
	"mcfpack-cli/pkg/types"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2026-08-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2026-08-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("fallback to dev when no build info", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "dev"
		Commit = "unknown"
		BuildDate = "unknown"

		got := getVersionString()
		want := "dev (built from source)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestPipelineConfigFromFlags(t *testing.T) {
	// Not parallel: mutates package-level flag and config vars.
	origConfig := loadedConfig
	t.Cleanup(func() {
		loadedConfig = origConfig
		packageTarget, packageBuildDir, packageBuildType = "", "", ""
		packageOutput, packageJobs = "", 0
	})

	loadedConfig = &config.Config{
		Build: config.BuildConfig{
			Dir:  "out/cmake",
			Type: types.BuildTypeDebug,
			Jobs: 8,
		},
		Publish: config.PublishConfig{Dir: "dist"},
	}

	t.Run("flags fall back to configuration", func(t *testing.T) {
		packageTarget = "my_app"
		cfg, err := pipelineConfigFromFlags(packageCmd)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.BuildDir != "out/cmake" {
			t.Errorf("BuildDir = %q, want config value", cfg.BuildDir)
		}
		if cfg.BuildType != types.BuildTypeDebug {
			t.Errorf("BuildType = %q, want config value", cfg.BuildType)
		}
		if cfg.Jobs != 8 {
			t.Errorf("Jobs = %d, want config value", cfg.Jobs)
		}
		if cfg.PublishDir != "dist" {
			t.Errorf("PublishDir = %q, want config value", cfg.PublishDir)
		}
	})

	t.Run("explicit flags win over configuration", func(t *testing.T) {
		packageTarget = "my_app"
		if err := packageCmd.Flags().Set("build-dir", "custom-build"); err != nil {
			t.Fatal(err)
		}
		if err := packageCmd.Flags().Set("build-type", "Release"); err != nil {
			t.Fatal(err)
		}
		if err := packageCmd.Flags().Set("jobs", "2"); err != nil {
			t.Fatal(err)
		}
		if err := packageCmd.Flags().Set("output", "nightly"); err != nil {
			t.Fatal(err)
		}

		cfg, err := pipelineConfigFromFlags(packageCmd)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.BuildDir != "custom-build" {
			t.Errorf("BuildDir = %q, want flag value", cfg.BuildDir)
		}
		if cfg.BuildType != types.BuildTypeRelease {
			t.Errorf("BuildType = %q, want flag value", cfg.BuildType)
		}
		if cfg.Jobs != 2 {
			t.Errorf("Jobs = %d, want flag value", cfg.Jobs)
		}
		if cfg.PublishDir != "nightly" {
			t.Errorf("PublishDir = %q, want flag value", cfg.PublishDir)
		}
	})
}
