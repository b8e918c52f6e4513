// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"mcfpack-cli/pkg/archive"
)

// archivePatterns is the fixed, ordered list of archive extensions the
// packaging stage looks for. The first pattern with any match wins.
var archivePatterns = []string{"*.tar.gz", "*.zip"}

// ErrNoArtifact is the sentinel error wrapped by NoArtifactError.
var ErrNoArtifact = errors.New("no artifact produced")

type (
	// Artifact is the packaging stage's output: the produced archive file.
	Artifact struct {
		// Path is the absolute path of the archive.
		Path string
		// Name is the archive file name.
		Name string
		// Format is the container format inferred from the extension.
		Format archive.Format
	}

	// NoArtifactError is returned when the packaging target succeeded but
	// left no recognizable archive in the build directory. It wraps
	// ErrNoArtifact for errors.Is() compatibility.
	NoArtifactError struct {
		BuildDir string
	}
)

// Error implements the error interface for NoArtifactError.
func (e *NoArtifactError) Error() string {
	return fmt.Sprintf("no package archive found in %s (looked for %v)", e.BuildDir, archivePatterns)
}

// Unwrap returns ErrNoArtifact for errors.Is() compatibility.
func (e *NoArtifactError) Unwrap() error { return ErrNoArtifact }

// DiscoverArtifact searches the build directory's immediate contents for the
// produced package archive. Patterns are tried in priority order (tar.gz
// before zip); within a pattern the lexicographically first match is taken,
// making selection deterministic when several archives are present.
func DiscoverArtifact(buildDir string) (*Artifact, error) {
	for _, pattern := range archivePatterns {
		matches, err := filepath.Glob(filepath.Join(buildDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to search build directory %s: %w", buildDir, err)
		}
		if len(matches) == 0 {
			continue
		}
		sort.Strings(matches)

		path, err := filepath.Abs(matches[0])
		if err != nil {
			return nil, fmt.Errorf("failed to resolve artifact path: %w", err)
		}
		format, err := archive.DetectFormat(path)
		if err != nil {
			return nil, err
		}
		return &Artifact{Path: path, Name: filepath.Base(path), Format: format}, nil
	}

	return nil, &NoArtifactError{BuildDir: buildDir}
}
