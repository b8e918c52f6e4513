// SPDX-License-Identifier: MPL-2.0

// Package archive classifies package files by container format and extracts
// them into fresh scratch directories for inspection.
//
// Two container formats are recognized, matching what the packaging targets
// produce: gzip-compressed tar streams (".tar.gz") and zip containers
// (".zip"). Anything else reaching this package is a contract violation by
// the caller; artifact discovery should already have rejected it.
//
// Extraction is read-only with respect to the source archive and never
// writes outside the allocated scratch directory: entry paths are validated
// against traversal before any file is created.
package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// FormatTarGz is a gzip-compressed tar stream.
	FormatTarGz Format = "tar.gz"
	// FormatZip is a zip container.
	FormatZip Format = "zip"
)

// ErrUnsupportedFormat is the sentinel error wrapped by UnsupportedFormatError.
var ErrUnsupportedFormat = errors.New("unsupported archive format")

type (
	// Format identifies a recognized container format.
	Format string

	// UnsupportedFormatError is returned when a file's extension matches no
	// recognized container format. It wraps ErrUnsupportedFormat for
	// errors.Is() compatibility.
	UnsupportedFormatError struct {
		Path string
	}

	// Extraction is a scratch directory holding the fully extracted contents
	// of one archive. The caller owns the directory: keep it for inspection
	// or release it with Remove. Extractions are never reused across archives.
	Extraction struct {
		// Root is the scratch directory the archive was unpacked into.
		Root string
		// Files lists every extracted regular file, relative to Root,
		// in sorted order. Recorded for reporting; reading it has no
		// filesystem effect.
		Files []string
	}
)

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// Error implements the error interface for UnsupportedFormatError.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported archive format: %s (recognized: .tar.gz, .zip)", e.Path)
}

// Unwrap returns ErrUnsupportedFormat for errors.Is() compatibility.
func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

// DetectFormat classifies a file path by its extension.
func DetectFormat(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".tar.gz"):
		return FormatTarGz, nil
	case strings.HasSuffix(name, ".zip"):
		return FormatZip, nil
	}
	return "", &UnsupportedFormatError{Path: path}
}

// Extract unpacks the archive at path into a uniquely-named temporary
// directory and returns the resulting Extraction. The extraction directory
// is not cleaned up automatically; the caller decides retention.
func Extract(path string) (*Extraction, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	root, err := os.MkdirTemp("", "mcfpack-package-")
	if err != nil {
		return nil, fmt.Errorf("failed to allocate extraction directory: %w", err)
	}

	switch format {
	case FormatTarGz:
		err = extractTarGz(path, root)
	case FormatZip:
		err = extractZip(path, root)
	}
	if err != nil {
		// Half-extracted scratch space is useless; reclaim it.
		os.RemoveAll(root)
		return nil, fmt.Errorf("failed to extract %s: %w", path, err)
	}

	files, err := listFiles(root)
	if err != nil {
		os.RemoveAll(root)
		return nil, err
	}

	return &Extraction{Root: root, Files: files}, nil
}

// Remove releases the extraction directory and everything under it.
func (e *Extraction) Remove() error {
	return os.RemoveAll(e.Root)
}

// extractTarGz unpacks a gzip-compressed tar stream, preserving relative
// paths and file modes.
func extractTarGz(path, destDir string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("not a gzip stream: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		destPath, err := securePath(destDir, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(destPath, fs.FileMode(header.Mode)); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
				return err
			}
			if err := writeFileFrom(tr, destPath, fs.FileMode(header.Mode)); err != nil {
				return err
			}
		default:
			// Symlinks and special files do not appear in package archives;
			// skip anything unexpected rather than materialize it.
			continue
		}
	}
}

// extractZip unpacks a zip container, preserving relative paths and file modes.
func extractZip(path, destDir string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, file := range r.File {
		destPath, err := securePath(destDir, file.Name)
		if err != nil {
			return err
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, file.Mode()); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return err
		}

		rc, err := file.Open()
		if err != nil {
			return err
		}
		err = writeFileFrom(rc, destPath, file.Mode())
		rc.Close()
		if err != nil {
			return fmt.Errorf("failed to extract %s: %w", file.Name, err)
		}
	}

	return nil
}

// securePath joins an archive entry name onto destDir and rejects entries
// that would escape it (e.g., "../something").
func securePath(destDir, entryName string) (string, error) {
	destPath := filepath.Join(destDir, filepath.FromSlash(entryName))
	relPath, err := filepath.Rel(destDir, destPath)
	if err != nil || relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid path in archive: %s", entryName)
	}
	return destPath, nil
}

// writeFileFrom creates destPath with the given mode and fills it from r.
func writeFileFrom(r io.Reader, destPath string, mode fs.FileMode) error {
	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, r)
	return err
}

// listFiles walks root and returns every regular file's path relative to
// root, sorted for deterministic reporting.
func listFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(relPath))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk extraction directory: %w", err)
	}
	sort.Strings(files)
	return files, nil
}
