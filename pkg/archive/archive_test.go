// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// testEntries is the file tree both synthetic archives carry.
var testEntries = map[string]string{
	"my_app/bin/my_app":        "#!/bin/sh\necho hi\n",
	"my_app/README.txt":        "My App 1.0\n",
	"my_app/config/app.json":   "{}\n",
	"my_app/plugins/libx.so":   "\x7fELF",
	"my_app/plugins/nested/.x": "hidden",
}

// writeTarGz builds a gzip-tar archive containing testEntries.
func writeTarGz(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	for _, name := range sortedKeys(testEntries) {
		content := testEntries[name]
		if err := tw.WriteHeader(&tar.Header{Name: name, Mode: 0755, Size: int64(len(content))}); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
}

// writeZip builds a zip archive containing testEntries.
func writeZip(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range sortedKeys(testEntries) {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(testEntries[name])); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
		wantErr  bool
	}{
		{name: "tar.gz", path: "my_app-1.0.0.tar.gz", expected: FormatTarGz},
		{name: "zip", path: "my_app-1.0.0.zip", expected: FormatZip},
		{name: "uppercase", path: "MY_APP.TAR.GZ", expected: FormatTarGz},
		{name: "plain gz", path: "my_app.gz", wantErr: true},
		{name: "tarball without gzip", path: "my_app.tar", wantErr: true},
		{name: "no extension", path: "my_app", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := DetectFormat(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DetectFormat(%q) = %q, want error", tt.path, format)
				}
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("error should wrap ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if format != tt.expected {
				t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, format, tt.expected)
			}
		})
	}
}

// Both container formats of the same file tree must extract to identical
// relative listings.
func TestExtract_FormatsAgree(t *testing.T) {
	dir := t.TempDir()
	tarPath := filepath.Join(dir, "pkg.tar.gz")
	zipPath := filepath.Join(dir, "pkg.zip")
	writeTarGz(t, tarPath)
	writeZip(t, zipPath)

	fromTar, err := Extract(tarPath)
	if err != nil {
		t.Fatal(err)
	}
	defer fromTar.Remove()

	fromZip, err := Extract(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer fromZip.Remove()

	if !slices.Equal(fromTar.Files, fromZip.Files) {
		t.Errorf("listings differ:\n tar: %v\n zip: %v", fromTar.Files, fromZip.Files)
	}
	if len(fromTar.Files) != len(testEntries) {
		t.Errorf("extracted %d files, want %d", len(fromTar.Files), len(testEntries))
	}
	if fromTar.Root == fromZip.Root {
		t.Error("extractions must not share a scratch directory")
	}
}

func TestExtract_PreservesContent(t *testing.T) {
	dir := t.TempDir()
	tarPath := filepath.Join(dir, "pkg.tar.gz")
	writeTarGz(t, tarPath)

	extraction, err := Extract(tarPath)
	if err != nil {
		t.Fatal(err)
	}
	defer extraction.Remove()

	data, err := os.ReadFile(filepath.Join(extraction.Root, "my_app", "README.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != testEntries["my_app/README.txt"] {
		t.Errorf("README content = %q, want %q", data, testEntries["my_app/README.txt"])
	}
}

func TestExtract_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "evil.tar.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	content := "owned"
	if err := tw.WriteHeader(&tar.Header{Name: "../escape.txt", Mode: 0644, Size: int64(len(content))}); err != nil {
		t.Fatal(err)
	}
	if _, err := tw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	tw.Close()
	gz.Close()
	f.Close()

	if _, err := Extract(path); err == nil {
		t.Error("Extract() accepted a path-traversal entry")
	}
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pkg.rar")
	if err := os.WriteFile(path, []byte("not an archive"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Extract(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Extract() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtraction_Remove(t *testing.T) {
	dir := t.TempDir()
	tarPath := filepath.Join(dir, "pkg.tar.gz")
	writeTarGz(t, tarPath)

	extraction, err := Extract(tarPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := extraction.Remove(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(extraction.Root); !os.IsNotExist(err) {
		t.Error("extraction root should be gone after Remove")
	}
}
