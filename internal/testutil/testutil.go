// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory,
// creating parent directories as needed. Returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// MkdirAll creates a directory tree under dir and returns the full path.
func MkdirAll(t *testing.T, dir string, parts ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{dir}, parts...)...)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
	return path
}

// WritePackage creates a package directory with an __init__.py under
// root/under. The dotted name maps to a nested directory tree; intermediate
// directories do not get an __init__.py of their own.
func WritePackage(t *testing.T, root, under, dotted string) {
	t.Helper()
	path := filepath.Join(root, under)
	for _, part := range splitDotted(dotted) {
		path = filepath.Join(path, part)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create package dir %s: %v", path, err)
	}
	if err := os.WriteFile(filepath.Join(path, "__init__.py"), nil, 0o644); err != nil {
		t.Fatalf("failed to write __init__.py in %s: %v", path, err)
	}
}

func splitDotted(dotted string) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(dotted); i++ {
		if i == len(dotted) || dotted[i] == '.' {
			if i > start {
				parts = append(parts, dotted[start:i])
			}
			start = i + 1
		}
	}
	return parts
}
