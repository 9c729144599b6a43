// Package testutil provides test fixtures for the scan and cleanup tests.
// All file operations use t.TempDir() for isolated testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Fixture is a temp directory tree with helpers to plant files of a given
// size and age.
type Fixture struct {
	T    *testing.T
	Root string
}

// NewFixture creates a fixture rooted in a fresh temp directory.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	return &Fixture{T: t, Root: t.TempDir()}
}

// Path joins relPath onto the fixture root.
func (f *Fixture) Path(relPath string) string {
	return filepath.Join(f.Root, relPath)
}

// CreateFile creates a file with the given content, making parent
// directories as needed, and returns its path.
func (f *Fixture) CreateFile(relPath string, content []byte) string {
	f.T.Helper()

	path := f.Path(relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		f.T.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", relPath, err)
	}
	return path
}

// CreateFileOfSize creates a file of exactly size bytes.
func (f *Fixture) CreateFileOfSize(relPath string, size int64) string {
	f.T.Helper()
	return f.CreateFile(relPath, make([]byte, size))
}

// CreateFileWithAge creates a file whose modification time is ageDays days
// in the past.
func (f *Fixture) CreateFileWithAge(relPath string, content []byte, ageDays int) string {
	f.T.Helper()

	path := f.CreateFile(relPath, content)
	mtime := time.Now().AddDate(0, 0, -ageDays)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		f.T.Fatalf("failed to set mtime on %s: %v", relPath, err)
	}
	return path
}

// CreateDir creates a directory under the root and returns its path.
func (f *Fixture) CreateDir(relPath string) string {
	f.T.Helper()

	path := f.Path(relPath)
	if err := os.MkdirAll(path, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", relPath, err)
	}
	return path
}
