// Package adapter contains the filesystem, entropy and report adapters the
// domain layer is wired to.
package adapter

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"

	m "bitrot.dev/pkg/bitrot/internal/model"
)

const filePerms = 0o644

// FileAdapter abstracts the whole-file operations the generator and the
// injector rely on, so the domain can be tested without touching the disk.
type FileAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the file at path with content. The parent directory
	// must already exist.
	WriteFile(path m.Path, content []byte) error

	// HashFile returns the hex SHA-256 of the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalFileAdapter is the os-backed FileAdapter.
type LocalFileAdapter struct{}

// NewLocalFileAdapter constructs a LocalFileAdapter.
func NewLocalFileAdapter() *LocalFileAdapter {
	return &LocalFileAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalFileAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content through a temp file and rename so a reader never
// observes a half-written fixture. An existing file keeps its mode; new
// files get 0644.
func (a *LocalFileAdapter) WriteFile(path m.Path, content []byte) error {
	mode := os.FileMode(filePerms)

	info, err := os.Stat(string(path))
	switch {
	case err == nil:
		mode = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	if err := atomic.WriteFile(string(path), bytes.NewReader(content)); err != nil {
		return err
	}

	// the temp file behind atomic.WriteFile is created 0600.
	return os.Chmod(string(path), mode)
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalFileAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFileAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
