package record

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// File keeps the best score as a decimal integer in a text file.
type File struct {
	path string
}

// NewFile returns a store backed by the file at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the record location.
func (f *File) Path() string {
	return f.path
}

// Load reads the record. A missing file is a best score of 0.
func (f *File) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("record: cannot read %s: %w", f.path, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	best, err := strconv.Atoi(text)
	if err != nil || best < 0 {
		return 0, fmt.Errorf("%w: %q in %s", ErrMalformed, text, f.path)
	}
	return best, nil
}

// Save replaces the record. The new value is written to a temporary file in
// the same directory and renamed over the old one, so a crash never leaves a
// partial record behind.
func (f *File) Save(best int) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("record: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".record-*")
	if err != nil {
		return fmt.Errorf("record: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(best)); err != nil {
		tmp.Close()
		return fmt.Errorf("record: cannot write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("record: cannot sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("record: cannot close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("record: cannot replace %s: %w", f.path, err)
	}
	return nil
}
