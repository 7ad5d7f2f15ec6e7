// Package record persists the best score.
package record

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMalformed is returned when a stored record cannot be parsed.
var ErrMalformed = errors.New("record: malformed best score")

// Store reads and writes the best score. Implementations open the underlying
// resource for each call and keep no handle between calls.
type Store interface {
	Load() (int, error)
	Save(best int) error
}

// Read returns the stored best score, or 0 when the record is unreadable.
// The error is still returned so the caller can report it.
func Read(s Store) (int, error) {
	best, err := s.Load()
	if err != nil || best < 0 {
		return 0, err
	}
	return best, nil
}

// Commit performs the read-modify-write at game over: the record is
// overwritten only when score exceeds the stored best. It returns the best
// score after the commit and whether the record changed.
func Commit(s Store, score int) (best int, updated bool, err error) {
	best, loadErr := Read(s)
	if score <= best {
		return best, false, loadErr
	}
	if err := s.Save(score); err != nil {
		return best, false, errors.Join(loadErr, fmt.Errorf("record: cannot save best score: %w", err))
	}
	return score, true, loadErr
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("record: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
