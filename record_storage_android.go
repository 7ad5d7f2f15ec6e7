//go:build android

package flappy

import (
	"os"
	"path/filepath"

	"flappy/internal/config"
	"flappy/internal/record"
)

var customRecordDir string

// SetRecordDir is called by the mobile package with the app's files
// directory. It takes effect on the next load or save.
func SetRecordDir(path string) {
	customRecordDir = path
}

type androidRecordStorage struct {
	name string
}

func newRecordStorage(cfg config.Record) (record.Store, error) {
	return &androidRecordStorage{name: filepath.Base(cfg.Path)}, nil
}

// file resolves the record location on each call since the directory may
// be set after the game is created.
func (s *androidRecordStorage) file() *record.File {
	dir := customRecordDir
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			dir = "."
		}
	}
	return record.NewFile(filepath.Join(dir, s.name))
}

func (s *androidRecordStorage) Load() (int, error) { return s.file().Load() }

func (s *androidRecordStorage) Save(best int) error { return s.file().Save(best) }
