//go:build !js && !android

package record

import (
	"path/filepath"
	"testing"

	"flappy/internal/config"
)

func TestSQLiteSaveLoad(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("NewSQLite() failed: %v", err)
	}

	best, err := s.Load()
	if err != nil || best != 0 {
		t.Fatalf("Load() on empty db = %d, %v; want 0, nil", best, err)
	}

	for _, v := range []int{5, 9} {
		if err := s.Save(v); err != nil {
			t.Fatalf("Save(%d) failed: %v", v, err)
		}
	}
	best, err = s.Load()
	if err != nil || best != 9 {
		t.Errorf("Load() = %d, %v; want 9, nil", best, err)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(config.Record{Backend: config.BackendFile, Path: filepath.Join(dir, "r.txt")})
	if err != nil {
		t.Fatalf("Open(file) failed: %v", err)
	}
	if _, ok := s.(*File); !ok {
		t.Errorf("Open(file) = %T, want *File", s)
	}

	s, err = Open(config.Record{Backend: config.BackendSQLite, Path: filepath.Join(dir, "r.db")})
	if err != nil {
		t.Fatalf("Open(sqlite) failed: %v", err)
	}
	if _, ok := s.(*SQLite); !ok {
		t.Errorf("Open(sqlite) = %T, want *SQLite", s)
	}

	if _, err := Open(config.Record{Backend: "redis"}); err == nil {
		t.Error("Open(redis) should fail")
	}
}
