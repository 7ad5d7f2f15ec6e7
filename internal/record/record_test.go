package record

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileMissingIsZero(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "records.txt"))
	best, err := f.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Load() = %d, want 0", best)
	}
}

func TestFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	if err := os.WriteFile(path, []byte("lots"), 0o644); err != nil {
		t.Fatal(err)
	}

	best, err := Read(NewFile(path))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Read() error = %v, want ErrMalformed", err)
	}
	if best != 0 {
		t.Errorf("Read() = %d, want 0", best)
	}
}

func TestFileSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "records.txt")
	f := NewFile(path)

	if err := f.Save(42); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	best, err := f.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if best != 42 {
		t.Errorf("Load() = %d, want 42", best)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want only the record", len(entries))
	}
}

func TestFileAcceptsTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	if err := os.WriteFile(path, []byte("17\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	best, err := NewFile(path).Load()
	if err != nil || best != 17 {
		t.Errorf("Load() = %d, %v; want 17, nil", best, err)
	}
}

func TestCommit(t *testing.T) {
	tests := []struct {
		name        string
		stored      int
		score       int
		wantBest    int
		wantUpdated bool
	}{
		{"higher score overwrites", 3, 5, 5, true},
		{"lower score keeps record", 7, 2, 7, false},
		{"equal score keeps record", 4, 4, 4, false},
		{"first record", 0, 1, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFile(filepath.Join(t.TempDir(), "records.txt"))
			if tt.stored > 0 {
				if err := f.Save(tt.stored); err != nil {
					t.Fatal(err)
				}
			}

			best, updated, err := Commit(f, tt.score)
			if err != nil {
				t.Fatalf("Commit() failed: %v", err)
			}
			if best != tt.wantBest || updated != tt.wantUpdated {
				t.Errorf("Commit() = %d, %v; want %d, %v", best, updated, tt.wantBest, tt.wantUpdated)
			}

			stored, err := f.Load()
			if err != nil {
				t.Fatal(err)
			}
			if stored != tt.wantBest {
				t.Errorf("stored best = %d, want %d", stored, tt.wantBest)
			}
		})
	}
}

func TestCommitOverMalformedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	if err := os.WriteFile(path, []byte("??"), 0o644); err != nil {
		t.Fatal(err)
	}

	best, updated, err := Commit(NewFile(path), 3)
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Commit() error = %v, want ErrMalformed reported", err)
	}
	if best != 3 || !updated {
		t.Errorf("Commit() = %d, %v; want 3, true", best, updated)
	}
}
