package assets

import (
	"bytes"
	"image"
	_ "image/png"
	"io/fs"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

func TestImagesDecode(t *testing.T) {
	names, err := fs.Glob(FS, "*.png")
	if err != nil || len(names) != 6 {
		t.Fatalf("Glob(*.png) = %v, %v; want 6 images", names, err)
	}
	for _, name := range names {
		f, err := FS.Open(name)
		if err != nil {
			t.Fatalf("Open(%s) failed: %v", name, err)
		}
		_, _, err = image.Decode(f)
		f.Close()
		if err != nil {
			t.Errorf("Decode(%s) failed: %v", name, err)
		}
	}
}

func TestSoundsDecode(t *testing.T) {
	for _, name := range []string{"music.mp3", "game-over.mp3"} {
		b, err := FS.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%s) failed: %v", name, err)
		}
		s, err := mp3.DecodeWithSampleRate(44100, bytes.NewReader(b))
		if err != nil {
			t.Fatalf("DecodeWithSampleRate(%s) failed: %v", name, err)
		}
		if s.Length() <= 0 {
			t.Errorf("%s decoded to %d bytes", name, s.Length())
		}
	}
}
