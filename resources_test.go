package flappy

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"

	"flappy/assets"
	"flappy/internal/config"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() failed: %v", err)
	}
	return buf.Bytes()
}

func testAssets(t *testing.T) fstest.MapFS {
	solid := color.NRGBA{0, 128, 0, 255}
	return fstest.MapFS{
		"bird-up.png":     {Data: encodePNG(t, 34, 24, solid)},
		"bird-middle.png": {Data: encodePNG(t, 34, 24, solid)},
		"bird-down.png":   {Data: encodePNG(t, 34, 24, solid)},
		"pipe.png":        {Data: encodePNG(t, 52, 320, solid)},
		"base.png":        {Data: encodePNG(t, 336, 112, solid)},
		"music.mp3":       {Data: []byte("not really mp3")},
	}
}

func TestLoadSpritesScalesToConfig(t *testing.T) {
	cfg := config.Default()
	rm := NewResourceManager(testAssets(t), log.New(io.Discard))

	s, err := rm.LoadSprites(cfg)
	if err != nil {
		t.Fatalf("LoadSprites() failed: %v", err)
	}

	if len(s.AvatarFrames) != 3 {
		t.Fatalf("got %d avatar frames, want 3", len(s.AvatarFrames))
	}
	if got := s.AvatarFrames[0].Size(); got != image.Pt(34, 24) {
		t.Errorf("avatar frame size = %v, want (34,24)", got)
	}

	obstacle := image.Pt(cfg.World.ObstacleWidth, cfg.World.ObstacleHeight)
	if got := s.Obstacle.Size(); got != obstacle {
		t.Errorf("obstacle size = %v, want %v", got, obstacle)
	}
	if got := s.ObstacleInverted.Size(); got != obstacle {
		t.Errorf("inverted obstacle size = %v, want %v", got, obstacle)
	}
	ground := image.Pt(cfg.World.GroundWidth, cfg.World.GroundHeight)
	if got := s.Ground.Size(); got != ground {
		t.Errorf("ground size = %v, want %v", got, ground)
	}
	if s.Ground.Mask.Count() != cfg.World.GroundWidth*cfg.World.GroundHeight {
		t.Error("opaque ground should be fully solid")
	}
}

func TestLoadImageIsCached(t *testing.T) {
	rm := NewResourceManager(testAssets(t), log.New(io.Discard))

	a, err := rm.LoadImage("pipe.png")
	if err != nil {
		t.Fatalf("LoadImage() failed: %v", err)
	}
	b, err := rm.LoadImage("pipe.png")
	if err != nil {
		t.Fatalf("LoadImage() failed: %v", err)
	}
	if a != b {
		t.Error("second LoadImage() should return the cached image")
	}
}

func TestMissingAssetNamesPath(t *testing.T) {
	assets := testAssets(t)
	delete(assets, "base.png")
	rm := NewResourceManager(assets, log.New(io.Discard))

	_, err := rm.LoadSprites(config.Default())
	if err == nil {
		t.Fatal("LoadSprites() should fail without base.png")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v should wrap fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "base.png") {
		t.Errorf("error %q should name the missing asset", err)
	}
}

func TestUndecodableImage(t *testing.T) {
	rm := NewResourceManager(testAssets(t), log.New(io.Discard))
	if _, err := rm.LoadImage("music.mp3"); err == nil {
		t.Error("LoadImage() should fail on non-image data")
	}
}

func TestLoadSound(t *testing.T) {
	rm := NewResourceManager(testAssets(t), log.New(io.Discard))

	b, err := rm.LoadSound("music.mp3")
	if err != nil || string(b) != "not really mp3" {
		t.Errorf("LoadSound() = %q, %v", b, err)
	}
	if _, err := rm.LoadSound("missing.mp3"); err == nil {
		t.Error("LoadSound() should fail for a missing file")
	}
}

func TestLoadFont(t *testing.T) {
	face, err := LoadFont(30)
	if err != nil {
		t.Fatalf("LoadFont() failed: %v", err)
	}
	if face == nil {
		t.Fatal("LoadFont() returned nil face")
	}
}

func TestLoadBuiltInSprites(t *testing.T) {
	rm := NewResourceManager(assets.FS, log.New(io.Discard))
	if _, err := rm.LoadSprites(config.Default()); err != nil {
		t.Fatalf("LoadSprites() on built-in assets failed: %v", err)
	}
	if _, err := rm.LoadImage(config.Default().Assets.Background); err != nil {
		t.Errorf("LoadImage(background) failed: %v", err)
	}
}
