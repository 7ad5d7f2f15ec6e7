package flappy

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"flappy/assets"
	"flappy/internal/config"
	"flappy/internal/record"
	"flappy/internal/world"
)

// newTestGame builds a game on the built-in sprites without audio.
func newTestGame(t *testing.T, cfg config.Config) *Game {
	t.Helper()
	logger := log.New(io.Discard)
	res := NewResourceManager(assets.FS, logger)
	sprites, err := res.LoadSprites(cfg)
	if err != nil {
		t.Fatalf("LoadSprites() failed: %v", err)
	}
	store := record.NewFile(filepath.Join(t.TempDir(), "records.txt"))
	return &Game{
		cfg:    cfg,
		world:  world.New(cfg, sprites, store, nil, logger),
		res:    res,
		logger: logger,
	}
}

func TestStepQuitReleasesResources(t *testing.T) {
	SetExitFlag(false)
	g := newTestGame(t, config.Default())

	if err := g.step(world.Input{}); err != nil {
		t.Fatalf("step() while playing = %v, want nil", err)
	}
	if ShouldExit() {
		t.Fatal("ShouldExit() before termination")
	}

	if err := g.step(world.Input{Quit: true}); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("step(quit) = %v, want ebiten.Termination", err)
	}
	if !g.closed || !ShouldExit() {
		t.Errorf("closed = %v, ShouldExit = %v; want both true", g.closed, ShouldExit())
	}

	g.Close()
	if err := g.step(world.Input{}); !errors.Is(err, ebiten.Termination) {
		t.Errorf("step() after close = %v, want ebiten.Termination", err)
	}
}

func TestStepGameOverWithoutRestart(t *testing.T) {
	SetExitFlag(false)
	cfg := config.Default()
	cfg.Session.RestartOnGameOver = false
	cfg.Session.GameOverDelay = 0
	g := newTestGame(t, cfg)

	var err error
	for i := 0; i < 1000 && err == nil; i++ {
		err = g.step(world.Input{})
	}
	if !errors.Is(err, ErrGameOver) {
		t.Fatalf("step() = %v, want ErrGameOver", err)
	}
	if !g.closed || !ShouldExit() {
		t.Errorf("closed = %v, ShouldExit = %v; want both true", g.closed, ShouldExit())
	}
}

func TestAssetFS(t *testing.T) {
	if AssetFS("") != assets.FS {
		t.Error("AssetFS(\"\") should be the built-in assets")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pipe.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	rm := NewResourceManager(AssetFS(dir), log.New(io.Discard))
	if _, err := rm.LoadImage("pipe.png"); err == nil {
		t.Error("LoadImage() should read pipe.png from the directory and fail to decode it")
	}
	if _, err := rm.LoadSound("pipe.png"); err != nil {
		t.Errorf("LoadSound() from directory failed: %v", err)
	}
}

func TestNewSoundRejectsBadCue(t *testing.T) {
	music, err := assets.FS.ReadFile("music.mp3")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewSound(music, []byte("not mp3"), 0.2, 0.4, log.New(io.Discard)); err == nil {
		t.Fatal("NewSound() should fail on an undecodable cue")
	}
}
