// Package flappy runs the world inside an ebiten window.
package flappy

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"

	"flappy/assets"
	"flappy/internal/config"
	"flappy/internal/world"
)

// ErrGameOver is returned from Update when a session ends and restarting is
// disabled.
var ErrGameOver = errors.New("game over")

var (
	scoreColor    = color.Black
	gameOverColor = color.RGBA{255, 0, 0, 255}
)

var exitFlag atomic.Bool

// ShouldExit reports whether the game has terminated.
func ShouldExit() bool { return exitFlag.Load() }

// SetExitFlag sets the value reported by ShouldExit.
func SetExitFlag(exit bool) { exitFlag.Store(exit) }

// Game adapts a world to ebiten.Game.
type Game struct {
	cfg        config.Config
	world      *world.World
	res        *ResourceManager
	sound      *Sound
	background *ebiten.Image
	face       text.Face
	logger     *log.Logger
	closed     bool
}

// AssetFS returns the directory dir, or the built-in assets when dir is empty.
func AssetFS(dir string) fs.FS {
	if dir == "" {
		return assets.FS
	}
	return os.DirFS(dir)
}

// NewGame is NewGameFS reading from AssetFS(cfg.Assets.Dir).
func NewGame(cfg config.Config, logger *log.Logger) (*Game, error) {
	return NewGameFS(cfg, AssetFS(cfg.Assets.Dir), logger)
}

// NewGameFS loads every asset named by cfg from fsys, opens the record store
// and starts the first session.
func NewGameFS(cfg config.Config, fsys fs.FS, logger *log.Logger) (*Game, error) {
	res := NewResourceManager(fsys, logger)

	sprites, err := res.LoadSprites(cfg)
	if err != nil {
		return nil, err
	}
	background, err := res.Background(cfg.Assets.Background)
	if err != nil {
		return nil, err
	}
	face, err := LoadFont(cfg.Assets.FontSize)
	if err != nil {
		return nil, err
	}

	music, err := res.LoadSound(cfg.Assets.Music)
	if err != nil {
		return nil, err
	}
	cue, err := res.LoadSound(cfg.Assets.GameOverSound)
	if err != nil {
		return nil, err
	}
	sound, err := NewSound(music, cue, cfg.Assets.MusicVolume, cfg.Assets.SoundVolume, logger)
	if err != nil {
		return nil, err
	}

	store, err := NewRecordStorage(cfg.Record)
	if err != nil {
		sound.Close()
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}

	ebiten.SetTPS(cfg.World.FrameRate)

	return &Game{
		cfg:        cfg,
		world:      world.New(cfg, sprites, store, sound, logger),
		res:        res,
		sound:      sound,
		background: background,
		face:       face,
		logger:     logger,
	}, nil
}

// World returns the simulated world.
func (g *Game) World() *world.World { return g.world }

func (g *Game) Update() error {
	return g.step(pollInput())
}

// step ticks the world once. On termination it releases every resource and
// returns the error that ends the ebiten loop.
func (g *Game) step(in world.Input) error {
	if g.closed {
		return ebiten.Termination
	}
	if g.world.Tick(in) != world.Terminated {
		return nil
	}

	SetExitFlag(true)
	g.logger.Info("terminated", "quit", g.world.Quit(), "best", g.world.Best(), "sessions", g.world.Sessions())
	g.Close()
	if g.world.Quit() {
		return ebiten.Termination
	}
	return ErrGameOver
}

// pollInput drains the just-pressed events of this tick.
func pollInput() world.Input {
	var in world.Input
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		in.Quit = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		in.Jump = true
	}
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.closed {
		return
	}
	g.drawBackground(screen)

	for _, e := range g.world.Entities() {
		op := &ebiten.DrawImageOptions{}
		pos := e.Bounds().Min
		op.GeoM.Translate(float64(pos.X), float64(pos.Y))
		screen.DrawImage(g.res.Texture(e.Sprite()), op)
	}

	g.drawText(screen, fmt.Sprintf("Points: %d", g.world.Score()), 20, 20, scoreColor, text.AlignStart)

	if g.world.State() == world.GameOver {
		w, h := g.cfg.World.ScreenWidth, g.cfg.World.ScreenHeight
		g.drawText(screen, fmt.Sprintf("Game Over! Record: %d", g.world.Best()), w/2, h/2, gameOverColor, text.AlignCenter)
	}
}

// drawBackground stretches the background over the whole screen.
func (g *Game) drawBackground(screen *ebiten.Image) {
	bw, bh := g.background.Bounds().Dx(), g.background.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(g.cfg.World.ScreenWidth)/float64(bw),
		float64(g.cfg.World.ScreenHeight)/float64(bh),
	)
	screen.DrawImage(g.background, op)
}

func (g *Game) drawText(screen *ebiten.Image, str string, x, y int, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	if align == text.AlignCenter {
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(screen, str, g.face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.World.ScreenWidth, g.cfg.World.ScreenHeight
}

// Close releases textures and audio players. It is safe to call more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.res.Clear()
	if g.sound != nil {
		g.sound.Close()
	}
}
