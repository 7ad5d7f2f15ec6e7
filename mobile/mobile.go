package mobile

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"flappy"
	"flappy/assets"
	"flappy/internal/config"
)

func init() {
	// The game must be registered before the host activity starts it.
	cfg, err := config.Load()
	if err != nil {
		panic("flappy: " + err.Error())
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "flappy"})

	game, err := flappy.NewGameFS(cfg, assets.FS, logger)
	if err != nil {
		panic("flappy: " + err.Error())
	}
	mobile.SetGame(game)
}

// ShouldExit lets the host activity poll whether the game has terminated.
//
//export ShouldExit
func ShouldExit() bool {
	return flappy.ShouldExit()
}

// SetExitFlag overrides the termination flag.
//
//export SetExitFlag
func SetExitFlag(exit bool) {
	flappy.SetExitFlag(exit)
}

// Dummy is a dummy exported function.
//
// gomobile doesn't compile a package that doesn't include any exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}
