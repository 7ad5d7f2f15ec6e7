// flappy is a side-scrolling arcade game: steer the bird through the gaps.
//
// Usage:
//
//	flappy        - Play
//	flappy best   - Print the stored best score
//
// Configuration is read from ~/.flappy/config.yaml, then ./configs/flappy.yaml,
// falling back to the built-in defaults.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"flappy"
	"flappy/internal/config"
)

// Exit codes.
const (
	exitQuit     = 0
	exitFailure  = 1
	exitGameOver = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, flappy.ErrGameOver) {
			os.Exit(exitGameOver)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
	os.Exit(exitQuit)
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - steer the bird through the gaps",
	Long: `Flappy is a single-screen arcade game. Press Space, Up, click or tap to
flap; Escape quits. The best score is kept between runs.

Examples:
  flappy
  flappy best`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.AddCommand(bestCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.World.ScreenWidth*cfg.Window.Scale, cfg.World.ScreenHeight*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowClosingHandled(true)

	game, err := flappy.NewGame(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	defer game.Close()

	return ebiten.RunGame(game)
}

// setup loads the configuration and builds the logger.
func setup() (config.Config, *log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

func newLogger(cfg config.Log) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	}), nil
}
