package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Load loads the game configuration.
// Search order: ~/.flappy/config.yaml -> ./configs/flappy.yaml -> embedded default.
// The result is validated; a file that exists but fails to parse is an error.
func Load() (Config, error) {
	candidates := []string{"configs/flappy.yaml"}
	if p := userConfigPath("config.yaml"); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	return load(candidates)
}

func load(candidates []string) (Config, error) {
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		cfg = Default() // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}

// Validate rejects configurations whose geometry cannot be rendered.
func (c Config) Validate() error {
	if err := c.World.Validate(); err != nil {
		return err
	}
	if len(c.Assets.AvatarFrames) == 0 {
		return fmt.Errorf("%w: assets.avatar_frames is empty", ErrInvalid)
	}
	switch c.Record.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown record backend %q", ErrInvalid, c.Record.Backend)
	}
	if c.Session.GameOverDelay < 0 {
		return fmt.Errorf("%w: session.game_over_delay is negative", ErrInvalid)
	}
	if c.Window.Scale < 1 {
		return fmt.Errorf("%w: window.scale must be at least 1", ErrInvalid)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

// Validate checks the world constants.
func (w World) Validate() error {
	switch {
	case w.ScreenWidth <= 0 || w.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, w.ScreenWidth, w.ScreenHeight)
	case w.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate must be positive", ErrInvalid)
	case w.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive", ErrInvalid)
	case w.Gravity < 0:
		return fmt.Errorf("%w: gravity is negative", ErrInvalid)
	case w.ObstacleWidth <= 0 || w.ObstacleHeight <= 0:
		return fmt.Errorf("%w: obstacle size %dx%d", ErrInvalid, w.ObstacleWidth, w.ObstacleHeight)
	case w.GapHeight <= 0 || w.GapHeight >= w.ScreenHeight:
		return fmt.Errorf("%w: gap_height %d must be in (0, %d)", ErrInvalid, w.GapHeight, w.ScreenHeight)
	case w.GroundHeight <= 0 || w.GroundHeight >= w.ScreenHeight:
		return fmt.Errorf("%w: ground_height %d must be in (0, %d)", ErrInvalid, w.GroundHeight, w.ScreenHeight)
	case w.GroundWidth < w.ScreenWidth:
		return fmt.Errorf("%w: ground_width %d is narrower than the screen", ErrInvalid, w.GroundWidth)
	case w.GroundOverlap < 0:
		return fmt.Errorf("%w: ground_overlap is negative", ErrInvalid)
	case w.GroundWidth-w.GroundOverlap < w.ScreenWidth+w.step():
		return fmt.Errorf("%w: two ground tiles of width %d (overlap %d) cannot cover %d px at speed %g",
			ErrInvalid, w.GroundWidth, w.GroundOverlap, w.ScreenWidth, w.Speed)
	case w.ObstaclePairs < 1:
		return fmt.Errorf("%w: obstacle_pairs must be at least 1", ErrInvalid)
	case w.ObstacleSpacing < w.ObstacleWidth:
		return fmt.Errorf("%w: obstacle_spacing %d is below obstacle_width", ErrInvalid, w.ObstacleSpacing)
	case w.ObstaclePairs*w.ObstacleSpacing < w.ScreenWidth+w.ObstacleWidth+w.step():
		return fmt.Errorf("%w: %d pairs spaced %d apart would respawn on screen",
			ErrInvalid, w.ObstaclePairs, w.ObstacleSpacing)
	case w.FirstObstacleX < float64(w.ScreenWidth):
		return fmt.Errorf("%w: first_obstacle_x must be off the right edge", ErrInvalid)
	}

	lo, hi := w.reachableGapOffsets()
	if lo > hi {
		return fmt.Errorf("%w: no gap offset fits screen_height %d, gap_height %d, obstacle_height %d, ground_height %d",
			ErrInvalid, w.ScreenHeight, w.GapHeight, w.ObstacleHeight, w.GroundHeight)
	}
	if w.GapOffsetMin != 0 || w.GapOffsetMax != 0 {
		if w.GapOffsetMin > w.GapOffsetMax {
			return fmt.Errorf("%w: gap_offset_min %d exceeds gap_offset_max %d",
				ErrInvalid, w.GapOffsetMin, w.GapOffsetMax)
		}
		if w.GapOffsetMin < lo || w.GapOffsetMax > hi {
			return fmt.Errorf("%w: gap offsets [%d, %d] fall outside [%d, %d]",
				ErrInvalid, w.GapOffsetMin, w.GapOffsetMax, lo, hi)
		}
	}
	return nil
}

// GapOffsetRange returns the inclusive range the gap offset is drawn from.
// The offset is the distance from the screen bottom to the top edge of the
// bottom obstacle.
func (w World) GapOffsetRange() (lo, hi int) {
	if w.GapOffsetMin != 0 || w.GapOffsetMax != 0 {
		return w.GapOffsetMin, w.GapOffsetMax
	}
	return w.reachableGapOffsets()
}

// reachableGapOffsets bounds the offset so the gap stays on screen and above
// the ground, and both obstacle pieces reach their screen edge.
func (w World) reachableGapOffsets() (lo, hi int) {
	lo = max(w.GapHeight, w.ScreenHeight-w.GapHeight-w.ObstacleHeight, w.GroundHeight)
	hi = min(w.ScreenHeight-w.GapHeight, w.ObstacleHeight+w.GroundHeight)
	return lo, hi
}

// step is the per-tick scroll distance rounded up to whole pixels.
func (w World) step() int {
	return int(math.Ceil(w.Speed))
}

// FallLimit is the y coordinate the avatar's bottom edge must not pass.
func (w World) FallLimit() int {
	return w.ScreenHeight + w.FallLimitOffset
}

// SpawnY returns the avatar's starting y.
func (w World) SpawnY() float64 {
	if w.AvatarY != 0 {
		return w.AvatarY
	}
	return float64(w.ScreenHeight / 2)
}
