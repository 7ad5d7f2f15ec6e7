// Package config provides YAML-based configuration loading and validation
// for the game.
package config

import "time"

// Config is the complete game configuration.
type Config struct {
	Window  Window  `yaml:"window"`
	World   World   `yaml:"world"`
	Assets  Assets  `yaml:"assets"`
	Record  Record  `yaml:"record"`
	Session Session `yaml:"session"`
	Log     Log     `yaml:"log"`
}

// Window defines the desktop window.
type Window struct {
	Title string `yaml:"title"`
	Scale int    `yaml:"scale"` // Window size multiplier over the logical screen
}

// World holds the constants shared by every entity of a session.
type World struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`

	ObstacleWidth   int     `yaml:"obstacle_width"`
	ObstacleHeight  int     `yaml:"obstacle_height"`
	GapHeight       int     `yaml:"gap_height"`
	GapOffsetMin    int     `yaml:"gap_offset_min"` // 0 = derived from the geometry
	GapOffsetMax    int     `yaml:"gap_offset_max"` // 0 = derived from the geometry
	ObstacleSpacing int     `yaml:"obstacle_spacing"`
	ObstaclePairs   int     `yaml:"obstacle_pairs"`
	FirstObstacleX  float64 `yaml:"first_obstacle_x"`

	GroundWidth   int `yaml:"ground_width"`
	GroundHeight  int `yaml:"ground_height"`
	GroundOverlap int `yaml:"ground_overlap"`

	AvatarX        float64 `yaml:"avatar_x"`
	AvatarY        float64 `yaml:"avatar_y"` // 0 = half the screen height
	RotationFactor float64 `yaml:"rotation_factor"`

	Speed           float64 `yaml:"speed"`
	Gravity         float64 `yaml:"gravity"`
	FrameRate       int     `yaml:"frame_rate"`
	FallLimitOffset int     `yaml:"fall_limit_offset"`
	Seed            int64   `yaml:"seed"` // 0 = time based
}

// Assets names the files loaded at startup, relative to Dir.
type Assets struct {
	Dir           string   `yaml:"dir"` // Empty uses the built-in assets
	AvatarFrames  []string `yaml:"avatar_frames"`
	Obstacle      string   `yaml:"obstacle"`
	Ground        string   `yaml:"ground"`
	Background    string   `yaml:"background"`
	Music         string   `yaml:"music"`
	GameOverSound string   `yaml:"game_over_sound"`
	MusicVolume   float64  `yaml:"music_volume"`
	SoundVolume   float64  `yaml:"sound_volume"`
	FontSize      float64  `yaml:"font_size"`
}

// Record selects where the best score is kept.
type Record struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`
}

// Session controls what happens after a game over.
type Session struct {
	RestartOnGameOver bool          `yaml:"restart_on_game_over"`
	GameOverDelay     time.Duration `yaml:"game_over_delay"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"`
}

// Record backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)
