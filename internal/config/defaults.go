package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title: "Flappy Bird",
			Scale: 1,
		},
		World: World{
			ScreenWidth:     400,
			ScreenHeight:    800,
			ObstacleWidth:   80,
			ObstacleHeight:  500,
			GapHeight:       180,
			ObstacleSpacing: 400,
			ObstaclePairs:   2,
			FirstObstacleX:  800,
			GroundWidth:     800,
			GroundHeight:    100,
			GroundOverlap:   20,
			AvatarX:         50,
			RotationFactor:  2,
			Speed:           10,
			Gravity:         1,
			FrameRate:       30,
			FallLimitOffset: 50,
		},
		Assets: Assets{
			Dir:           "",
			AvatarFrames:  []string{"bird-up.png", "bird-middle.png", "bird-down.png"},
			Obstacle:      "pipe.png",
			Ground:        "base.png",
			Background:    "bg.png",
			Music:         "music.mp3",
			GameOverSound: "game-over.mp3",
			MusicVolume:   0.2,
			SoundVolume:   0.4,
			FontSize:      30,
		},
		Record: Record{
			Backend: BackendFile,
			Path:    "~/.flappy/records.txt",
		},
		Session: Session{
			RestartOnGameOver: true,
			GameOverDelay:     3 * time.Second,
		},
		Log: Log{
			Level: "info",
		},
	}
}
