package flappy

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

const sampleRate = 44100

// Sound plays the background music loop and the game-over cue.
type Sound struct {
	ctx      *audio.Context
	music    *audio.Player
	gameOver *audio.Player
	logger   *log.Logger
}

// NewSound decodes both MP3 clips, then creates their players. Only one audio
// context may exist per process.
func NewSound(music, gameOver []byte, musicVolume, soundVolume float64, logger *log.Logger) (*Sound, error) {
	stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(music))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music: %w", err)
	}
	cue, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(gameOver))
	if err != nil {
		return nil, fmt.Errorf("failed to decode game over sound: %w", err)
	}

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	musicPlayer, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("failed to create music player: %w", err)
	}
	musicPlayer.SetVolume(musicVolume)

	cuePlayer, err := ctx.NewPlayer(cue)
	if err != nil {
		musicPlayer.Close()
		return nil, fmt.Errorf("failed to create game over player: %w", err)
	}
	cuePlayer.SetVolume(soundVolume)

	return &Sound{ctx: ctx, music: musicPlayer, gameOver: cuePlayer, logger: logger}, nil
}

// StartMusic plays the music loop from the beginning.
func (s *Sound) StartMusic() {
	s.gameOver.Pause()
	if err := s.music.SetPosition(0); err != nil {
		s.logger.Warn("could not rewind music", "error", err)
	}
	s.music.Play()
}

// StopMusic pauses the music loop.
func (s *Sound) StopMusic() {
	s.music.Pause()
}

// PlayGameOver plays the game-over cue once.
func (s *Sound) PlayGameOver() {
	if err := s.gameOver.SetPosition(0); err != nil {
		s.logger.Warn("could not rewind game over sound", "error", err)
	}
	s.gameOver.Play()
}

// Close releases both players.
func (s *Sound) Close() {
	s.music.Close()
	s.gameOver.Close()
}
