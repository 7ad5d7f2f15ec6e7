package world

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"flappy/internal/config"
	"flappy/internal/record"
	"flappy/internal/sprite"
)

// State is the session state.
type State int

const (
	Playing State = iota
	GameOver
	Terminated
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Input is the input gathered for one tick.
type Input struct {
	Quit bool
	Jump bool
}

// Audio receives the sound cues of the session.
type Audio interface {
	StartMusic()
	StopMusic()
	PlayGameOver()
}

type silence struct{}

func (silence) StartMusic()   {}
func (silence) StopMusic()    {}
func (silence) PlayGameOver() {}

// World owns every entity and the session state, and advances them one tick
// at a time.
type World struct {
	cfg     config.World
	session config.Session
	sprites *Sprites
	store   record.Store
	audio   Audio
	logger  *log.Logger
	gen     *PairGenerator

	state    State
	quit     bool
	avatar   *Avatar
	grounds  []*GroundTile
	pairs    []*ObstaclePair
	score    int
	best     int
	updated  bool
	hold     int
	sessions int
}

// New creates a world and starts its first session. cfg must already be
// validated. A nil audio plays nothing; a nil logger discards output.
func New(cfg config.Config, sprites *Sprites, store record.Store, audio Audio, logger *log.Logger) *World {
	if audio == nil {
		audio = silence{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := &World{
		cfg:     cfg.World,
		session: cfg.Session,
		sprites: sprites,
		store:   store,
		audio:   audio,
		logger:  logger,
		gen:     NewPairGenerator(cfg.World, sprites, rand.New(rand.NewSource(seed))),
	}
	w.start()
	return w
}

// start resets every entity and begins a Playing session.
func (w *World) start() {
	if w.avatar == nil {
		w.avatar = NewAvatar(w.cfg.AvatarX, w.cfg.SpawnY(), w.cfg.Speed, w.cfg.Gravity,
			w.cfg.RotationFactor, w.sprites.AvatarFrames)
	} else {
		w.avatar.Reset(w.cfg.AvatarX, w.cfg.SpawnY())
	}

	w.grounds = []*GroundTile{w.newGround(0)}
	w.grounds = append(w.grounds, w.newGround(w.nextGroundX()))

	w.pairs = w.pairs[:0]
	for i := 0; i < w.cfg.ObstaclePairs; i++ {
		x := w.cfg.FirstObstacleX + float64(i*w.cfg.ObstacleSpacing)
		w.pairs = append(w.pairs, w.gen.Generate(x))
	}

	best, err := record.Read(w.store)
	if err != nil {
		w.logger.Warn("could not read best score, assuming 0", "error", err)
	}
	w.best = max(w.best, best)

	w.score = 0
	w.updated = false
	w.hold = 0
	w.state = Playing
	w.sessions++
	w.audio.StartMusic()
	w.logger.Info("session started", "session", w.sessions, "best", w.best)
}

func (w *World) newGround(x float64) *GroundTile {
	return &GroundTile{
		x:      x,
		y:      w.cfg.ScreenHeight - w.sprites.Ground.Size().Y,
		speed:  w.cfg.Speed,
		sprite: w.sprites.Ground,
	}
}

// nextGroundX is where a tile appended after the rightmost one starts.
func (w *World) nextGroundX() float64 {
	last := w.grounds[len(w.grounds)-1]
	return last.x + float64(last.sprite.Size().X-w.cfg.GroundOverlap)
}

// Tick advances the world by one tick and returns the resulting state.
func (w *World) Tick(in Input) State {
	switch w.state {
	case Playing:
		if in.Quit {
			w.terminate(true)
			return w.state
		}
		if in.Jump {
			w.avatar.Jump()
		}
		if w.Collided() {
			w.gameOver()
			return w.state
		}
		w.recycle()
		w.advance()

	case GameOver:
		if in.Quit {
			w.terminate(true)
			return w.state
		}
		if w.hold > 0 {
			w.hold--
		}
		if w.hold == 0 {
			if w.session.RestartOnGameOver {
				w.start()
			} else {
				w.terminate(false)
			}
		}
	}
	return w.state
}

// Collided reports whether the avatar touches the ground, an obstacle, or
// has fallen past the fall limit.
func (w *World) Collided() bool {
	if w.avatar.Bounds().Max.Y > w.cfg.FallLimit() {
		return true
	}
	for _, g := range w.grounds {
		if Collide(w.avatar, g) {
			return true
		}
	}
	for _, p := range w.pairs {
		if Collide(w.avatar, p.Top) || Collide(w.avatar, p.Bottom) {
			return true
		}
	}
	return false
}

// Collide reports whether the masks of a and b overlap at their current positions.
func Collide(a, b Entity) bool {
	return sprite.Overlap(a.Sprite().Mask, a.Bounds(), b.Sprite().Mask, b.Bounds())
}

// recycle replaces the leftmost ground tile and obstacle pair once they have
// scrolled fully off screen. Each recycled pair scores one point.
func (w *World) recycle() {
	if w.grounds[0].Bounds().Max.X < 0 {
		x := w.nextGroundX()
		w.grounds = append(w.grounds[1:], w.newGround(x))
	}

	if len(w.pairs) > 0 && w.pairs[0].Right() < 0 {
		last := w.pairs[len(w.pairs)-1]
		next := w.gen.Generate(last.X() + float64(w.cfg.ObstacleSpacing))
		w.pairs = append(w.pairs[1:], next)
		w.score++
	}
}

func (w *World) advance() {
	w.avatar.Advance()
	for _, g := range w.grounds {
		g.Advance()
	}
	for _, p := range w.pairs {
		p.Advance()
	}
}

func (w *World) gameOver() {
	best, updated, err := record.Commit(w.store, w.score)
	if err != nil {
		w.logger.Warn("could not persist best score", "error", err)
	}
	w.best = max(w.best, best)
	w.updated = updated

	w.audio.StopMusic()
	w.audio.PlayGameOver()

	w.hold = holdTicks(w.session.GameOverDelay, w.cfg.FrameRate)
	w.state = GameOver
	w.logger.Info("game over", "score", w.score, "best", w.best, "new_record", updated)
}

func (w *World) terminate(quit bool) {
	w.quit = quit
	w.state = Terminated
	w.audio.StopMusic()
}

// holdTicks converts the game-over delay to a tick count.
func holdTicks(d time.Duration, frameRate int) int {
	return int(math.Ceil(d.Seconds() * float64(frameRate)))
}

// State returns the session state.
func (w *World) State() State { return w.state }

// Quit reports whether termination was requested by the player rather than
// caused by a game over.
func (w *World) Quit() bool { return w.quit }

// Score returns the number of obstacle pairs passed this session.
func (w *World) Score() int { return w.score }

// Best returns the best score known to this process.
func (w *World) Best() int { return w.best }

// RecordUpdated reports whether the last game over raised the stored best.
func (w *World) RecordUpdated() bool { return w.updated }

// Sessions returns how many sessions have started.
func (w *World) Sessions() int { return w.sessions }

// Avatar returns the player entity.
func (w *World) Avatar() *Avatar { return w.avatar }

// Grounds returns the live ground tiles, leftmost first.
func (w *World) Grounds() []*GroundTile { return w.grounds }

// Pairs returns the live obstacle pairs, leftmost first.
func (w *World) Pairs() []*ObstaclePair { return w.pairs }

// Entities returns every entity in draw order: ground, obstacles, avatar.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.grounds)+2*len(w.pairs)+1)
	for _, g := range w.grounds {
		out = append(out, g)
	}
	for _, p := range w.pairs {
		out = append(out, p.Top, p.Bottom)
	}
	return append(out, w.avatar)
}
