package world

import (
	"math/rand"

	"flappy/internal/config"
)

// PairGenerator creates obstacle pairs with a randomly placed gap.
type PairGenerator struct {
	rng          *rand.Rand
	lo, hi       int
	screenHeight int
	gapHeight    int
	speed        float64
	sprites      *Sprites
}

// NewPairGenerator builds a generator drawing gap offsets from the range
// allowed by cfg. cfg must already be validated.
func NewPairGenerator(cfg config.World, sprites *Sprites, rng *rand.Rand) *PairGenerator {
	lo, hi := cfg.GapOffsetRange()
	return &PairGenerator{
		rng:          rng,
		lo:           lo,
		hi:           hi,
		screenHeight: cfg.ScreenHeight,
		gapHeight:    cfg.GapHeight,
		speed:        cfg.Speed,
		sprites:      sprites,
	}
}

// Generate returns a pair at x. The offset is the distance from the screen
// bottom to the top edge of the bottom piece; the top piece ends exactly
// gapHeight above it.
func (g *PairGenerator) Generate(x float64) *ObstaclePair {
	offset := g.lo + g.rng.Intn(g.hi-g.lo+1)
	bottomY := g.screenHeight - offset
	topY := bottomY - g.gapHeight - g.sprites.ObstacleInverted.Size().Y

	return &ObstaclePair{
		Top: &Obstacle{
			x:      x,
			y:      topY,
			speed:  g.speed,
			sprite: g.sprites.ObstacleInverted,
		},
		Bottom: &Obstacle{
			x:      x,
			y:      bottomY,
			speed:  g.speed,
			sprite: g.sprites.Obstacle,
		},
	}
}

// Range returns the inclusive offset range.
func (g *PairGenerator) Range() (lo, hi int) {
	return g.lo, g.hi
}
