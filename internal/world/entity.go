// Package world implements the game rules: the moving entities, their
// physics, collision detection, recycling and the session state machine.
// It has no rendering or input dependencies; the ebiten adapter in the root
// package drives it one tick at a time.
package world

import (
	"image"
	"math"

	"flappy/internal/sprite"
)

// Entity is anything that occupies screen space and moves every tick.
type Entity interface {
	// Bounds is the on-screen rectangle of the current sprite.
	Bounds() image.Rectangle
	// Sprite is the current visual frame. Its mask may be nil, in which case
	// collisions use the bounding rectangle.
	Sprite() *sprite.Sprite
	// Advance applies one tick of motion.
	Advance()
}

// Sprites is the set of frames entities are built from.
type Sprites struct {
	AvatarFrames     []*sprite.Sprite
	Obstacle         *sprite.Sprite
	ObstacleInverted *sprite.Sprite
	Ground           *sprite.Sprite
}

// Obstacle is one piece of an obstacle pair. It only ever moves left.
type Obstacle struct {
	x      float64
	y      int
	speed  float64
	sprite *sprite.Sprite
}

func (o *Obstacle) Bounds() image.Rectangle {
	return rectAt(o.x, o.y, o.sprite)
}

func (o *Obstacle) Sprite() *sprite.Sprite { return o.sprite }

func (o *Obstacle) Advance() { o.x -= o.speed }

// X returns the horizontal position.
func (o *Obstacle) X() float64 { return o.x }

// ObstaclePair is a top (inverted) and bottom obstacle sharing one gap.
type ObstaclePair struct {
	Top    *Obstacle
	Bottom *Obstacle
}

// Advance moves both pieces by the same delta.
func (p *ObstaclePair) Advance() {
	p.Top.Advance()
	p.Bottom.Advance()
}

// X returns the shared horizontal position.
func (p *ObstaclePair) X() float64 { return p.Bottom.x }

// Right returns the right edge of the pair.
func (p *ObstaclePair) Right() int { return p.Bottom.Bounds().Max.X }

// Gap returns the distance between the facing edges of the pair.
func (p *ObstaclePair) Gap() int {
	return p.Bottom.Bounds().Min.Y - p.Top.Bounds().Max.Y
}

// GroundTile is one segment of the scrolling floor.
type GroundTile struct {
	x      float64
	y      int
	speed  float64
	sprite *sprite.Sprite
}

func (g *GroundTile) Bounds() image.Rectangle {
	return rectAt(g.x, g.y, g.sprite)
}

func (g *GroundTile) Sprite() *sprite.Sprite { return g.sprite }

func (g *GroundTile) Advance() { g.x -= g.speed }

// X returns the horizontal position.
func (g *GroundTile) X() float64 { return g.x }

func rectAt(x float64, y int, s *sprite.Sprite) image.Rectangle {
	p := image.Pt(int(math.Floor(x)), y)
	return image.Rectangle{Min: p, Max: p.Add(s.Size())}
}
