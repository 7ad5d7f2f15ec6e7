package world

import (
	"image"
	"math"

	"flappy/internal/sprite"
)

// maxTilt caps the avatar rotation in degrees.
const maxTilt = 90

// Avatar is the player-controlled entity. It moves only vertically.
type Avatar struct {
	x, y     float64
	velocity float64
	frame    int
	angle    int

	speed    float64
	gravity  float64
	rotation float64

	frames []*sprite.Sprite
	base   image.Point
	cache  map[rotationKey]*sprite.Sprite
}

type rotationKey struct {
	frame, angle int
}

// NewAvatar places an avatar at (x, y) falling at speed, the world's base speed.
func NewAvatar(x, y, speed, gravity, rotation float64, frames []*sprite.Sprite) *Avatar {
	return &Avatar{
		x:        x,
		y:        y,
		velocity: speed,
		speed:    speed,
		gravity:  gravity,
		rotation: rotation,
		frames:   frames,
		base:     frames[0].Size(),
		cache:    make(map[rotationKey]*sprite.Sprite),
	}
}

// Reset puts the avatar back at (x, y) in its starting state. Rotated frames
// stay cached.
func (a *Avatar) Reset(x, y float64) {
	a.x, a.y = x, y
	a.velocity = a.speed
	a.frame = 0
	a.angle = 0
}

// Advance cycles the flap animation, tilts the frame by the current velocity,
// then applies gravity and moves.
func (a *Avatar) Advance() {
	a.frame = (a.frame + 1) % len(a.frames)
	a.angle = tilt(-a.velocity * a.rotation)
	a.velocity += a.gravity
	a.y += a.velocity
}

// Jump replaces the velocity with an upward impulse of the base speed.
func (a *Avatar) Jump() {
	a.velocity = -a.speed
}

// Sprite returns the current frame rotated by the current tilt.
func (a *Avatar) Sprite() *sprite.Sprite {
	if a.angle == 0 {
		return a.frames[a.frame]
	}
	key := rotationKey{a.frame, a.angle}
	s, ok := a.cache[key]
	if !ok {
		s = sprite.New(sprite.Rotate(a.frames[a.frame].Image, float64(a.angle)))
		a.cache[key] = s
	}
	return s
}

// Bounds returns the rectangle of the current sprite, centered on the
// avatar's unrotated frame.
func (a *Avatar) Bounds() image.Rectangle {
	size := a.Sprite().Size()
	cx := a.x + float64(a.base.X)/2
	cy := a.y + float64(a.base.Y)/2
	p := image.Pt(int(math.Floor(cx-float64(size.X)/2)), int(math.Floor(cy-float64(size.Y)/2)))
	return image.Rectangle{Min: p, Max: p.Add(size)}
}

// X returns the fixed horizontal position.
func (a *Avatar) X() float64 { return a.x }

// Y returns the vertical position.
func (a *Avatar) Y() float64 { return a.y }

// Velocity returns the vertical velocity; positive is downward.
func (a *Avatar) Velocity() float64 { return a.velocity }

// Frame returns the animation frame index.
func (a *Avatar) Frame() int { return a.frame }

// Angle returns the current tilt in degrees; positive is nose-up.
func (a *Avatar) Angle() int { return a.angle }

func tilt(deg float64) int {
	d := int(math.Round(deg))
	return max(-maxTilt, min(maxTilt, d))
}
