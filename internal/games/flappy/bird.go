package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Bird is the player-controlled circle. X never changes after creation.
type Bird struct {
	X   float64 // Horizontal centre
	Y   float64 // Vertical centre; grows downward
	Vel float64 // Vertical velocity per tick
	R   float64 // Radius used for every collision test
}

// NewBird returns a bird at its starting position with zero velocity.
func NewBird() Bird {
	return Bird{X: BirdX, Y: BirdStartY, R: BirdRadius}
}

// ApplyGravity integrates one tick: velocity first, then position.
func (b *Bird) ApplyGravity() {
	b.Vel += Gravity
	b.Y += b.Vel
}

// Flap overwrites the velocity with the flap impulse.
func (b *Bird) Flap() {
	b.Vel = FlapImpulse
}

// ClampCeiling keeps the bird inside the top of the field.
// It is the only boundary that absorbs energy; returns true if it clamped.
func (b *Bird) ClampCeiling() bool {
	if b.Y-b.R >= CeilingLevel {
		return false
	}
	b.Y = CeilingLevel + b.R
	b.Vel = 0
	return true
}

// HitsGround reports whether the bird has touched the ground band.
func (b Bird) HitsGround() bool {
	return b.Y+b.R > GroundLevel
}

// Left returns the x-coordinate of the bird's left edge.
func (b Bird) Left() float64 {
	return b.X - b.R
}

// Right returns the x-coordinate of the bird's right edge.
func (b Bird) Right() float64 {
	return b.X + b.R
}

// Bounds returns the bird's bounding box.
func (b Bird) Bounds() core.RectF {
	return core.NewRectF(b.X-b.R, b.Y-b.R, 2*b.R, 2*b.R)
}
