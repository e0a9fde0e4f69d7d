// Package physics is a minimal arcade physics host: axis-aligned bodies,
// constant gravity, tile collision and world bounds. It replaces the engine
// the game logic used to lean on and knows nothing about players or enemies.
package physics

import "github.com/vovakirdan/blobrun/internal/core"

// Sides records contact on each side of a body during the last step.
type Sides struct {
	Up, Down, Left, Right bool
}

// Any reports whether any side is set.
func (s Sides) Any() bool {
	return s.Up || s.Down || s.Left || s.Right
}

// Body is a moving axis-aligned box.
type Body struct {
	Pos  core.Vec2 // Top-left corner
	Size core.Vec2
	Vel  core.Vec2 // Pixels per second

	// Bounce is the fraction of velocity kept, reversed, after a collision.
	Bounce core.Vec2

	AllowGravity       bool
	CollideWorldBounds bool

	// Blocked is set by world bounds, Touching by tiles and other solids.
	Blocked  Sides
	Touching Sides

	Prev core.Vec2 // Position before the last step
}

// NewBody creates a body at (x, y) with gravity and world bounds enabled.
func NewBody(x, y, w, h float64) *Body {
	return &Body{
		Pos:                core.Vec2{X: x, Y: y},
		Size:               core.Vec2{X: w, Y: h},
		Prev:               core.Vec2{X: x, Y: y},
		AllowGravity:       true,
		CollideWorldBounds: true,
	}
}

// Bounds returns the body's box.
func (b *Body) Bounds() core.Rect {
	return core.NewRect(b.Pos.X, b.Pos.Y, b.Size.X, b.Size.Y)
}

// Center returns the center of the box.
func (b *Body) Center() core.Vec2 {
	return b.Bounds().Center()
}

// SetCenterX moves the body so its horizontal center is x.
func (b *Body) SetCenterX(x float64) {
	b.Pos.X = x - b.Size.X/2
}

// Bottom returns the y of the bottom edge.
func (b *Body) Bottom() float64 {
	return b.Pos.Y + b.Size.Y
}

// Delta returns how far the body moved during the last step.
func (b *Body) Delta() core.Vec2 {
	return b.Pos.Sub(b.Prev)
}

// OnFloor reports whether the body rests on something: the world's bottom
// edge, a tile or another solid.
func (b *Body) OnFloor() bool {
	return b.Blocked.Down || b.Touching.Down
}

// Overlap reports whether two bodies intersect.
func Overlap(a, b *Body) bool {
	return a.Bounds().Intersects(b.Bounds())
}
