package physics

import (
	"github.com/vovakirdan/blobrun/internal/core"
)

// Bounds is the world rectangle anchored at the origin.
type Bounds struct {
	W, H float64
}

// Rect returns the bounds as a box.
func (b Bounds) Rect() core.Rect {
	return core.NewRect(0, 0, b.W, b.H)
}

// Solids is a static collision set such as the level's tile grid.
type Solids interface {
	// Overlapping calls fn with every solid box intersecting r.
	Overlapping(r core.Rect, fn func(solid core.Rect))
}

// World integrates bodies under constant gravity.
type World struct {
	Bounds      Bounds
	Gravity     float64 // Pixels per second squared, positive is down
	MaxVelocity float64 // Per-axis speed cap, 0 disables it
}

// NewWorld creates a world with the given bounds and gravity.
func NewWorld(bounds Bounds, gravity, maxVelocity float64) *World {
	return &World{Bounds: bounds, Gravity: gravity, MaxVelocity: maxVelocity}
}

// Step advances b by dt seconds: gravity, then movement along x and y with
// tile separation, then the world bounds. It reports whether b touched any
// solid. solids may be nil.
func (w *World) Step(b *Body, solids Solids, dt float64) bool {
	b.Prev = b.Pos
	b.Blocked = Sides{}
	b.Touching = Sides{}

	if b.AllowGravity {
		b.Vel.Y += w.Gravity * dt
	}
	if w.MaxVelocity > 0 {
		b.Vel.X = core.ClampF(b.Vel.X, -w.MaxVelocity, w.MaxVelocity)
		b.Vel.Y = core.ClampF(b.Vel.Y, -w.MaxVelocity, w.MaxVelocity)
	}

	contact := false

	b.Pos.X += b.Vel.X * dt
	if solids != nil && b.Vel.X != 0 {
		contact = separateX(b, solids) || contact
	}

	b.Pos.Y += b.Vel.Y * dt
	if solids != nil && b.Vel.Y != 0 {
		contact = separateY(b, solids) || contact
	}

	if b.CollideWorldBounds {
		w.clampToBounds(b)
	}
	return contact
}

func separateX(b *Body, solids Solids) bool {
	hit := false
	movingRight := b.Vel.X > 0
	solids.Overlapping(b.Bounds(), func(s core.Rect) {
		// Earlier separations may already have cleared this tile.
		if !b.Bounds().Intersects(s) {
			return
		}
		hit = true
		if movingRight {
			b.Pos.X = s.X - b.Size.X
			b.Touching.Right = true
		} else {
			b.Pos.X = s.Right()
			b.Touching.Left = true
		}
	})
	if hit {
		b.Vel.X = -b.Vel.X * b.Bounce.X
	}
	return hit
}

func separateY(b *Body, solids Solids) bool {
	hit := false
	movingDown := b.Vel.Y > 0
	solids.Overlapping(b.Bounds(), func(s core.Rect) {
		if !b.Bounds().Intersects(s) {
			return
		}
		hit = true
		if movingDown {
			b.Pos.Y = s.Y - b.Size.Y
			b.Touching.Down = true
		} else {
			b.Pos.Y = s.Bottom()
			b.Touching.Up = true
		}
	})
	if hit {
		b.Vel.Y = -b.Vel.Y * b.Bounce.Y
	}
	return hit
}

func (w *World) clampToBounds(b *Body) {
	if b.Pos.X < 0 {
		b.Pos.X = 0
		b.Vel.X = -b.Vel.X * b.Bounce.X
		b.Blocked.Left = true
	} else if b.Pos.X+b.Size.X > w.Bounds.W {
		b.Pos.X = w.Bounds.W - b.Size.X
		b.Vel.X = -b.Vel.X * b.Bounce.X
		b.Blocked.Right = true
	}

	if b.Pos.Y < 0 {
		b.Pos.Y = 0
		b.Vel.Y = -b.Vel.Y * b.Bounce.Y
		b.Blocked.Up = true
	} else if b.Pos.Y+b.Size.Y > w.Bounds.H {
		b.Pos.Y = w.Bounds.H - b.Size.Y
		b.Vel.Y = -b.Vel.Y * b.Bounce.Y
		b.Blocked.Down = true
	}
}

// LandOn resolves a one-way platform: when b was above top before moving
// and now reaches into it while falling, b is set down on it. prevTop is
// where the platform's top edge was before it moved this tick.
func LandOn(b *Body, platform core.Rect, prevTop float64) bool {
	if b.Vel.Y < 0 {
		return false
	}
	if b.Pos.X >= platform.Right() || b.Pos.X+b.Size.X <= platform.X {
		return false
	}
	prevBottom := b.Prev.Y + b.Size.Y
	if prevBottom > prevTop+1 || b.Bottom() < platform.Y {
		return false
	}
	b.Pos.Y = platform.Y - b.Size.Y
	b.Touching.Down = true
	return true
}
