package actor

import (
	"math"

	"github.com/vovakirdan/blobrun/internal/core"
	"github.com/vovakirdan/blobrun/internal/physics"
)

// Lift is a platform shuttling between two points at constant speed.
type Lift struct {
	Pos      core.Vec2 // Top-left corner
	Size     core.Vec2
	From, To core.Vec2
	Speed    float64 // Pixels per second

	// Delta is how far the lift moved during the last Move.
	Delta core.Vec2

	// Carrying is set while a player is locked to the lift.
	Carrying bool

	forward bool
}

// NewLift creates a lift of size w x h parked at from, heading to to.
func NewLift(from, to core.Vec2, w, h, speed float64) *Lift {
	return &Lift{
		Pos:     from,
		Size:    core.Vec2{X: w, Y: h},
		From:    from,
		To:      to,
		Speed:   speed,
		forward: true,
	}
}

// Bounds returns the lift's box.
func (l *Lift) Bounds() core.Rect {
	return core.NewRect(l.Pos.X, l.Pos.Y, l.Size.X, l.Size.Y)
}

// Top returns the y of the riding surface.
func (l *Lift) Top() float64 {
	return l.Pos.Y
}

// Move advances the lift by dt seconds, turning around at either end.
func (l *Lift) Move(dt float64) {
	start := l.Pos
	target := l.To
	if !l.forward {
		target = l.From
	}

	d := target.Sub(l.Pos)
	dist := math.Hypot(d.X, d.Y)
	step := l.Speed * dt

	if dist <= step {
		l.Pos = target
		l.forward = !l.forward
	} else {
		l.Pos = l.Pos.Add(core.Vec2{X: d.X / dist * step, Y: d.Y / dist * step})
	}
	l.Delta = l.Pos.Sub(start)
}

// TryLock binds the player to l after landing on it from above.
// It does nothing if the player is already riding a lift.
func TryLock(p *Player, l *Lift) bool {
	if p.Locked {
		return false
	}
	p.Locked = true
	p.LockedTo = l
	l.Carrying = true
	p.Body.Vel.Y = 0
	return true
}

// CheckLock keeps a riding player pressed to its lift and drops the lock
// once the body no longer spans the lift horizontally.
func CheckLock(p *Player) {
	if !p.Locked || p.LockedTo == nil {
		return
	}
	p.Body.Vel.Y = 1

	b := p.Body.Bounds()
	lift := p.LockedTo.Bounds()
	if b.Right() < lift.X || b.X > lift.Right() {
		CancelLock(p)
	}
}

// CancelLock ends riding. The lift reference survives one more settle so
// the final carry and any pending jump can still use it.
func CancelLock(p *Player) {
	p.WasLocked = true
	p.Locked = false
}

// SettleLock runs after physics. It carries a riding player with the lift,
// applies a pending jump and releases the lift after the grace tick.
func SettleLock(t Tick, p *Player, tun Tuning) {
	if (p.Locked || p.WasLocked) && p.LockedTo != nil {
		p.Body.Pos.X += p.LockedTo.Delta.X
		p.Body.Pos.Y = p.LockedTo.Top() - p.Body.Size.Y

		if p.Body.Vel.X != 0 {
			p.Body.Vel.Y = 0
		}
	}

	if p.WillJump {
		p.WillJump = false

		if p.LockedTo != nil && p.LockedTo.Delta.Y < 0 && p.WasLocked {
			// Rising lift adds its motion to the jump.
			p.Body.Vel.Y = tun.LiftJumpImpulse + p.LockedTo.Delta.Y*tun.LiftDeltaFactor
		} else {
			p.Body.Vel.Y = tun.JumpImpulse
		}
		p.JumpTimer = t.Now + tun.LiftJumpCooldown
	}

	if p.WasLocked {
		p.WasLocked = false
		if p.LockedTo != nil {
			p.LockedTo.Carrying = false
		}
		p.LockedTo = nil
	}
}

// RideLifts lands a falling, unlocked player on the first lift it reaches
// this tick and locks it there.
func RideLifts(p *Player, lifts []*Lift) bool {
	if p.Locked {
		return false
	}
	for _, l := range lifts {
		prevTop := l.Pos.Y - l.Delta.Y
		if physics.LandOn(p.Body, l.Bounds(), prevTop) {
			return TryLock(p, l)
		}
	}
	return false
}
