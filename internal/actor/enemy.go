package actor

import (
	"github.com/vovakirdan/blobrun/internal/core"
	"github.com/vovakirdan/blobrun/internal/physics"
)

// Enemy body inside its 32x48 sprite, which is anchored at its center.
const (
	enemyBodyW  = 32
	enemyBodyH  = 24
	enemyBounce = 0.4
)

// Enemy is a patrolling antiblob.
type Enemy struct {
	Body      *physics.Body
	Direction float64 // -1 or 1
	Speed     float64
	Facing    Facing
	Anim      Animation
}

// NewEnemy places an enemy centered on (cx, cy) walking in direction dir.
func NewEnemy(cx, cy, dir, speed float64) *Enemy {
	b := physics.NewBody(cx-enemyBodyW/2, cy-enemyBodyH/2, enemyBodyW, enemyBodyH)
	b.Bounce = core.Vec2{X: enemyBounce, Y: enemyBounce}
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	return &Enemy{Body: b, Direction: dir, Speed: speed}
}

// XSpeed returns the signed patrol speed.
func (e *Enemy) XSpeed() float64 {
	return e.Direction * e.Speed
}

// X returns the enemy's horizontal center.
func (e *Enemy) X() float64 {
	return e.Body.Center().X
}

// ReversePatrol turns the enemy around when it is walking into the edge of
// the world. It reports whether the direction changed.
func ReversePatrol(e *Enemy, bounds physics.Bounds) bool {
	half := float64(SpriteWidth) / 2
	x := e.X()
	xs := e.XSpeed()
	if (xs < 0 && x <= half) || (xs > 0 && x >= bounds.W-half) {
		e.Direction = -e.Direction
		return true
	}
	return false
}

// UpdateEnemy applies one tick of patrol behavior. contact reports whether
// the enemy touched a platform during this tick's physics step.
func UpdateEnemy(t Tick, e *Enemy, contact bool, tun Tuning) {
	if contact {
		ReversePatrol(e, t.Bounds)
	}

	e.Body.CollideWorldBounds = true
	e.Body.Vel.X = e.XSpeed()

	switch {
	case e.Body.Vel.X < 0:
		e.Facing = FacingLeft
		e.Anim.Play(ClipLeft)
	case e.Body.Vel.X > 0:
		e.Facing = FacingRight
		e.Anim.Play(ClipRight)
	}

	WrapEnemy(e, t.Bounds, tun)
}

// WrapEnemy teleports an enemy that walked past either wrap margin to the
// opposite side. Enemies wrapping rightward near the floor respawn at the
// top of the world with the top edge of the body at y = 0, not the centre,
// so the body starts inside the world bounds. At most one wrap happens per
// call.
func WrapEnemy(e *Enemy, bounds physics.Bounds, tun Tuning) bool {
	x := e.X()
	switch {
	case x < tun.WrapMargin:
		e.Body.SetCenterX(bounds.W - tun.WrapMargin)
		return true
	case x > bounds.W-tun.WrapMargin:
		if e.Body.Center().Y > bounds.H-tun.RespawnBand {
			e.Body.Pos.Y = 0
		}
		e.Body.SetCenterX(tun.WrapMargin)
		return true
	}
	return false
}

// FirstOverlap returns the index of the lowest-indexed enemy touching the
// player.
func FirstOverlap(p *Player, enemies []*Enemy) (int, bool) {
	for i, e := range enemies {
		if physics.Overlap(p.Body, e.Body) {
			return i, true
		}
	}
	return -1, false
}
