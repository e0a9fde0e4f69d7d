package actor

import (
	"github.com/vovakirdan/blobrun/internal/physics"
)

// JumpMode selects how a jump request is turned into an impulse.
type JumpMode int

const (
	// JumpDirect applies the impulse in the same update that reads the key.
	JumpDirect JumpMode = iota
	// JumpDeferred latches the request and applies it in SettleLock, after
	// physics, so a lift the player was riding can still shape the jump.
	JumpDeferred
)

// State is the player's movement state for the tick.
type State int

const (
	StateIdle State = iota
	StateMovingLeft
	StateMovingRight
	StateAirborne
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMovingLeft:
		return "moving-left"
	case StateMovingRight:
		return "moving-right"
	case StateAirborne:
		return "airborne"
	default:
		return "idle"
	}
}

// Player body offset inside its 32x48 sprite.
const (
	playerBodyW = 20
	playerBodyH = 32
	playerOffX  = 5
	playerOffY  = 16
)

// Player is the controllable blob.
type Player struct {
	Body      *physics.Body
	Facing    Facing
	Standing  bool
	JumpTimer int64 // Jumps are refused until Now exceeds this
	Anim      Animation
	Mode      JumpMode

	// Lift riding. LockedTo is never owned by the player.
	Locked    bool
	WasLocked bool
	WillJump  bool
	LockedTo  *Lift
}

// NewPlayer places a player whose sprite's top-left corner is (x, y).
func NewPlayer(x, y float64, mode JumpMode) *Player {
	return &Player{
		Body: physics.NewBody(x+playerOffX, y+playerOffY, playerBodyW, playerBodyH),
		Mode: mode,
	}
}

// SpriteOrigin returns the top-left corner of the sprite around the body.
func (p *Player) SpriteOrigin() (x, y float64) {
	return p.Body.Pos.X - playerOffX, p.Body.Pos.Y - playerOffY
}

// State derives the movement state from standing and facing.
func (p *Player) State() State {
	if !p.Standing {
		return StateAirborne
	}
	switch p.Facing {
	case FacingLeft:
		return StateMovingLeft
	case FacingRight:
		return StateMovingRight
	default:
		return StateIdle
	}
}

// UpdatePlayer applies one tick of input to the player. It runs after the
// physics step so the body's contact flags are current.
func UpdatePlayer(t Tick, p *Player, tun Tuning) {
	p.Standing = p.Body.OnFloor() || p.Locked

	p.Body.Vel.X = 0

	switch {
	case t.Input.Left:
		p.Body.Vel.X = -tun.PlayerSpeed
		p.face(FacingLeft, tun)
	case t.Input.Right:
		p.Body.Vel.X = tun.PlayerSpeed
		p.face(FacingRight, tun)
	default:
		p.face(FacingIdle, tun)
	}

	if p.Standing && t.Input.Up && t.Now > p.JumpTimer {
		switch p.Mode {
		case JumpDeferred:
			if p.Locked {
				CancelLock(p)
			}
			p.WillJump = true
		default:
			p.Body.Vel.Y = tun.JumpImpulse
			p.JumpTimer = t.Now + tun.JumpCooldown
		}
	}

	if p.Locked {
		CheckLock(p)
	}
}

func (p *Player) face(f Facing, tun Tuning) {
	if p.Facing == f {
		return
	}
	p.Facing = f
	switch f {
	case FacingLeft:
		p.Anim.Play(ClipLeft)
	case FacingRight:
		p.Anim.Play(ClipRight)
	default:
		p.Anim.Stop(tun.IdleFrame)
	}
}
