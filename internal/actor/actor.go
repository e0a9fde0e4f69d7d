// Package actor holds the per-tick rules for blobrun's player and enemies.
//
// Actors are plain data (a physics body plus facing, timers and animation
// state) and every rule is a function of an explicit Tick context, so the
// same code runs under the game loop and under tests with an injected clock.
package actor

import (
	"github.com/vovakirdan/blobrun/internal/physics"
)

// Facing is the horizontal direction an actor presents.
type Facing int

const (
	FacingIdle Facing = iota
	FacingLeft
	FacingRight
)

// String returns the facing name.
func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "idle"
	}
}

// Input is the held state of the three movement keys for one tick.
type Input struct {
	Left, Right, Up bool
}

// Tick is the context every update function receives.
type Tick struct {
	Now    int64 // Monotonic host clock in milliseconds
	Input  Input
	Bounds physics.Bounds
}

// Tuning holds the movement constants. Distances are pixels, speeds are
// pixels per second, cooldowns are milliseconds.
type Tuning struct {
	PlayerSpeed float64
	EnemySpeed  float64

	JumpImpulse  float64
	JumpCooldown int64

	// Used when the player leaves a lift.
	LiftJumpImpulse  float64
	LiftDeltaFactor  float64
	LiftJumpCooldown int64

	WrapMargin  float64
	RespawnBand float64

	IdleFrame int
}

// DefaultTuning returns the stock movement constants.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:      240,
		EnemySpeed:       192,
		JumpImpulse:      -600,
		JumpCooldown:     500,
		LiftJumpImpulse:  -300,
		LiftDeltaFactor:  10,
		LiftJumpCooldown: 750,
		WrapMargin:       22,
		RespawnBand:      100,
		IdleFrame:        7,
	}
}

// Sprite and body geometry shared by both actor kinds.
const (
	SpriteWidth  = 32
	SpriteHeight = 48
)

// Clip is a looping frame sequence.
type Clip struct {
	Name   string
	Frames []int
	FPS    float64
}

var (
	ClipLeft  = Clip{Name: "left", Frames: []int{1, 2, 3, 4, 5, 6}, FPS: 18}
	ClipRight = Clip{Name: "right", Frames: []int{8, 9, 10, 11, 12, 13}, FPS: 18}
)

// Animation tracks which clip is playing and the frame on show.
type Animation struct {
	Clip     Clip
	Playing  bool
	Frame    int
	Restarts int // Number of times a clip was (re)started
	elapsed  float64
}

// Play starts clip unless it is already playing.
func (a *Animation) Play(clip Clip) {
	if a.Playing && a.Clip.Name == clip.Name {
		return
	}
	a.Clip = clip
	a.Playing = true
	a.elapsed = 0
	a.Restarts++
	if len(clip.Frames) > 0 {
		a.Frame = clip.Frames[0]
	}
}

// Stop halts playback and shows frame.
func (a *Animation) Stop(frame int) {
	a.Playing = false
	a.Frame = frame
}

// Advance moves playback forward by dt seconds.
func (a *Animation) Advance(dt float64) {
	if !a.Playing || len(a.Clip.Frames) == 0 || a.Clip.FPS <= 0 {
		return
	}
	a.elapsed += dt
	i := int(a.elapsed*a.Clip.FPS) % len(a.Clip.Frames)
	a.Frame = a.Clip.Frames[i]
}
