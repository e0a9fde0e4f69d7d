package core

// RuntimeConfig is handed to a game on every Reset.
// Screen dimensions are in terminal cells; the world itself uses pixels.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// TickMillis returns the duration of one tick in milliseconds.
func (c RuntimeConfig) TickMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState is the externally visible status of a game.
type GameState struct {
	Score    int  // Survival time in tenths of a second
	GameOver bool // Run ended (player touched an enemy)
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	// Restart is raised exactly once, on the tick the run ends.
	// The host decides whether to restart right away or wait for input.
	Restart bool
}

// RunStats describes the run in progress for hosts that persist it.
type RunStats struct {
	Seed    int64
	Ticks   int
	Tiles   int // Tiles in the generated level
	Skipped int // Tiles the level could not hold
}
