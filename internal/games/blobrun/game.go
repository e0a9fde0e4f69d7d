// Package blobrun implements Blob Run, a scrolling platformer: a blob runs
// and jumps across generated floors while antiblobs patrol and wrap around
// the world. Touching one ends the run.
//
// Two variants are registered. The classic one jumps straight off any
// floor; the lifts variant adds moving platforms the blob locks onto and
// can launch from.
package blobrun

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blobrun/internal/actor"
	"github.com/vovakirdan/blobrun/internal/config"
	"github.com/vovakirdan/blobrun/internal/core"
	"github.com/vovakirdan/blobrun/internal/level"
	"github.com/vovakirdan/blobrun/internal/physics"
	"github.com/vovakirdan/blobrun/internal/registry"
)

// Variant selects the ruleset.
type Variant int

const (
	VariantClassic Variant = iota
	VariantLifts
)

// Game IDs.
const (
	IDClassic = "blobrun"
	IDLifts   = "blobrun_lifts"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives generator warnings. The TUI owns the terminal, so the
// default drops everything.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger routes generator diagnostics to l.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadConfig returns the config a new run would use: the loaded file with
// the CLI preset applied, or the defaults when loading fails.
func LoadConfig() config.BlobrunConfig {
	return loadConfig(difficultyPreset)
}

func loadConfig(preset config.DifficultyPreset) config.BlobrunConfig {
	cfg, err := config.LoadBlobrun(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultBlobrunConfig()
	}
	config.ApplyBlobrunPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid config, using defaults", "error", err)
		cfg = config.DefaultBlobrunConfig()
	}
	return cfg
}

// Game implements the Blob Run game logic.
type Game struct {
	variant Variant

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BlobrunConfig
	fixedCfg   *config.BlobrunConfig    // Used instead of LoadConfig when set
	preset     *config.DifficultyPreset // Overrides the package preset when set
	tun        actor.Tuning
	difficulty *config.DifficultyManager
	logger     *log.Logger

	// World
	pool    *level.Pool
	level   *level.Level
	world   *physics.World
	player  *actor.Player
	enemies []*actor.Enemy
	lifts   []*actor.Lift
	camera  core.Vec2

	// Game state
	tickCount int
	score     int
	gameOver  bool
	paused    bool
	caughtBy  int // Index of the enemy that ended the run, -1 while alive
}

// New creates a classic Blob Run game.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewLifts creates a Blob Run game with moving lifts.
func NewLifts() *Game {
	return &Game{variant: VariantLifts}
}

// NewWithConfig creates a game that always runs with cfg.
func NewWithConfig(v Variant, cfg config.BlobrunConfig) *Game {
	return &Game{variant: v, fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantLifts {
		return IDLifts
	}
	return IDClassic
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantLifts {
		return "Blob Run: Lifts"
	}
	return "Blob Run"
}

// Reset generates a new level from runtime.Seed and respawns every actor.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.logger = logger

	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else if g.preset != nil {
		g.cfg = loadConfig(*g.preset)
	} else {
		g.cfg = LoadConfig()
	}
	g.tun = Tuning(g.cfg)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.tickCount = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.caughtBy = -1

	rng := rand.New(rand.NewSource(runtime.Seed))
	if err := g.buildWorld(rng); err != nil {
		g.logger.Error("level build failed, using defaults", "error", err)
		g.cfg = config.DefaultBlobrunConfig()
		g.tun = Tuning(g.cfg)
		g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
		rng = rand.New(rand.NewSource(runtime.Seed))
		if err := g.buildWorld(rng); err != nil {
			// The built-in defaults always validate.
			panic(err)
		}
	}
	g.updateCamera()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := 1.0 / float64(g.runtime.TickRate)
	tick := actor.Tick{
		Now: int64(g.tickCount) * 1000 / int64(g.runtime.TickRate),
		Input: actor.Input{
			Left:  in.Has(core.ActionLeft),
			Right: in.Has(core.ActionRight),
			Up:    in.Has(core.ActionJump),
		},
		Bounds: g.world.Bounds,
	}

	// Difficulty only ever speeds things up, and only between ticks.
	enemySpeed := g.difficulty.EnemySpeed(g.cfg.Enemy.Speed, g.score, g.tickCount)
	liftSpeed := g.difficulty.LiftSpeed(g.cfg.Lifts.Speed, g.score, g.tickCount)
	for _, l := range g.lifts {
		l.Speed = liftSpeed
		l.Move(dt)
	}

	// Physics
	g.world.Step(g.player.Body, g.level.Grid, dt)
	if len(g.lifts) > 0 {
		actor.RideLifts(g.player, g.lifts)
	}
	contacts := make([]bool, len(g.enemies))
	for i, e := range g.enemies {
		contacts[i] = g.world.Step(e.Body, g.level.Grid, dt)
	}

	if i, hit := actor.FirstOverlap(g.player, g.enemies); hit {
		g.caughtBy = i
		g.gameOver = true
		g.updateScore()
		g.logger.Debug("caught", "enemy", i, "tick", g.tickCount, "score", g.score)
		return core.StepResult{State: g.State(), Restart: true}
	}

	// Controllers
	actor.UpdatePlayer(tick, g.player, g.tun)
	for i, e := range g.enemies {
		e.Speed = enemySpeed
		actor.UpdateEnemy(tick, e, contacts[i], g.tun)
		e.Anim.Advance(dt)
	}
	g.player.Anim.Advance(dt)

	// Post-physics settle for riders and deferred jumps.
	if g.variant == VariantLifts {
		actor.SettleLock(tick, g.player, g.tun)
	}

	g.updateScore()
	g.updateCamera()
	return core.StepResult{State: g.State()}
}

// updateScore sets the score to survival time in tenths of a second.
func (g *Game) updateScore() {
	g.score = g.tickCount * 10 / g.runtime.TickRate
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// SetDifficulty picks a preset for this game only, taking effect on the
// next Reset. Hosts serving several players use it instead of
// SetDifficultyPreset. Unknown names fall back to the config file.
func (g *Game) SetDifficulty(name string) {
	p, ok := config.ParsePreset(name)
	if !ok {
		p = ""
	}
	g.preset = &p
}

// Resize changes the viewport without touching the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.player != nil {
		g.updateCamera()
	}
}

// RunStats reports the seed and level of the current run.
func (g *Game) RunStats() core.RunStats {
	s := core.RunStats{Seed: g.runtime.Seed, Ticks: g.tickCount}
	if g.level != nil {
		s.Tiles = g.level.Report.Placed
		s.Skipped = g.level.Report.Skipped
	}
	return s
}

// Player returns the player actor.
func (g *Game) Player() *actor.Player {
	return g.player
}

// Enemies returns the enemy actors.
func (g *Game) Enemies() []*actor.Enemy {
	return g.enemies
}

// Lifts returns the lifts; empty in the classic variant.
func (g *Game) Lifts() []*actor.Lift {
	return g.lifts
}

// Level returns the generated level.
func (g *Game) Level() *level.Level {
	return g.level
}

// CaughtBy returns the index of the enemy that ended the run.
func (g *Game) CaughtBy() (int, bool) {
	return g.caughtBy, g.caughtBy >= 0
}

// Register the variants with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDLifts, func() registry.Game {
		return NewLifts()
	})
}
