package blobrun

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blobrun/internal/actor"
	"github.com/vovakirdan/blobrun/internal/config"
	"github.com/vovakirdan/blobrun/internal/core"
	"github.com/vovakirdan/blobrun/internal/level"
	"github.com/vovakirdan/blobrun/internal/physics"
)

// Enemies never spawn closer than this to the player, so a run cannot end
// on its first tick.
const spawnClearance = 160

// LevelParams maps the world section of the config onto generator params.
func LevelParams(w config.WorldConfig) level.Params {
	return level.Params{
		WorldWidth:      float64(w.Width()),
		WorldHeight:     float64(w.Height()),
		TileSize:        float64(w.TileSize),
		Chunks:          w.Chunks,
		ChunkWidth:      float64(w.ChunkWidth),
		VerticalSpacing: float64(w.VerticalSpacing),
		CeilingSpacings: w.CeilingSpacings,
		PatternLimit:    w.PatternLimit,
		DecorateGround:  w.DecorateGround,
	}
}

// BuildLevel generates the level for seed without spawning any actors.
func BuildLevel(cfg config.BlobrunConfig, seed int64, logger *log.Logger) (*level.Level, error) {
	return level.Build(
		LevelParams(cfg.World),
		level.NewPool(cfg.World.PoolCapacity),
		rand.New(rand.NewSource(seed)),
		logger,
	)
}

// Tuning maps the actor sections of the config onto controller constants.
func Tuning(cfg config.BlobrunConfig) actor.Tuning {
	return actor.Tuning{
		PlayerSpeed:      cfg.Player.Speed,
		EnemySpeed:       cfg.Enemy.Speed,
		JumpImpulse:      cfg.Player.JumpImpulse,
		JumpCooldown:     cfg.Player.JumpCooldownMS,
		LiftJumpImpulse:  cfg.Lifts.JumpImpulse,
		LiftDeltaFactor:  cfg.Lifts.DeltaFactor,
		LiftJumpCooldown: cfg.Lifts.JumpCooldownMS,
		WrapMargin:       cfg.Enemy.WrapMargin,
		RespawnBand:      cfg.Enemy.RespawnBand,
		IdleFrame:        cfg.Player.IdleFrame,
	}
}

// enemyCount returns how many enemies a world of cfg holds.
func enemyCount(cfg config.BlobrunConfig) int {
	if cfg.Enemy.Count > 0 {
		return cfg.Enemy.Count
	}
	return max(cfg.World.Chunks*2-1, 1)
}

// buildWorld generates the level and spawns every actor from one rng, so a
// seed fixes the whole run.
func (g *Game) buildWorld(rng *rand.Rand) error {
	cfg := g.cfg
	bounds := physics.Bounds{W: float64(cfg.World.Width()), H: float64(cfg.World.Height())}

	if g.pool == nil || g.pool.Cap() != cfg.World.PoolCapacity {
		g.pool = level.NewPool(cfg.World.PoolCapacity)
	}
	lvl, err := level.Build(LevelParams(cfg.World), g.pool, rng, g.logger)
	if err != nil {
		return err
	}
	g.level = lvl
	g.world = physics.NewWorld(bounds, cfg.Physics.Gravity, cfg.Physics.MaxVelocity)

	mode := actor.JumpDirect
	if g.variant == VariantLifts {
		mode = actor.JumpDeferred
	}
	px := rng.Float64() * (bounds.W - actor.SpriteWidth)
	g.player = actor.NewPlayer(px, bounds.H-cfg.Player.SpawnOffset, mode)
	g.player.Anim.Stop(g.tun.IdleFrame)

	g.enemies = g.enemies[:0]
	start := g.player.Body.Center()
	for i := 0; i < enemyCount(cfg); i++ {
		var x, y float64
		// Bounded so a tiny world cannot hang the reset.
		for try := 0; try < 16; try++ {
			x = rng.Float64() * bounds.W
			y = rng.Float64() * bounds.H
			if math.Hypot(x-start.X, y-start.Y) >= spawnClearance {
				break
			}
		}
		dir := 1.0
		if rng.Intn(2) == 0 {
			dir = -1
		}
		g.enemies = append(g.enemies, actor.NewEnemy(x, y, dir, g.tun.EnemySpeed))
	}

	g.lifts = g.lifts[:0]
	if g.variant == VariantLifts {
		g.spawnLifts(rng, bounds)
	}
	return nil
}

// spawnLifts spreads lifts evenly across the world, each halfway between
// two floor rows. Even-numbered lifts bob down toward the lower floor and
// back, odd-numbered ones travel side to side. Neither carries a rider
// into a floor.
func (g *Game) spawnLifts(rng *rand.Rand, bounds physics.Bounds) {
	lc := g.cfg.Lifts
	if lc.Count <= 0 {
		return
	}

	p := g.level.Params
	floors := int((p.LowestY() - p.HighestY()) / p.VerticalSpacing)
	slot := bounds.W / float64(lc.Count)

	for i := 0; i < lc.Count; i++ {
		x := float64(i)*slot + (slot-lc.Width)/2
		floor := 1 + rng.Intn(max(floors, 1))
		// Half a spacing above a floor row, clear of its tiles.
		y := p.LowestY() - float64(floor)*p.VerticalSpacing + p.VerticalSpacing/2

		from := core.Vec2{X: x, Y: y}
		to := from
		if i%2 == 0 {
			to.Y = y + math.Max(math.Min(lc.Travel, p.VerticalSpacing/2-lc.Height-8), 0)
		} else {
			to.X = math.Min(x+lc.Travel, bounds.W-lc.Width)
		}
		g.lifts = append(g.lifts, actor.NewLift(from, to, lc.Width, lc.Height, lc.Speed))
	}
}
