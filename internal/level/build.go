package level

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Level is a generated world: the pool holding its tiles and the grid
// the physics host collides against.
type Level struct {
	Params Params
	Pool   *Pool
	Grid   *Grid
	Report Report
}

// Build resets pool, generates the default pattern library into it and
// indexes the result. rng is left positioned after the last draw so
// callers can keep using it for spawning.
func Build(p Params, pool *Pool, rng *rand.Rand, logger *log.Logger) (*Level, error) {
	pool.Reset()

	rep, err := Generate(p, DefaultPatterns(), rng, pool, logger)
	if err != nil {
		return nil, fmt.Errorf("level: build: %w", err)
	}

	return &Level{
		Params: p,
		Pool:   pool,
		Grid:   GridFromPool(pool, p.TileSize, p.GroundColumns()),
		Report: rep,
	}, nil
}

// Placements lists the active tiles in slot order, which is also the order
// the generator emitted them.
func (l *Level) Placements() []Placement {
	out := make([]Placement, 0, l.Pool.Len())
	l.Pool.Active(func(_ int, t Tile) {
		out = append(out, Placement{
			X:          t.X,
			Y:          t.Y,
			Ground:     t.Ground,
			Decorative: t.Ground && l.Params.DecorateGround,
			Variant:    t.Variant,
		})
	})
	return out
}

// ASCII renders the level with one character per cellW x cellH pixels.
func (l *Level) ASCII(cellW, cellH float64) string {
	return ASCII(l.Grid, l.Params.WorldWidth, l.Params.WorldHeight, cellW, cellH)
}
