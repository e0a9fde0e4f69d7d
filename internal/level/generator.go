// Package level builds blobrun floors: a solid ground row plus stacked rows
// of platform tiles stamped chunk by chunk from a fixed pattern library.
package level

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
)

// ErrInvalidParams is returned when generation parameters cannot describe a level.
var ErrInvalidParams = errors.New("level: invalid parameters")

// Placement is a single tile position emitted by the generator.
type Placement struct {
	X, Y       float64
	Ground     bool
	Decorative bool
	Variant    int // 0 unless Decorative, then in [0, MaxVariant]
}

// MaxVariant is the highest decorative tile variant.
const MaxVariant = 6

// Placer receives placements. Returning an error skips that placement.
type Placer interface {
	Place(p Placement) error
}

// PlacerFunc adapts a function to the Placer interface.
type PlacerFunc func(p Placement) error

// Place calls f(p).
func (f PlacerFunc) Place(p Placement) error {
	return f(p)
}

// Params describes the world the floors are generated for. All distances
// are in pixels.
type Params struct {
	WorldWidth      float64
	WorldHeight     float64
	TileSize        float64
	Chunks          int
	ChunkWidth      float64
	VerticalSpacing float64

	// CeilingSpacings sets highestY = TileSize + VerticalSpacing*CeilingSpacings.
	// Rows are generated strictly below it. Zero means 1.
	CeilingSpacings int

	// PatternLimit restricts sampling to the first N library rows.
	// Zero means the whole library.
	PatternLimit int

	// DecorateGround gives ground tiles a random visual variant.
	DecorateGround bool
}

// LowestY returns the y of the ground row.
func (p Params) LowestY() float64 {
	return p.WorldHeight - p.TileSize
}

// HighestY returns the bound rows must stay strictly below.
func (p Params) HighestY() float64 {
	k := p.CeilingSpacings
	if k <= 0 {
		k = 1
	}
	return p.TileSize + p.VerticalSpacing*float64(k)
}

// GroundColumns returns the number of tiles in the ground row.
func (p Params) GroundColumns() int {
	return int(p.WorldWidth / p.TileSize)
}

// ChunkColumns returns how many pattern slots fit in one chunk.
func (p Params) ChunkColumns() int {
	return min(int(p.ChunkWidth/p.TileSize), PatternWidth)
}

func (p Params) validate(patterns []Pattern) error {
	switch {
	case p.TileSize <= 0:
		return fmt.Errorf("%w: tile size %v", ErrInvalidParams, p.TileSize)
	case p.WorldWidth < p.TileSize || p.WorldHeight < p.TileSize:
		return fmt.Errorf("%w: world %vx%v smaller than one tile", ErrInvalidParams, p.WorldWidth, p.WorldHeight)
	case p.VerticalSpacing <= 0:
		return fmt.Errorf("%w: vertical spacing %v", ErrInvalidParams, p.VerticalSpacing)
	case p.Chunks < 0:
		return fmt.Errorf("%w: chunk count %d", ErrInvalidParams, p.Chunks)
	case p.ChunkWidth <= 0:
		return fmt.Errorf("%w: chunk width %v", ErrInvalidParams, p.ChunkWidth)
	case math.Mod(p.ChunkWidth, p.TileSize) != 0:
		return fmt.Errorf("%w: chunk width %v is not a multiple of tile size %v", ErrInvalidParams, p.ChunkWidth, p.TileSize)
	case len(patterns) == 0:
		return fmt.Errorf("%w: empty pattern library", ErrInvalidParams)
	case p.PatternLimit < 0 || p.PatternLimit > len(patterns):
		return fmt.Errorf("%w: pattern limit %d outside library of %d", ErrInvalidParams, p.PatternLimit, len(patterns))
	}
	return nil
}

// Report summarizes one generation pass.
type Report struct {
	Placed   int   // Placements accepted by the sink
	Skipped  int   // Placements the sink rejected
	Rows     int   // Rows generated, ground included
	Patterns []int // Library index chosen for every chunk of every upper row, in order
}

// Generate stamps the ground row and the pattern rows into sink.
//
// Placements the sink rejects are logged and skipped; generation always
// runs to completion. The only error returned is ErrInvalidParams.
// The same rng seed yields the same placement sequence.
func Generate(p Params, patterns []Pattern, rng *rand.Rand, sink Placer, logger *log.Logger) (Report, error) {
	var rep Report
	if err := p.validate(patterns); err != nil {
		return rep, err
	}
	if logger == nil {
		logger = log.Default()
	}

	limit := p.PatternLimit
	if limit == 0 {
		limit = len(patterns)
	}

	place := func(pl Placement) {
		err := sink.Place(pl)
		if err == nil {
			rep.Placed++
			return
		}
		rep.Skipped++
		if rep.Skipped == 1 {
			logger.Warn("tile placement skipped", "x", pl.X, "y", pl.Y, "error", err)
		} else {
			logger.Debug("tile placement skipped", "x", pl.X, "y", pl.Y, "error", err)
		}
	}

	lowest := p.LowestY()
	highest := p.HighestY()

	// Ground row, no gaps.
	for col := 0; col < p.GroundColumns(); col++ {
		pl := Placement{X: float64(col) * p.TileSize, Y: lowest, Ground: true}
		if p.DecorateGround {
			pl.Decorative = true
			pl.Variant = rng.Intn(MaxVariant + 1)
		}
		place(pl)
	}
	rep.Rows++

	cols := p.ChunkColumns()
	for y := lowest - p.VerticalSpacing; y > highest; y -= p.VerticalSpacing {
		for chunk := 0; chunk < p.Chunks; chunk++ {
			chunkX := float64(chunk) * p.ChunkWidth
			idx := rng.Intn(limit)
			rep.Patterns = append(rep.Patterns, idx)

			floor := patterns[idx]
			for col := 0; col < cols; col++ {
				if floor[col] {
					place(Placement{X: chunkX + float64(col)*p.TileSize, Y: y})
				}
			}
		}
		rep.Rows++
	}

	if rep.Skipped > 0 {
		logger.Warn("level generated with missing tiles", "placed", rep.Placed, "skipped", rep.Skipped)
	}
	return rep, nil
}
