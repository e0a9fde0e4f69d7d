package level

import (
	"sort"

	"github.com/vovakirdan/blobrun/internal/core"
)

// Grid indexes placed tiles by row so collision queries only touch tiles
// near the query box. Columns are aligned to the tile size; rows are keyed
// by their exact y since floors sit on a spacing that is not a whole number
// of tiles.
type Grid struct {
	tileSize float64
	cols     int
	rows     map[float64][]bool
	ys       []float64 // sorted row keys
}

// NewGrid creates an empty grid for a world cols tiles wide.
func NewGrid(tileSize float64, cols int) *Grid {
	return &Grid{
		tileSize: tileSize,
		cols:     cols,
		rows:     make(map[float64][]bool),
	}
}

// GridFromPool indexes every active tile in the pool.
func GridFromPool(pool *Pool, tileSize float64, cols int) *Grid {
	g := NewGrid(tileSize, cols)
	pool.Active(func(_ int, t Tile) {
		g.Add(t.X, t.Y)
	})
	return g
}

// Add marks the tile whose top-left corner is (x, y) as solid.
func (g *Grid) Add(x, y float64) {
	col := int(x / g.tileSize)
	if col < 0 || col >= g.cols {
		return
	}
	r, ok := g.rows[y]
	if !ok {
		r = make([]bool, g.cols)
		g.rows[y] = r
		i := sort.SearchFloat64s(g.ys, y)
		g.ys = append(g.ys, 0)
		copy(g.ys[i+1:], g.ys[i:])
		g.ys[i] = y
	}
	r[col] = true
}

// Solid reports whether a tile occupies column col of the row at y.
func (g *Grid) Solid(col int, y float64) bool {
	r, ok := g.rows[y]
	if !ok || col < 0 || col >= g.cols {
		return false
	}
	return r[col]
}

// TileSize returns the tile edge length.
func (g *Grid) TileSize() float64 {
	return g.tileSize
}

// Cols returns the world width in tiles.
func (g *Grid) Cols() int {
	return g.cols
}

// RowYs returns the y of every row holding at least one tile, top to bottom.
func (g *Grid) RowYs() []float64 {
	out := make([]float64, len(g.ys))
	copy(out, g.ys)
	return out
}

// Count returns the number of solid tiles.
func (g *Grid) Count() int {
	n := 0
	for _, r := range g.rows {
		for _, on := range r {
			if on {
				n++
			}
		}
	}
	return n
}

// Overlapping calls fn with the box of every tile intersecting r.
func (g *Grid) Overlapping(r core.Rect, fn func(tile core.Rect)) {
	ts := g.tileSize
	first := sort.SearchFloat64s(g.ys, r.Y-ts)
	c0 := max(int(r.X/ts), 0)
	c1 := min(int(r.Right()/ts), g.cols-1)

	for _, y := range g.ys[first:] {
		if y >= r.Bottom() {
			break
		}
		if y+ts <= r.Y {
			continue
		}
		row := g.rows[y]
		for col := c0; col <= c1; col++ {
			if !row[col] {
				continue
			}
			tile := core.NewRect(float64(col)*ts, y, ts, ts)
			if tile.Intersects(r) {
				fn(tile)
			}
		}
	}
}
