package level

import "errors"

// ErrPoolExhausted is returned when every tile slot is in use.
var ErrPoolExhausted = errors.New("level: tile pool exhausted")

// Tile is one pooled tile slot.
type Tile struct {
	X, Y    float64
	Variant int
	Ground  bool
	Active  bool
}

// Pool is a fixed-capacity arena of tiles with a free list of slot indices.
// Acquire and Release are O(1); slots are never reallocated, so indices
// stay valid until released.
type Pool struct {
	tiles []Tile
	free  []int
}

// NewPool creates a pool with capacity slots, all free.
func NewPool(capacity int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool{
		tiles: make([]Tile, capacity),
		free:  make([]int, 0, capacity),
	}
	p.Reset()
	return p
}

// Reset releases every slot. Lower indices are handed out first.
func (p *Pool) Reset() {
	p.free = p.free[:0]
	for i := len(p.tiles) - 1; i >= 0; i-- {
		p.tiles[i] = Tile{}
		p.free = append(p.free, i)
	}
}

// Acquire takes a free slot and marks it active.
func (p *Pool) Acquire() (int, error) {
	n := len(p.free)
	if n == 0 {
		return -1, ErrPoolExhausted
	}
	idx := p.free[n-1]
	p.free = p.free[:n-1]
	p.tiles[idx].Active = true
	return idx, nil
}

// Release returns a slot to the free list. Releasing an inactive or
// out-of-range slot is a no-op.
func (p *Pool) Release(idx int) {
	if idx < 0 || idx >= len(p.tiles) || !p.tiles[idx].Active {
		return
	}
	p.tiles[idx] = Tile{}
	p.free = append(p.free, idx)
}

// Tile returns the slot at idx.
func (p *Pool) Tile(idx int) *Tile {
	return &p.tiles[idx]
}

// Cap returns the total number of slots.
func (p *Pool) Cap() int {
	return len(p.tiles)
}

// Len returns the number of active slots.
func (p *Pool) Len() int {
	return len(p.tiles) - len(p.free)
}

// Active calls fn for every active tile in slot order.
func (p *Pool) Active(fn func(idx int, t Tile)) {
	for i, t := range p.tiles {
		if t.Active {
			fn(i, t)
		}
	}
}

// Place acquires a slot and positions it at the placement, so a Pool can be
// used directly as the generator's sink.
func (p *Pool) Place(pl Placement) error {
	idx, err := p.Acquire()
	if err != nil {
		return err
	}
	t := &p.tiles[idx]
	t.X, t.Y = pl.X, pl.Y
	t.Variant = pl.Variant
	t.Ground = pl.Ground
	return nil
}
