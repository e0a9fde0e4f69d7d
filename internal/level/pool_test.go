package level

import (
	"errors"
	"testing"
)

func TestPoolAcquireRelease(t *testing.T) {
	p := NewPool(3)
	if p.Cap() != 3 || p.Len() != 0 {
		t.Fatalf("new pool: cap=%d len=%d", p.Cap(), p.Len())
	}

	var got []int
	for i := 0; i < 3; i++ {
		idx, err := p.Acquire()
		if err != nil {
			t.Fatalf("Acquire() #%d failed: %v", i, err)
		}
		got = append(got, idx)
	}
	if got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Errorf("slots handed out as %v, expected lowest first", got)
	}

	if _, err := p.Acquire(); !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("expected ErrPoolExhausted, got %v", err)
	}

	p.Release(1)
	if p.Len() != 2 {
		t.Errorf("Len() after release = %d, expected 2", p.Len())
	}
	idx, err := p.Acquire()
	if err != nil || idx != 1 {
		t.Errorf("Acquire() after release = %d, %v; expected slot 1", idx, err)
	}
}

func TestPoolReleaseIgnoresBadSlots(t *testing.T) {
	p := NewPool(2)
	p.Release(-1)
	p.Release(5)
	p.Release(0) // not active

	if p.Len() != 0 {
		t.Errorf("Len() = %d after bogus releases", p.Len())
	}
	for i := 0; i < 2; i++ {
		if _, err := p.Acquire(); err != nil {
			t.Fatalf("double-free corrupted the free list: %v", err)
		}
	}
	if _, err := p.Acquire(); !errors.Is(err, ErrPoolExhausted) {
		t.Error("pool should hold exactly its capacity")
	}
}

func TestPoolPlace(t *testing.T) {
	p := NewPool(1)

	if err := p.Place(Placement{X: 64, Y: 96, Ground: true}); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	tile := p.Tile(0)
	if !tile.Active || tile.X != 64 || tile.Y != 96 || !tile.Ground {
		t.Errorf("tile = %+v", *tile)
	}

	if err := p.Place(Placement{}); !errors.Is(err, ErrPoolExhausted) {
		t.Errorf("expected ErrPoolExhausted, got %v", err)
	}
}

func TestPoolReset(t *testing.T) {
	p := NewPool(4)
	for i := 0; i < 4; i++ {
		_ = p.Place(Placement{X: float64(i)})
	}

	p.Reset()
	if p.Len() != 0 {
		t.Errorf("Len() after Reset = %d", p.Len())
	}
	count := 0
	p.Active(func(int, Tile) { count++ })
	if count != 0 {
		t.Errorf("Active visited %d tiles after Reset", count)
	}
}

func TestPoolZeroCapacity(t *testing.T) {
	p := NewPool(-5)
	if _, err := p.Acquire(); !errors.Is(err, ErrPoolExhausted) {
		t.Errorf("empty pool should be exhausted, got %v", err)
	}
}
