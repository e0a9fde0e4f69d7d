package level

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/blobrun/internal/core"
)

func TestGridAddAndSolid(t *testing.T) {
	g := NewGrid(32, 10)
	g.Add(64, 100)
	g.Add(0, 50)
	g.Add(320, 50) // outside the world, ignored

	if !g.Solid(2, 100) || !g.Solid(0, 50) {
		t.Error("added tiles should be solid")
	}
	if g.Solid(1, 100) || g.Solid(2, 101) {
		t.Error("unexpected solid tile")
	}
	if g.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", g.Count())
	}

	ys := g.RowYs()
	if len(ys) != 2 || ys[0] != 50 || ys[1] != 100 {
		t.Errorf("RowYs() = %v, expected [50 100]", ys)
	}
}

func TestGridOverlapping(t *testing.T) {
	g := NewGrid(32, 10)
	for col := 0; col < 10; col++ {
		g.Add(float64(col)*32, 200)
	}
	g.Add(96, 56)

	var hits []core.Rect
	g.Overlapping(core.NewRect(40, 190, 20, 20), func(r core.Rect) {
		hits = append(hits, r)
	})
	if len(hits) != 1 || hits[0].X != 32 || hits[0].Y != 200 {
		t.Errorf("hits = %+v, expected the tile at (32,200)", hits)
	}

	hits = hits[:0]
	g.Overlapping(core.NewRect(40, 168, 20, 32), func(r core.Rect) {
		hits = append(hits, r)
	})
	if len(hits) != 0 {
		t.Errorf("box resting on the row should not overlap, got %+v", hits)
	}

	hits = hits[:0]
	g.Overlapping(core.NewRect(80, 60, 40, 160), func(r core.Rect) {
		hits = append(hits, r)
	})
	// (96,56) plus columns 2 and 3 of the floor.
	if len(hits) != 3 {
		t.Errorf("expected 3 hits, got %+v", hits)
	}
}

func TestGridFromPoolMatchesPlacements(t *testing.T) {
	p := testParams()
	pool := NewPool(12000)
	rep, err := Generate(p, DefaultPatterns(), rand.New(rand.NewSource(11)), pool, quietLogger())
	if err != nil {
		t.Fatal(err)
	}

	g := GridFromPool(pool, p.TileSize, p.GroundColumns())
	if g.Count() != rep.Placed {
		t.Errorf("grid holds %d tiles, generator placed %d", g.Count(), rep.Placed)
	}
	for col := 0; col < p.GroundColumns(); col++ {
		if !g.Solid(col, p.LowestY()) {
			t.Fatalf("ground column %d missing from grid", col)
		}
	}
}

func TestASCII(t *testing.T) {
	g := NewGrid(32, 4)
	for col := 0; col < 4; col++ {
		g.Add(float64(col)*32, 96)
	}
	g.Add(32, 32)

	out := ASCII(g, 128, 128, 32, 32)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	want := []string{"....", ".#..", "....", "####"}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], want[i])
		}
	}

	if ASCII(g, 128, 128, 0, 32) != "" {
		t.Error("zero cell size should render nothing")
	}
}

func TestPatternHelpers(t *testing.T) {
	lib := DefaultPatterns()
	if len(lib) != 21 {
		t.Fatalf("library has %d rows, expected 21", len(lib))
	}
	if lib[0].String() != "..##########..####.." {
		t.Errorf("row 0 = %s", lib[0])
	}
	if lib[0].Count() != 14 {
		t.Errorf("row 0 count = %d, expected 14", lib[0].Count())
	}

	parsed, ok := ParsePattern(lib[5].String())
	if !ok || parsed != lib[5] {
		t.Error("ParsePattern should invert String")
	}
	if _, ok := ParsePattern("###"); ok {
		t.Error("short pattern should be rejected")
	}

	lib[0][0] = true
	if DefaultPatterns()[0][0] {
		t.Error("DefaultPatterns must return a copy")
	}
}
