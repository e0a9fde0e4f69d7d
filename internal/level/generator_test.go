package level

import (
	"errors"
	"io"
	"math/rand"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
)

func testParams() Params {
	return Params{
		WorldWidth:      2560,
		WorldHeight:     1920,
		TileSize:        32,
		Chunks:          4,
		ChunkWidth:      640,
		VerticalSpacing: 144,
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

type recorder struct {
	placements []Placement
}

func (r *recorder) Place(p Placement) error {
	r.placements = append(r.placements, p)
	return nil
}

func generate(t *testing.T, p Params, seed int64) (*recorder, Report) {
	t.Helper()
	rec := &recorder{}
	rep, err := Generate(p, DefaultPatterns(), rand.New(rand.NewSource(seed)), rec, quietLogger())
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	return rec, rep
}

func TestGroundRowHasNoGaps(t *testing.T) {
	p := testParams()
	rec, _ := generate(t, p, 1)

	lowest := p.LowestY()
	seen := make(map[float64]bool)
	for _, pl := range rec.placements {
		if !pl.Ground {
			continue
		}
		if pl.Y != lowest {
			t.Errorf("ground tile at y=%v, expected %v", pl.Y, lowest)
		}
		if pl.Decorative || pl.Variant != 0 {
			t.Errorf("ground tile at x=%v should not be decorative", pl.X)
		}
		if seen[pl.X] {
			t.Errorf("duplicate ground tile at x=%v", pl.X)
		}
		seen[pl.X] = true
	}

	want := int(p.WorldWidth / p.TileSize)
	if len(seen) != want {
		t.Fatalf("ground row has %d tiles, expected %d", len(seen), want)
	}
	for col := 0; col < want; col++ {
		if !seen[float64(col)*p.TileSize] {
			t.Errorf("gap in ground row at column %d", col)
		}
	}
}

func TestGroundRowComesFirst(t *testing.T) {
	p := testParams()
	rec, _ := generate(t, p, 3)

	cols := p.GroundColumns()
	for i, pl := range rec.placements {
		if (i < cols) != pl.Ground {
			t.Fatalf("placement %d: Ground=%v, ground row should be emitted first", i, pl.Ground)
		}
	}
}

func TestUpperRowsMatchSampledPatterns(t *testing.T) {
	p := testParams()
	patterns := DefaultPatterns()
	rec, rep := generate(t, p, 42)

	upper := rec.placements[p.GroundColumns():]
	chunksPerRow := p.Chunks
	rows := len(rep.Patterns) / chunksPerRow
	if rows != rep.Rows-1 {
		t.Fatalf("pattern log covers %d rows, report says %d upper rows", rows, rep.Rows-1)
	}

	i := 0
	for r := 0; r < rows; r++ {
		y := p.LowestY() - float64(r+1)*p.VerticalSpacing
		for c := 0; c < chunksPerRow; c++ {
			pat := patterns[rep.Patterns[r*chunksPerRow+c]]
			chunkX := float64(c) * p.ChunkWidth
			for col := 0; col < PatternWidth; col++ {
				if !pat[col] {
					continue
				}
				if i >= len(upper) {
					t.Fatalf("ran out of placements at row %d chunk %d", r, c)
				}
				got := upper[i]
				wantX := chunkX + float64(col)*p.TileSize
				if got.X != wantX || got.Y != y || got.Ground || got.Decorative {
					t.Fatalf("placement %d = %+v, expected x=%v y=%v plain tile", i, got, wantX, y)
				}
				i++
			}
		}
	}
	if i != len(upper) {
		t.Errorf("%d extra upper placements", len(upper)-i)
	}
}

func TestRowsStayBelowCeiling(t *testing.T) {
	p := testParams()
	rec, rep := generate(t, p, 9)

	for _, pl := range rec.placements {
		if pl.Y <= p.HighestY() {
			t.Errorf("tile at y=%v is at or above the ceiling %v", pl.Y, p.HighestY())
		}
		if pl.X < 0 || pl.X+p.TileSize > p.WorldWidth {
			t.Errorf("tile at x=%v is outside the world", pl.X)
		}
	}

	// 1888 down to 304 in steps of 144 plus the ground row.
	if rep.Rows != 12 {
		t.Errorf("Rows = %d, expected 12", rep.Rows)
	}
}

func TestPatternSamplingRange(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		max   int
	}{
		{"whole library", 0, len(DefaultPatterns())},
		{"legacy range", LegacyPatternLimit, LegacyPatternLimit},
		{"single row", 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testParams()
			p.PatternLimit = tc.limit
			for seed := int64(0); seed < 20; seed++ {
				_, rep := generate(t, p, seed)
				for _, idx := range rep.Patterns {
					if idx < 0 || idx >= tc.max {
						t.Fatalf("seed %d sampled pattern %d, allowed [0,%d)", seed, idx, tc.max)
					}
				}
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := testParams()
	a, repA := generate(t, p, 1234)
	b, repB := generate(t, p, 1234)

	if !reflect.DeepEqual(a.placements, b.placements) {
		t.Error("same seed produced different placement sequences")
	}
	if !reflect.DeepEqual(repA, repB) {
		t.Error("same seed produced different reports")
	}

	c, _ := generate(t, p, 4321)
	if reflect.DeepEqual(a.placements, c.placements) {
		t.Error("different seeds produced identical levels")
	}
}

func TestDecoratedGround(t *testing.T) {
	p := testParams()
	p.DecorateGround = true
	rec, _ := generate(t, p, 5)

	for _, pl := range rec.placements {
		if pl.Ground {
			if !pl.Decorative {
				t.Fatal("ground tile should be decorative")
			}
			if pl.Variant < 0 || pl.Variant > MaxVariant {
				t.Fatalf("variant %d outside [0,%d]", pl.Variant, MaxVariant)
			}
		} else if pl.Decorative {
			t.Fatal("platform tiles should stay plain")
		}
	}
}

func TestPoolExhaustionSkipsAndContinues(t *testing.T) {
	p := testParams()
	pool := NewPool(100)

	rep, err := Generate(p, DefaultPatterns(), rand.New(rand.NewSource(7)), pool, quietLogger())
	if err != nil {
		t.Fatalf("exhaustion should not abort generation: %v", err)
	}
	if rep.Placed != 100 {
		t.Errorf("Placed = %d, expected pool capacity 100", rep.Placed)
	}
	if rep.Skipped == 0 {
		t.Error("expected skipped placements once the pool ran out")
	}
	if rep.Rows != 12 {
		t.Errorf("generation should visit every row, got %d", rep.Rows)
	}

	// Reference run with an unbounded sink emits the same total.
	rec, _ := generate(t, p, 7)
	if rep.Placed+rep.Skipped != len(rec.placements) {
		t.Errorf("placed+skipped = %d, expected %d", rep.Placed+rep.Skipped, len(rec.placements))
	}
}

func TestSinkErrorsAreCountedNotReturned(t *testing.T) {
	p := testParams()
	boom := errors.New("boom")
	calls := 0
	sink := PlacerFunc(func(pl Placement) error {
		calls++
		if pl.Ground {
			return nil
		}
		return boom
	})

	rep, err := Generate(p, DefaultPatterns(), rand.New(rand.NewSource(1)), sink, quietLogger())
	if err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	if rep.Placed != p.GroundColumns() || rep.Skipped != calls-p.GroundColumns() {
		t.Errorf("report %+v does not match %d calls", rep, calls)
	}
}

func TestInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero tile size", func(p *Params) { p.TileSize = 0 }},
		{"zero spacing", func(p *Params) { p.VerticalSpacing = 0 }},
		{"negative chunks", func(p *Params) { p.Chunks = -1 }},
		{"unaligned chunk", func(p *Params) { p.ChunkWidth = 650 }},
		{"pattern limit too big", func(p *Params) { p.PatternLimit = 22 }},
		{"tiny world", func(p *Params) { p.WorldWidth = 10 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testParams()
			tc.mutate(&p)
			_, err := Generate(p, DefaultPatterns(), rand.New(rand.NewSource(1)), &recorder{}, quietLogger())
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}
