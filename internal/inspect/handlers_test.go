package inspect

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blobrun/internal/config"
	"github.com/vovakirdan/blobrun/internal/games/blobrun"
	"github.com/vovakirdan/blobrun/internal/level"
	"github.com/vovakirdan/blobrun/internal/storage"
)

func newTestServer(t *testing.T, withStore bool) (*httptest.Server, *storage.Store) {
	t.Helper()

	var store *storage.Store
	if withStore {
		var err error
		store, err = storage.Open(filepath.Join(t.TempDir(), "test.db"))
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		t.Cleanup(func() { store.Close() })
	}

	h := NewHandler(config.DefaultBlobrunConfig(), store, log.New(io.Discard))
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv, store
}

func getJSON(t *testing.T, url string, wantStatus int, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: status %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if v == nil {
		return
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("GET %s: decode: %v", url, err)
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, false)

	var body map[string]string
	getJSON(t, srv.URL+"/api/health", http.StatusOK, &body)
	if body["status"] != "ok" {
		t.Errorf("status = %q", body["status"])
	}
}

func TestListPatterns(t *testing.T) {
	srv, _ := newTestServer(t, false)

	var patterns []PatternResponse
	getJSON(t, srv.URL+"/api/patterns", http.StatusOK, &patterns)
	if len(patterns) != len(level.DefaultPatterns()) {
		t.Fatalf("got %d patterns, want %d", len(patterns), len(level.DefaultPatterns()))
	}
	for _, p := range patterns {
		if len(p.Row) != level.PatternWidth {
			t.Errorf("pattern %d row %q has width %d", p.Index, p.Row, len(p.Row))
		}
	}
}

func TestListGames(t *testing.T) {
	srv, _ := newTestServer(t, false)

	var games []GameResponse
	getJSON(t, srv.URL+"/api/games", http.StatusOK, &games)

	ids := make(map[string]bool)
	for _, g := range games {
		ids[g.ID] = true
	}
	if !ids[blobrun.IDClassic] || !ids[blobrun.IDLifts] {
		t.Errorf("games = %+v", games)
	}
}

func TestGetLevelMatchesBuild(t *testing.T) {
	srv, _ := newTestServer(t, false)

	var got LevelResponse
	getJSON(t, srv.URL+"/api/levels/42", http.StatusOK, &got)

	want, err := blobrun.BuildLevel(config.DefaultBlobrunConfig(), 42, log.New(io.Discard))
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}
	wantPlacements := want.Placements()

	if got.Seed != 42 || got.Placed != want.Report.Placed || len(got.Placements) != len(wantPlacements) {
		t.Fatalf("seed %d placed %d (%d placements), want 42 %d (%d)",
			got.Seed, got.Placed, len(got.Placements), want.Report.Placed, len(wantPlacements))
	}
	for i, p := range got.Placements {
		if p.X != wantPlacements[i].X || p.Y != wantPlacements[i].Y {
			t.Fatalf("placement %d = (%v,%v), want (%v,%v)", i, p.X, p.Y, wantPlacements[i].X, wantPlacements[i].Y)
		}
	}
}

func TestGetLevelASCII(t *testing.T) {
	srv, _ := newTestServer(t, false)

	resp, err := http.Get(srv.URL + "/api/levels/7/ascii")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	cfg := config.DefaultBlobrunConfig()
	if want := cfg.World.Height() / cfg.World.TileSize; len(lines) != want {
		t.Fatalf("got %d lines, want %d", len(lines), want)
	}

	// One character per tile; the ground row is solid.
	cols := cfg.World.Width() / cfg.World.TileSize
	for i, line := range lines {
		if len(line) != cols {
			t.Fatalf("line %d has %d columns, want %d", i, len(line), cols)
		}
	}
	if ground := lines[len(lines)-1]; ground != strings.Repeat("#", cols) {
		t.Errorf("ground line = %q, want all tiles", ground)
	}
}

func TestGetLevelBadSeed(t *testing.T) {
	srv, _ := newTestServer(t, false)
	getJSON(t, srv.URL+"/api/levels/abc", http.StatusBadRequest, nil)
}

func TestScoresWithoutStore(t *testing.T) {
	srv, _ := newTestServer(t, false)
	getJSON(t, srv.URL+"/api/scores/"+blobrun.IDClassic, http.StatusServiceUnavailable, nil)
}

func TestScoresAndRuns(t *testing.T) {
	srv, store := newTestServer(t, true)

	for _, r := range []storage.RunRecord{
		{GameID: blobrun.IDClassic, Seed: 1, Score: 50, Ticks: 300, EndReason: storage.EndCaught},
		{GameID: blobrun.IDClassic, Seed: 2, Score: 120, Ticks: 720, EndReason: storage.EndCaught},
		{GameID: blobrun.IDClassic, Seed: 3, Score: 80, Ticks: 480, EndReason: storage.EndQuit},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	var scores []ScoreResponse
	getJSON(t, srv.URL+"/api/scores/"+blobrun.IDClassic+"?limit=2", http.StatusOK, &scores)
	if len(scores) != 2 || scores[0].Score != 120 || scores[0].Rank != 1 {
		t.Errorf("scores = %+v", scores)
	}

	var runs []RunResponse
	getJSON(t, srv.URL+"/api/runs/"+blobrun.IDClassic, http.StatusOK, &runs)
	if len(runs) != 3 || runs[0].Seed != 3 {
		t.Errorf("runs = %+v", runs)
	}

	var best BestRunResponse
	getJSON(t, srv.URL+"/api/runs/"+blobrun.IDClassic+"/best", http.StatusOK, &best)
	if best.Seed != 2 || best.Score != 120 {
		t.Errorf("best = %+v", best)
	}

	var sum SummaryResponse
	getJSON(t, srv.URL+"/api/runs/"+blobrun.IDClassic+"/summary", http.StatusOK, &sum)
	if sum.Runs != 3 || sum.Caught != 2 || sum.Best != 120 || sum.MeanTicks != 500 {
		t.Errorf("summary = %+v", sum)
	}

	getJSON(t, srv.URL+"/api/runs/"+blobrun.IDLifts+"/best", http.StatusNotFound, nil)
	getJSON(t, srv.URL+"/api/scores/nope", http.StatusNotFound, nil)
	getJSON(t, srv.URL+"/api/scores/"+blobrun.IDClassic+"?limit=0", http.StatusBadRequest, nil)
}
