package inspect

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/blobrun/internal/games/blobrun"
	"github.com/vovakirdan/blobrun/internal/level"
	"github.com/vovakirdan/blobrun/internal/registry"
)

// GameResponse describes a registered game.
type GameResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// PatternResponse is one row of the pattern library.
type PatternResponse struct {
	Index int    `json:"index"`
	Row   string `json:"row"`
	Tiles int    `json:"tiles"`
}

// PlacementResponse is one generated tile.
type PlacementResponse struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Ground     bool    `json:"ground"`
	Decorative bool    `json:"decorative"`
	Variant    int     `json:"variant"`
}

// LevelResponse is a level rebuilt from its seed.
type LevelResponse struct {
	Seed       int64               `json:"seed"`
	Width      float64             `json:"width"`
	Height     float64             `json:"height"`
	TileSize   float64             `json:"tile_size"`
	Rows       int                 `json:"rows"`
	Placed     int                 `json:"placed"`
	Skipped    int                 `json:"skipped"`
	Patterns   []int               `json:"patterns"`
	Placements []PlacementResponse `json:"placements"`
}

// NewLevelResponse converts a built level for the wire.
func NewLevelResponse(seed int64, lvl *level.Level) LevelResponse {
	placements := lvl.Placements()
	resp := LevelResponse{
		Seed:       seed,
		Width:      lvl.Params.WorldWidth,
		Height:     lvl.Params.WorldHeight,
		TileSize:   lvl.Params.TileSize,
		Rows:       lvl.Report.Rows,
		Placed:     lvl.Report.Placed,
		Skipped:    lvl.Report.Skipped,
		Patterns:   lvl.Report.Patterns,
		Placements: make([]PlacementResponse, len(placements)),
	}
	for i, p := range placements {
		resp.Placements[i] = PlacementResponse(p)
	}
	return resp
}

// ListGames handles GET /api/games
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	games := registry.List()
	resp := make([]GameResponse, len(games))
	for i, g := range games {
		resp[i] = GameResponse{ID: g.ID, Title: g.Title}
	}
	respondJSON(w, http.StatusOK, resp)
}

// ListPatterns handles GET /api/patterns
func (h *Handler) ListPatterns(w http.ResponseWriter, r *http.Request) {
	patterns := level.DefaultPatterns()
	resp := make([]PatternResponse, len(patterns))
	for i, p := range patterns {
		resp[i] = PatternResponse{Index: i, Row: p.String(), Tiles: p.Count()}
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetLevel handles GET /api/levels/{seed}
func (h *Handler) GetLevel(w http.ResponseWriter, r *http.Request) {
	seed, lvl, ok := h.buildLevel(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, NewLevelResponse(seed, lvl))
}

// GetLevelASCII handles GET /api/levels/{seed}/ascii
func (h *Handler) GetLevelASCII(w http.ResponseWriter, r *http.Request) {
	_, lvl, ok := h.buildLevel(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	ts := float64(h.cfg.World.TileSize)
	//nolint:errcheck // Best-effort write to the client
	w.Write([]byte(lvl.ASCII(ts, ts)))
}

// buildLevel parses the seed parameter and generates its level, writing
// the error response itself on failure.
func (h *Handler) buildLevel(w http.ResponseWriter, r *http.Request) (int64, *level.Level, bool) {
	seed, err := strconv.ParseInt(chi.URLParam(r, "seed"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid seed")
		return 0, nil, false
	}

	lvl, err := blobrun.BuildLevel(h.cfg, seed, h.logger)
	if err != nil {
		h.logger.Error("level build failed", "seed", seed, "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return 0, nil, false
	}
	return seed, lvl, true
}
