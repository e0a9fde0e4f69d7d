package inspect

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/blobrun/internal/registry"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ScoreResponse is one high score entry.
type ScoreResponse struct {
	Rank      int       `json:"rank"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// RunResponse is one recorded run.
type RunResponse struct {
	ID         int64     `json:"id"`
	Seed       int64     `json:"seed"`
	Score      int       `json:"score"`
	Ticks      int       `json:"ticks"`
	Tiles      int       `json:"tiles"`
	Skipped    int       `json:"skipped"`
	Difficulty string    `json:"difficulty,omitempty"`
	EndReason  string    `json:"end_reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// BestRunResponse names the seed behind a game's best score.
type BestRunResponse struct {
	Game  string `json:"game"`
	Seed  int64  `json:"seed"`
	Score int    `json:"score"`
}

// GetScores handles GET /api/scores/{game}?limit=N
func (h *Handler) GetScores(w http.ResponseWriter, r *http.Request) {
	game, limit, ok := h.historyParams(w, r)
	if !ok {
		return
	}

	scores, err := h.store.TopScores(game, limit)
	if err != nil {
		h.logger.Error("top scores failed", "game", game, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load scores")
		return
	}

	resp := make([]ScoreResponse, len(scores))
	for i, s := range scores {
		resp[i] = ScoreResponse{Rank: i + 1, Score: s.Score, CreatedAt: s.CreatedAt}
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetRuns handles GET /api/runs/{game}?limit=N
func (h *Handler) GetRuns(w http.ResponseWriter, r *http.Request) {
	game, limit, ok := h.historyParams(w, r)
	if !ok {
		return
	}

	runs, err := h.store.RecentRuns(game, limit)
	if err != nil {
		h.logger.Error("recent runs failed", "game", game, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load runs")
		return
	}

	resp := make([]RunResponse, len(runs))
	for i, run := range runs {
		resp[i] = RunResponse{
			ID:         run.ID,
			Seed:       run.Seed,
			Score:      run.Score,
			Ticks:      run.Ticks,
			Tiles:      run.Tiles,
			Skipped:    run.Skipped,
			Difficulty: run.Difficulty,
			EndReason:  run.EndReason,
			CreatedAt:  run.CreatedAt,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetBestRun handles GET /api/runs/{game}/best
func (h *Handler) GetBestRun(w http.ResponseWriter, r *http.Request) {
	game, _, ok := h.historyParams(w, r)
	if !ok {
		return
	}

	seed, score, found, err := h.store.BestSeed(game)
	if err != nil {
		h.logger.Error("best seed failed", "game", game, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load runs")
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "No runs recorded")
		return
	}
	respondJSON(w, http.StatusOK, BestRunResponse{Game: game, Seed: seed, Score: score})
}

// SummaryResponse aggregates a game's run history.
type SummaryResponse struct {
	Game       string    `json:"game"`
	Runs       int       `json:"runs"`
	Caught     int       `json:"caught"`
	Best       int       `json:"best"`
	MeanTicks  float64   `json:"mean_ticks"`
	LastPlayed time.Time `json:"last_played"`
}

// GetSummary handles GET /api/runs/{game}/summary
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	game, _, ok := h.historyParams(w, r)
	if !ok {
		return
	}

	sum, err := h.store.Summary(game)
	if err != nil {
		h.logger.Error("run summary failed", "game", game, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load runs")
		return
	}
	respondJSON(w, http.StatusOK, SummaryResponse{
		Game:       game,
		Runs:       sum.Runs,
		Caught:     sum.Caught,
		Best:       sum.Best,
		MeanTicks:  sum.MeanTicks(),
		LastPlayed: sum.LastPlayed,
	})
}

// historyParams validates the game and limit parameters shared by the
// history routes.
func (h *Handler) historyParams(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "No score database")
		return "", 0, false
	}

	game := chi.URLParam(r, "game")
	if !registry.Exists(game) {
		respondError(w, http.StatusNotFound, "Unknown game")
		return "", 0, false
	}

	limit := defaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid limit")
			return "", 0, false
		}
		limit = min(n, maxLimit)
	}
	return game, limit, true
}
