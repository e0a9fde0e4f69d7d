package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run end reasons.
const (
	EndCaught = "caught" // Touched an enemy
	EndQuit   = "quit"   // Left before being caught
)

// RunRecord describes one finished run: the seed that built its level, how
// the level came out and how the run ended.
type RunRecord struct {
	ID         int64
	GameID     string
	Seed       int64
	Score      int
	Ticks      int
	Tiles      int // Tiles placed by the generator
	Skipped    int // Placements dropped on pool exhaustion
	Difficulty string
	EndReason  string
	CreatedAt  time.Time
}

// RunSummary aggregates the run history of one game.
type RunSummary struct {
	GameID     string
	Runs       int
	Caught     int
	Best       int
	TotalTicks int64
	LastPlayed time.Time
}

// MeanTicks is the average run length in ticks.
func (s RunSummary) MeanTicks() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.TotalTicks) / float64(s.Runs)
}

// SaveRun stores r and its score in one transaction and returns the run ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.GameID == "" {
		return 0, errors.New("storage: run without game id")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (game_id, seed, score, ticks, tiles, skipped, difficulty, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Seed, r.Score, r.Ticks, r.Tiles, r.Skipped, r.Difficulty, r.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", r.GameID, r.Score); err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// RecentRuns returns up to limit runs of a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, seed, score, ticks, tiles, skipped, difficulty, end_reason, created_at
		 FROM runs WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		r := RunRecord{GameID: gameID}
		var created any
		err := rows.Scan(&r.ID, &r.Seed, &r.Score, &r.Ticks, &r.Tiles, &r.Skipped,
			&r.Difficulty, &r.EndReason, &created)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.CreatedAt = parseTime(created)
		out = append(out, r)
	}
	return out, rows.Err()
}

// BestSeed returns the seed of the highest scoring run of a game; the
// earliest run wins a tie. ok is false when the game has no runs.
func (s *Store) BestSeed(gameID string) (seed int64, score int, ok bool, err error) {
	err = s.db.QueryRow(
		`SELECT seed, score FROM runs WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT 1`,
		gameID,
	).Scan(&seed, &score)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, 0, false, nil
	case err != nil:
		return 0, 0, false, fmt.Errorf("storage: cannot query best seed: %w", err)
	}
	return seed, score, true, nil
}

// Summary aggregates the run history of a game. A game with no runs yields
// a zero summary.
func (s *Store) Summary(gameID string) (RunSummary, error) {
	sum := RunSummary{GameID: gameID}
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(end_reason = ?), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(SUM(ticks), 0),
		        MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		EndCaught, gameID,
	).Scan(&sum.Runs, &sum.Caught, &sum.Best, &sum.TotalTicks, &last)
	if err != nil {
		return RunSummary{}, fmt.Errorf("storage: cannot summarize runs: %w", err)
	}
	sum.LastPlayed = parseTime(last)
	return sum, nil
}
