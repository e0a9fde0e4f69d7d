package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blobrun/internal/storage"
)

func sbUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

// cursorOn points the scoreboard at gameID.
func cursorOn(t *testing.T, m ScoreboardModel, gameID string) ScoreboardModel {
	t.Helper()
	for range m.games {
		if m.games[m.cursor].ID == gameID {
			return m
		}
		m = sbUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	t.Fatalf("game %q not on the scoreboard", gameID)
	return m
}

func TestScoreboardViews(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.RunRecord{
		{GameID: "stub", Seed: 11, Score: 40, Ticks: 240, EndReason: storage.EndCaught},
		{GameID: "stub", Seed: 12, Score: 95, Ticks: 570, EndReason: storage.EndQuit, Difficulty: "hard"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := cursorOn(t, NewScoreboardModel(store, 100, 30), "stub")
	if m.rows != 2 {
		t.Fatalf("best view rows = %d, want 2", m.rows)
	}
	if !m.hasBest || m.bestSeed != 12 || m.bestScore != 95 {
		t.Errorf("best = %v seed %d score %d", m.hasBest, m.bestSeed, m.bestScore)
	}
	if view := m.View(); !strings.Contains(view, "BEST TIMES") || !strings.Contains(view, "9.5s") {
		t.Errorf("best view missing title or time:\n%s", view)
	}

	m = sbUpdate(t, m, runeKey('v'))
	if m.view != viewRecent || m.rows != 2 {
		t.Fatalf("recent view = %v rows %d", m.view, m.rows)
	}
	if view := m.View(); !strings.Contains(view, "RECENT RUNS") || !strings.Contains(view, "hard") {
		t.Errorf("recent view missing title or difficulty:\n%s", view)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No score database") {
		t.Error("expected a note about the missing database")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if b := sbUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc}); !b.IsGoingBack() || b.IsQuitting() {
		t.Error("esc should go back")
	}
	if q := sbUpdate(t, m, runeKey('q')); !q.IsQuitting() {
		t.Error("q should quit")
	}
}
