package storage

import "testing"

func TestTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200, 100} {
		if _, err := store.SaveScore("blobrun", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("blobrun_lifts", 500)

	scores, err := store.TopScores("blobrun", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	want := []int{200, 100, 100, 50}
	if len(scores) != len(want) {
		t.Fatalf("got %d scores, want %d", len(scores), len(want))
	}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "blobrun" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}
	if scores[1].ID > scores[2].ID {
		t.Error("tied scores should keep the older entry first")
	}

	if top, _ := store.TopScores("blobrun", 2); len(top) != 2 {
		t.Errorf("limit 2 returned %d scores", len(top))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	if high, err := store.HighScore("blobrun"); err != nil || high != 0 {
		t.Fatalf("HighScore() on empty game = %d, %v", high, err)
	}

	for _, s := range []int{100, 300, 200} {
		store.SaveScore("blobrun", s)
	}
	if high, _ := store.HighScore("blobrun"); high != 300 {
		t.Errorf("HighScore() = %d, want 300", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("blobrun", 100)
	store.SaveRun(RunRecord{GameID: "blobrun", Seed: 1, Score: 200, EndReason: EndCaught})
	store.SaveScore("blobrun_lifts", 300)

	if err := store.ClearScores("blobrun"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("blobrun", 10); len(scores) != 0 {
		t.Errorf("%d scores left after clear", len(scores))
	}
	if runs, _ := store.RecentRuns("blobrun", 10); len(runs) != 0 {
		t.Errorf("%d runs left after clear", len(runs))
	}
	if scores, _ := store.TopScores("blobrun_lifts", 10); len(scores) != 1 {
		t.Error("other game's scores were cleared")
	}
}
