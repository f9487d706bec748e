package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("edges", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("edges_5x5", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("edges", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	big, err := store.TopScores("edges_5x5", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(big) != 1 {
		t.Errorf("Expected 1 edges_5x5 score, got %d", len(big))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("edges")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("edges", 100)
	store.SaveScore("edges", 300)
	store.SaveScore("edges", 200)

	high, err = store.HighScore("edges")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "edges", Score: 120, Placements: 14, CellsCompleted: 6, LinesCleared: 2},
		{GameID: "edges", Score: 340, Placements: 30, CellsCompleted: 15, LinesCleared: 5},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// A run also counts as a score.
	high, err := store.HighScore("edges")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 340 {
		t.Errorf("Expected high score of 340, got %d", high)
	}

	recent, err := store.RecentRuns("edges", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(recent))
	}
	if recent[0].Score != 340 || recent[0].LinesCleared != 5 || recent[0].Placements != 30 {
		t.Errorf("Most recent run = %+v", recent[0])
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "edges", Score: 100, CellsCompleted: 4, LinesCleared: 1})
	store.SaveRun(RunRecord{GameID: "edges", Score: 300, CellsCompleted: 9, LinesCleared: 3})
	store.SaveScore("edges_4x4", 50)

	stats, err := store.GetGameStats("edges")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalCells != 13 || stats.TotalLines != 4 || stats.BestLines != 3 {
		t.Errorf("run stats = cells %d lines %d best %d", stats.TotalCells, stats.TotalLines, stats.BestLines)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["edges"].TotalLines != 4 {
		t.Errorf("edges TotalLines = %d, want 4", all["edges"].TotalLines)
	}
	if all["edges_4x4"].TotalLines != 0 || all["edges_4x4"].HighScore != 50 {
		t.Errorf("edges_4x4 stats = %+v", all["edges_4x4"])
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "edges", Score: 100, LinesCleared: 1})
	store.SaveScore("edges", 200)
	store.SaveScore("edges_5x5", 300)

	if err := store.ClearScores("edges"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("edges", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 edges scores after clear, got %d", len(scores))
	}
	runs, _ := store.RecentRuns("edges", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 edges runs after clear, got %d", len(runs))
	}

	other, _ := store.TopScores("edges_5x5", 10)
	if len(other) != 1 {
		t.Errorf("edges_5x5 scores should not be affected by clearing edges")
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "edges", Score: 200, LinesCleared: 1})
	store.SaveRun(RunRecord{GameID: "edges", Score: 500, LinesCleared: 4})
	store.SaveRun(RunRecord{GameID: "edges", Score: 200, LinesCleared: 3})
	store.SaveRun(RunRecord{GameID: "edges_4x4", Score: 900})

	runs, err := store.TopRuns("edges", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 500 {
		t.Errorf("best run = %+v", runs[0])
	}
	// Equal scores rank by lines cleared.
	if runs[1].LinesCleared != 3 || runs[2].LinesCleared != 1 {
		t.Errorf("tie order = %+v, %+v", runs[1], runs[2])
	}
}
