package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	// Save some runs
	if _, err := store.SaveScore("muncher", 100, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("muncher", 50, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("muncher", 200, 2); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	if _, err := store.SaveScore("other", 500, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("muncher", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].Round != 2 {
		t.Errorf("Round should be persisted with the score, got %d", scores[0].Round)
	}

	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(otherScores) != 1 {
		t.Errorf("Expected 1 score for the other game, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("muncher", (i+1)*100, 1)
	}

	scores, err := store.TopScores("muncher", 3)
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

	// No scores yet
	high, err := store.HighScore("muncher")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("muncher", 100, 1)
	store.SaveScore("muncher", 300, 3)
	store.SaveScore("muncher", 200, 2)

	high, err = store.HighScore("muncher")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreBestRound(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRound("muncher")
	if err != nil {
		t.Fatalf("BestRound() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best round 0 for empty game, got %d", best)
	}

	store.SaveScore("muncher", 100, 1)
	store.SaveScore("muncher", 80, 4)

	best, err = store.BestRound("muncher")
	if err != nil {
		t.Fatalf("BestRound() failed: %v", err)
	}
	if best != 4 {
		t.Errorf("Expected best round 4, got %d", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("muncher", 100, 1)
	store.SaveScore("muncher", 200, 1)
	store.SaveScore("other", 300, 1)

	if err := store.ClearScores("muncher"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	muncherScores, _ := store.TopScores("muncher", 10)
	if len(muncherScores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(muncherScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Error("Clearing one game should not affect another")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("muncher", i*10, 1)
	}

	scores, err := store.AllScores("muncher")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("muncher", 100, 1)
	store.SaveScore("muncher", 300, 2)

	stats, err := store.GetGameStats("muncher")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.BestRound != 2 {
		t.Errorf("Expected best round 2, got %d", stats.BestRound)
	}
	if stats.TotalScore != 400 {
		t.Errorf("Expected total score 400, got %d", stats.TotalScore)
	}
}

func TestStoreExpandsNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
