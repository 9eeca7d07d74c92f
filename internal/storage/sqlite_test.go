package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("etris", 100, 0, 0)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("etris", 50, 0, 0)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("etris", 200, 0, 0)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("etris_mini", 500, 0, 0)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for etris
	scores, err := store.TopScores("etris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for mini
	miniScores, err := store.TopScores("etris_mini", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(miniScores) != 1 {
		t.Errorf("Expected 1 mini score, got %d", len(miniScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100, i, i*10)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("etris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("etris", 100, 0, 0)
	store.SaveScore("etris", 300, 0, 0)
	store.SaveScore("etris", 200, 0, 0)

	high, err = store.HighScore("etris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("etris", 100, 0, 0)
	store.SaveScore("etris", 200, 0, 0)
	store.SaveScore("etris_mini", 300, 0, 0)

	// Clear only etris scores
	err = store.ClearScores("etris")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Etris should be empty
	etrisScores, _ := store.TopScores("etris", 10)
	if len(etrisScores) != 0 {
		t.Errorf("Expected 0 etris scores after clear, got %d", len(etrisScores))
	}

	// Mini should still have scores
	miniScores, _ := store.TopScores("etris_mini", 10)
	if len(miniScores) != 1 {
		t.Errorf("Mini scores should not be affected by clearing etris")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10, 0, 0)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreKeepsLinesAndFigures(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("etris", 145, 3, 21); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("etris", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}

	got := scores[0]
	if got.Score != 145 || got.Lines != 3 || got.Figures != 21 || got.GameID != "etris" {
		t.Errorf("Unexpected entry: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreTiesOrderedByLines(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("etris", 100, 1, 10)
	store.SaveScore("etris", 100, 4, 12)
	store.SaveScore("etris", 100, 2, 11)

	scores, err := store.TopScores("etris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	for i, want := range []int{4, 2, 1} {
		if scores[i].Lines != want {
			t.Errorf("scores[%d].Lines = %d, expected %d", i, scores[i].Lines, want)
		}
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("etris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty game: %+v", empty)
	}

	store.SaveScore("etris", 100, 2, 20)
	store.SaveScore("etris", 300, 6, 40)
	store.SaveScore("etris_mini", 50, 1, 9)

	stats, err := store.GetGameStats("etris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("Unexpected score stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalLines != 8 || stats.BestLines != 6 {
		t.Errorf("Unexpected line stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("etris", 100, 2, 20)
	store.SaveScore("etris", 300, 6, 40)
	store.SaveScore("etris_wide", 70, 1, 15)

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["etris"].GamesCount != 2 || all["etris"].BestLines != 6 {
		t.Errorf("Unexpected etris stats: %+v", all["etris"])
	}
	if all["etris_wide"].HighScore != 70 {
		t.Errorf("Unexpected etris_wide stats: %+v", all["etris_wide"])
	}
}

func TestStoreSchemaVersion(t *testing.T) {
	store := openTestStore(t)

	v, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if v != len(migrations) {
		t.Errorf("SchemaVersion() = %d, expected %d", v, len(migrations))
	}
}

func TestStoreUpgradesScoreOnlyTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	// A database written before lines and figures were recorded.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	INSERT INTO scores (game_id, score) VALUES ('etris', 75);`)
	db.Close()
	if err != nil {
		t.Fatalf("seeding old schema failed: %v", err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	scores, err := store.AllScores("etris")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 75 || scores[0].Lines != 0 || scores[0].Figures != 0 {
		t.Fatalf("AllScores() = %+v, expected the old row with zero lines and figures", scores)
	}

	if _, err := store.SaveScore("etris", 90, 3, 20); err != nil {
		t.Fatalf("SaveScore() after upgrade failed: %v", err)
	}

	// Reopening must not try to add the columns again.
	store.Close()
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	if high, _ := store.HighScore("etris"); high != 90 {
		t.Errorf("HighScore() = %d, expected 90", high)
	}
}
