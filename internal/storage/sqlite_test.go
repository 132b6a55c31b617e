package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
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

func mustSave(t *testing.T, store *Store, rec ScoreRecord) {
	t.Helper()
	if _, err := store.SaveScore(rec); err != nil {
		t.Fatalf("SaveScore(%+v) failed: %v", rec, err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreRecord{GameID: "tetris", Score: 1200, Lines: 10, Level: 1})
	mustSave(t, store, ScoreRecord{GameID: "tetris", Score: 400, Lines: 3, Level: 0})
	mustSave(t, store, ScoreRecord{GameID: "tetris", Score: 5200, Lines: 31, Level: 3})
	mustSave(t, store, ScoreRecord{GameID: "tetris_bag", Score: 900, Lines: 7})

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{5200, 1200, 400}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Lines != 31 || scores[0].Level != 3 {
		t.Errorf("lines/level not stored: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	bag, err := store.TopScores("tetris_bag", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(bag) != 1 {
		t.Errorf("Expected 1 bag score, got %d", len(bag))
	}
}

func TestStoreRejectsEmptyGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreRecord{Score: 10}); err == nil {
		t.Error("SaveScore() with empty game id should fail")
	}
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, ScoreRecord{GameID: "tetris", Score: (i + 1) * 100, Lines: i})
	}
	mustSave(t, store, ScoreRecord{GameID: "tetris", Score: 500, Lines: 9})

	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[0].Lines != 9 {
		t.Errorf("tie should prefer more lines, got %+v", scores[0])
	}
	if scores[1].Score != 500 || scores[2].Score != 400 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}

	scores, err = store.TopScores("tetris", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 6 {
		t.Errorf("default limit should cover all 6 rows, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, ScoreRecord{GameID: "tetris", Score: 100})
	mustSave(t, store, ScoreRecord{GameID: "tetris", Score: 300})
	mustSave(t, store, ScoreRecord{GameID: "tetris", Score: 200})

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreRecord{GameID: "tetris", Score: 100})
	mustSave(t, store, ScoreRecord{GameID: "tetris", Score: 200})
	mustSave(t, store, ScoreRecord{GameID: "tetris_bag", Score: 300})

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("tetris", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	bag, _ := store.TopScores("tetris_bag", 10)
	if len(bag) != 1 {
		t.Errorf("tetris_bag scores should not be affected by clearing tetris")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	mustSave(t, store, ScoreRecord{GameID: "tetris", Score: 100, Lines: 2, Level: 0})
	mustSave(t, store, ScoreRecord{GameID: "tetris", Score: 300, Lines: 12, Level: 1})
	mustSave(t, store, ScoreRecord{GameID: "tetris_bag", Score: 50, Lines: 1})

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalLines != 14 {
		t.Errorf("TotalLines = %d, want 14", stats.TotalLines)
	}
	if stats.BestLevel != 1 {
		t.Errorf("BestLevel = %d, want 1", stats.BestLevel)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["tetris_bag"].HighScore != 50 {
		t.Errorf("tetris_bag HighScore = %d, want 50", all["tetris_bag"].HighScore)
	}
}

func TestStoreMigratesLegacyTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('tetris', 700);
	`)
	if err != nil {
		t.Fatalf("legacy schema failed: %v", err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy db failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 700 || scores[0].Lines != 0 {
		t.Errorf("legacy row not readable: %+v", scores)
	}
	mustSave(t, store, ScoreRecord{GameID: "tetris", Score: 10, Lines: 1, Level: 0})
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
