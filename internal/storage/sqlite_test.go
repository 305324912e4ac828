package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

	id, err := store.SaveRun(Run{Score: 120, Level: 1, Outcome: OutcomeGameOver, Ticks: 3600, Seed: 7})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() returned non-UUID id %q", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.Score != 120 || got.Level != 1 || got.Outcome != OutcomeGameOver || got.Ticks != 3600 || got.Seed != 7 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Difficulty != "normal" {
		t.Errorf("difficulty = %q, expected default normal", got.Difficulty)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RunByID(uuid.NewString())
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}

	_, err = store.RunByID("not-a-uuid")
	if err == nil || errors.Is(err, ErrRunNotFound) {
		t.Errorf("malformed id should be rejected before the query, got %v", err)
	}
}

func TestStoreRejectsBadID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{ID: "not-a-uuid", Outcome: OutcomeQuit}); err == nil {
		t.Error("SaveRun() should reject a malformed id")
	}

	id := uuid.NewString()
	if _, err := store.SaveRun(Run{ID: id, Outcome: OutcomeQuit}); err != nil {
		t.Fatalf("SaveRun() with explicit id failed: %v", err)
	}
	if _, err := store.SaveRun(Run{ID: id, Outcome: OutcomeQuit}); err == nil {
		t.Error("duplicate id should fail")
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{50, 200, 100, 200, 10} {
		if _, err := store.SaveRun(Run{Score: score, Outcome: OutcomeGameOver}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	want := []int{200, 200, 100}
	for i, r := range top {
		if r.Score != want[i] {
			t.Errorf("rank %d score = %d, expected %d", i+1, r.Score, want[i])
		}
	}

	// Default limit
	all, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 runs with default limit, got %d", len(all))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 4 {
		if _, err := store.SaveRun(Run{Score: i, Outcome: OutcomeQuit}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 3 || recent[1].Score != 2 {
		t.Errorf("recent = %+v, expected the last two newest first", recent)
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("empty store high score = %d, expected 0", hs)
	}
	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("empty stats = %+v", st)
	}

	runs := []Run{
		{Score: 150, Level: 1, Outcome: OutcomeGameOver, Ticks: 100},
		{Score: 570, Level: 2, Outcome: OutcomeVictory, Ticks: 400},
		{Score: 40, Level: 0, Outcome: OutcomeQuit, Ticks: 50},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	hs, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 570 {
		t.Errorf("high score = %d, expected 570", hs)
	}

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	want := Stats{Runs: 3, Victories: 1, BestScore: 570, BestLevel: 2, Ticks: 550}
	if st != want {
		t.Errorf("stats = %+v, expected %+v", st, want)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Score: 10, Outcome: OutcomeQuit}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
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

func TestStoreReopenKeepsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{Score: 77, Outcome: OutcomeVictory}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	hs, err := store.HighScore()
	if err != nil || hs != 77 {
		t.Errorf("high score after reopen = %d (%v), expected 77", hs, err)
	}
}
