package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
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
	store := openTemp(t)

	for _, moves := range []int{12, 7, 9} {
		if _, err := store.SaveSolve("first-steps", moves); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}
	// Different level
	if _, err := store.SaveSolve("sweep", 1); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}

	solves, err := store.BestSolves("first-steps", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(solves) != 3 {
		t.Fatalf("Expected 3 solves, got %d", len(solves))
	}

	// Should be sorted ascending
	want := []int{7, 9, 12}
	for i, w := range want {
		if solves[i].Moves != w {
			t.Errorf("solves[%d].Moves = %d, want %d", i, solves[i].Moves, w)
		}
		if solves[i].LevelID != "first-steps" {
			t.Errorf("solves[%d].LevelID = %q", i, solves[i].LevelID)
		}
	}
	if solves[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	sweep, err := store.BestSolves("sweep", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(sweep) != 1 {
		t.Errorf("Expected 1 sweep solve, got %d", len(sweep))
	}
}

func TestStoreBestSolvesLimitAndTies(t *testing.T) {
	store := openTemp(t)

	first, _ := store.SaveSolve("gate", 5)
	second, _ := store.SaveSolve("gate", 5)
	for i := 0; i < 5; i++ {
		store.SaveSolve("gate", 10+i)
	}

	solves, err := store.BestSolves("gate", 3)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(solves) != 3 {
		t.Fatalf("Expected 3 solves with limit, got %d", len(solves))
	}
	if solves[0].ID != first || solves[1].ID != second {
		t.Errorf("ties out of insertion order: %v", solves)
	}
	if solves[2].Moves != 10 {
		t.Errorf("third solve = %d moves, want 10", solves[2].Moves)
	}
}

func TestStoreBestMoves(t *testing.T) {
	store := openTemp(t)

	_, ok, err := store.BestMoves("bridge")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if ok {
		t.Error("unsolved level should report ok=false")
	}

	store.SaveSolve("bridge", 8)
	store.SaveSolve("bridge", 4)
	store.SaveSolve("bridge", 6)

	best, ok, err := store.BestMoves("bridge")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if !ok || best != 4 {
		t.Errorf("BestMoves = %d, %v; want 4, true", best, ok)
	}
}

func TestStoreAllBest(t *testing.T) {
	store := openTemp(t)

	store.SaveSolve("a", 3)
	store.SaveSolve("a", 2)
	store.SaveSolve("b", 9)

	best, err := store.AllBest()
	if err != nil {
		t.Fatalf("AllBest() failed: %v", err)
	}
	if len(best) != 2 || best["a"] != 2 || best["b"] != 9 {
		t.Errorf("AllBest = %v", best)
	}
}

func TestStoreRejectsNegativeMoves(t *testing.T) {
	store := openTemp(t)
	if _, err := store.SaveSolve("a", -1); err == nil {
		t.Error("negative moves should be rejected")
	}
}

func TestStoreClearSolves(t *testing.T) {
	store := openTemp(t)

	store.SaveSolve("a", 1)
	store.SaveSolve("a", 2)
	store.SaveSolve("b", 3)

	if err := store.ClearSolves("a"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	a, _ := store.BestSolves("a", 10)
	if len(a) != 0 {
		t.Errorf("Expected 0 solves after clear, got %d", len(a))
	}

	b, _ := store.BestSolves("b", 10)
	if len(b) != 1 {
		t.Errorf("level b should not be affected by clearing a")
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.LevelStats("none")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if empty.Solves != 0 || !empty.LastSolved.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveSolve("a", 4)
	store.SaveSolve("a", 8)

	stats, err := store.LevelStats("a")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.Solves != 2 || stats.BestMoves != 4 || stats.AvgMoves != 6 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastSolved.IsZero() {
		t.Error("LastSolved was not set")
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

func TestStoreExpandHomePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := Open("~/.tusk/tusk.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".tusk", "tusk.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
