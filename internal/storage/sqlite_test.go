package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *Store {
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
	store := openStore(t)

	rounds := []RoundEntry{
		{Category: "basic", Answer: "banana", Won: true, LivesLeft: 4, Guesses: 5, DurationSecs: 42},
		{Category: "basic", Answer: "castle", Won: false, LivesLeft: 0, Guesses: 8, DurationSecs: 90},
		{Category: "intermediate", Answer: "to be", Won: true, LivesLeft: 6, Guesses: 3, DurationSecs: 20},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	basic, err := store.RecentRounds("basic", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(basic) != 2 {
		t.Errorf("Expected 2 basic rounds, got %d", len(basic))
	}

	// Most recent first
	if basic[0].Answer != "castle" {
		t.Errorf("Expected most recent round first, got %q", basic[0].Answer)
	}
	if basic[0].Won {
		t.Error("Castle round should be recorded as a loss")
	}
	if basic[1].Answer != "banana" || !basic[1].Won || basic[1].LivesLeft != 4 {
		t.Errorf("Banana round round-tripped wrong: %+v", basic[1])
	}

	all, err := store.RecentRounds("", 10)
	if err != nil {
		t.Fatalf("RecentRounds(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 rounds across categories, got %d", len(all))
	}
}

func TestStoreRecentRoundsLimit(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound(RoundEntry{Category: "basic", Answer: "word", Won: true, LivesLeft: i})
	}

	rounds, err := store.RecentRounds("basic", 3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Errorf("Expected 3 rounds with limit, got %d", len(rounds))
	}
}

func TestStoreStats(t *testing.T) {
	store := openStore(t)

	// No rounds yet
	stats, err := store.Stats("basic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 0 || stats.Won != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}
	if stats.WinRate() != 0 {
		t.Errorf("Win rate of empty category should be 0, got %f", stats.WinRate())
	}

	store.SaveRound(RoundEntry{Category: "basic", Answer: "a", Won: true, LivesLeft: 2})
	store.SaveRound(RoundEntry{Category: "basic", Answer: "b", Won: true, LivesLeft: 5})
	store.SaveRound(RoundEntry{Category: "basic", Answer: "c", Won: false, LivesLeft: 0})
	store.SaveRound(RoundEntry{Category: "intermediate", Answer: "d", Won: false, LivesLeft: 0})

	stats, err = store.Stats("basic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 3 {
		t.Errorf("Expected 3 played, got %d", stats.Played)
	}
	if stats.Won != 2 {
		t.Errorf("Expected 2 won, got %d", stats.Won)
	}
	if stats.BestLivesLeft != 5 {
		t.Errorf("Expected best lives left 5, got %d", stats.BestLivesLeft)
	}
	if rate := stats.WinRate(); rate < 0.66 || rate > 0.67 {
		t.Errorf("Expected win rate ~0.667, got %f", rate)
	}
}

func TestStoreAllStats(t *testing.T) {
	store := openStore(t)

	store.SaveRound(RoundEntry{Category: "basic", Answer: "a", Won: true, LivesLeft: 3})
	store.SaveRound(RoundEntry{Category: "intermediate", Answer: "b c", Won: false, LivesLeft: 0})

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 categories, got %d", len(all))
	}
	if all["basic"].Won != 1 || all["intermediate"].Won != 0 {
		t.Errorf("Unexpected stats: basic=%+v intermediate=%+v", all["basic"], all["intermediate"])
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openStore(t)

	store.SaveRound(RoundEntry{Category: "basic", Answer: "a", Won: true})
	store.SaveRound(RoundEntry{Category: "basic", Answer: "b", Won: false})
	store.SaveRound(RoundEntry{Category: "intermediate", Answer: "c d", Won: true})

	if err := store.ClearRounds("basic"); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	basic, _ := store.RecentRounds("basic", 10)
	if len(basic) != 0 {
		t.Errorf("Expected 0 basic rounds after clear, got %d", len(basic))
	}

	phrases, _ := store.RecentRounds("intermediate", 10)
	if len(phrases) != 1 {
		t.Error("Intermediate rounds should not be affected by clearing basic")
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
