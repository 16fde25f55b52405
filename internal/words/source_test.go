package words

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/mishankov/gallows/internal/engine"
)

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	src, err := Load("", "", newRNG(1))
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	if src.Count(engine.CategoryBasic) == 0 {
		t.Error("Embedded basic list should not be empty")
	}
	if src.Count(engine.CategoryIntermediate) == 0 {
		t.Error("Embedded phrases list should not be empty")
	}

	w, err := src.Pick(engine.CategoryBasic)
	if err != nil {
		t.Fatalf("Pick(basic) failed: %v", err)
	}
	if len(w) == 0 {
		t.Error("Picked word should not be empty")
	}
}

func TestLoadFromFiles(t *testing.T) {
	tmpDir := t.TempDir()
	basicPath := filepath.Join(tmpDir, "basic.txt")
	phrasesPath := filepath.Join(tmpDir, "phrases.txt")

	// Mixed valid and invalid lines: blanks, comments, multi-word entries
	// in the basic list, and a phrase with no letters.
	basic := "Apple\n\n# comment\nnot a word\nbanana\n123\n"
	phrases := "to be\n\n# comment\n...\nhello world\n"

	if err := os.WriteFile(basicPath, []byte(basic), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(phrasesPath, []byte(phrases), 0o600); err != nil {
		t.Fatal(err)
	}

	src, err := Load(basicPath, phrasesPath, newRNG(1))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if got := src.Count(engine.CategoryBasic); got != 2 {
		t.Errorf("Expected 2 basic entries after filtering, got %d", got)
	}
	if got := src.Count(engine.CategoryIntermediate); got != 2 {
		t.Errorf("Expected 2 phrase entries after filtering, got %d", got)
	}

	// Basic entries are lowercased on load.
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		w, err := src.Pick(engine.CategoryBasic)
		if err != nil {
			t.Fatalf("Pick failed: %v", err)
		}
		seen[w] = true
	}
	if !seen["apple"] || !seen["banana"] {
		t.Errorf("Expected lowercased apple and banana, saw %v", seen)
	}
	if len(seen) != 2 {
		t.Errorf("Pick should only return filtered entries, saw %v", seen)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt"), "", newRNG(1)); err == nil {
		t.Error("Load should fail for an unreadable explicit path")
	}
}

func TestLoadEmptyList(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "empty.txt")
	if err := os.WriteFile(path, []byte("# only a comment\n\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path, "", newRNG(1)); err == nil {
		t.Error("Load should fail when a list has no usable entries")
	}
}

func TestPickIsDeterministicForSeed(t *testing.T) {
	s1, err := Load("", "", newRNG(42))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	s2, err := Load("", "", newRNG(42))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	for i := 0; i < 20; i++ {
		w1, _ := s1.Pick(engine.CategoryBasic)
		w2, _ := s2.Pick(engine.CategoryBasic)
		if w1 != w2 {
			t.Fatalf("Picks diverged at %d: %q vs %q", i, w1, w2)
		}
	}
}

func TestCategories(t *testing.T) {
	src, err := Load("", "", newRNG(1))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	infos := src.Categories()
	if len(infos) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(infos))
	}
	if infos[0].Category != engine.CategoryBasic || infos[1].Category != engine.CategoryIntermediate {
		t.Errorf("Unexpected category order: %v", infos)
	}
	for _, info := range infos {
		if info.Count == 0 {
			t.Errorf("Category %s should have entries", info.Title)
		}
	}
}
