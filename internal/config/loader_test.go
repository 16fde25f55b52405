package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yaml := "gameplay:\n  lives: 3\n  guess_seconds: 20\nwords:\n  basic_file: /tmp/words.txt\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("Expected 3 lives, got %d", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.GuessSeconds != 20 {
		t.Errorf("Expected 20 guess seconds, got %d", cfg.Gameplay.GuessSeconds)
	}
	if cfg.Words.BasicFile != "/tmp/words.txt" {
		t.Errorf("Expected basic file path, got %q", cfg.Words.BasicFile)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for an unreadable custom path")
	}
}

func TestLoadRejectsInvalidCustomConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")

	if err := os.WriteFile(path, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject a config with zero lives")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
	if cfg.Gameplay.Lives != 6 {
		t.Errorf("Expected 6 default lives, got %d", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.GuessSeconds != 15 {
		t.Errorf("Expected 15 default guess seconds, got %d", cfg.Gameplay.GuessSeconds)
	}
}

func TestApplyPreset(t *testing.T) {
	cases := []struct {
		preset  DifficultyPreset
		lives   int
		seconds int
	}{
		{DifficultyEasy, 8, 30},
		{DifficultyNormal, 6, 15},
		{DifficultyHard, 4, 10},
		{DifficultyUntimed, 6, 0},
	}

	for _, tc := range cases {
		cfg := Default()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Gameplay.Lives != tc.lives {
			t.Errorf("%s: expected %d lives, got %d", tc.preset, tc.lives, cfg.Gameplay.Lives)
		}
		if cfg.Gameplay.GuessSeconds != tc.seconds {
			t.Errorf("%s: expected %d seconds, got %d", tc.preset, tc.seconds, cfg.Gameplay.GuessSeconds)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if _, err := ParsePreset("easy"); err != nil {
		t.Errorf("ParsePreset(easy) failed: %v", err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}
