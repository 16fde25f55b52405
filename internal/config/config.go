// Package config provides YAML-based configuration loading and
// difficulty presets for the gallows game.
package config

import "fmt"

// Config contains all tunable settings for the game.
type Config struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Words    WordsConfig    `yaml:"words"`
}

// GameplayConfig defines the per-round rules.
type GameplayConfig struct {
	// Lives is the allowed-mistake budget per round.
	Lives int `yaml:"lives"`
	// GuessSeconds is the per-guess time limit. 0 disables the countdown.
	GuessSeconds int `yaml:"guess_seconds"`
}

// WordsConfig points at the word list files. Empty paths fall back to the
// embedded default lists.
type WordsConfig struct {
	BasicFile   string `yaml:"basic_file"`
	PhrasesFile string `yaml:"phrases_file"`
}

// Validate checks the config invariants.
func (c Config) Validate() error {
	if c.Gameplay.Lives <= 0 {
		return fmt.Errorf("config: lives must be positive, got %d", c.Gameplay.Lives)
	}
	if c.Gameplay.GuessSeconds < 0 {
		return fmt.Errorf("config: guess_seconds must not be negative, got %d", c.Gameplay.GuessSeconds)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyUntimed DifficultyPreset = "untimed"
)

// ParsePreset validates a preset name from the CLI.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyUntimed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard, or untimed)", s)
	}
}

// ApplyPreset adjusts gameplay settings for a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 8
		cfg.Gameplay.GuessSeconds = 30
	case DifficultyNormal:
		cfg.Gameplay.Lives = 6
		cfg.Gameplay.GuessSeconds = 15
	case DifficultyHard:
		cfg.Gameplay.Lives = 4
		cfg.Gameplay.GuessSeconds = 10
	case DifficultyUntimed:
		cfg.Gameplay.GuessSeconds = 0
	}
}
