package config

import (
	_ "embed"
)

//go:embed defaults/gallows.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Gameplay: GameplayConfig{
			Lives:        6,
			GuessSeconds: 15,
		},
	}
}
