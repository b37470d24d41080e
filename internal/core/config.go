package core

import (
	"github.com/vovakirdan/t2048/internal/game"
)

// RuntimeConfig contains configuration passed to a shell session at start.
type RuntimeConfig struct {
	ScreenW int         // Screen width in characters
	ScreenH int         // Screen height in characters
	Game    game.Config // Grid size, seed (0 = clock), score rule, player
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Game:    game.DefaultConfig(),
	}
}
