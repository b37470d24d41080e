package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/t2048/internal/grid"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Size:    grid.DefaultSize,
			Scoring: grid.ScoreExponential.String(),
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/scores.db",
		},
		Sim: SimConfig{
			Policy:   "greedy",
			Games:    100,
			MaxMoves: 0,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
