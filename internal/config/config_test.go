package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/t2048/internal/grid"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
grid:
  size: 5
  scoring: rank
ssh:
  idle_timeout: 5m
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Grid.Size)
	assert.Equal(t, 5*time.Minute, cfg.SSH.IdleTimeout)
	// Untouched keys keep their defaults
	assert.Equal(t, "greedy", cfg.Sim.Policy)
	assert.Equal(t, ":23234", cfg.SSH.Address)

	rule, err := cfg.ScoreRule()
	require.NoError(t, err)
	assert.Equal(t, grid.ScoreRank, rule)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  size: 12\n"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "grid.size")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"size too small", func(c *Config) { c.Grid.Size = 1 }, "grid.size"},
		{"unknown scoring", func(c *Config) { c.Grid.Scoring = "fibonacci" }, "grid.scoring"},
		{"empty db", func(c *Config) { c.Storage.DBPath = "" }, "storage.db"},
		{"unknown policy", func(c *Config) { c.Sim.Policy = "oracle" }, "sim.policy"},
		{"zero games", func(c *Config) { c.Sim.Games = 0 }, "sim.games"},
		{"negative max moves", func(c *Config) { c.Sim.MaxMoves = -1 }, "sim.max_moves"},
		{"empty address", func(c *Config) { c.SSH.Address = "" }, "ssh.address"},
		{"zero idle timeout", func(c *Config) { c.SSH.IdleTimeout = 0 }, "ssh.idle_timeout"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Grid.Size = 0
	cfg.Sim.Games = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "grid.size")
	assert.ErrorContains(t, err, "sim.games")
}

func TestGameConfig(t *testing.T) {
	cfg := Default()
	cfg.Grid.Size = 3
	cfg.Grid.Scoring = "none"

	gc, err := cfg.GameConfig(42, "carol")
	require.NoError(t, err)
	assert.Equal(t, 3, gc.Size)
	assert.Equal(t, int64(42), gc.Seed)
	assert.Equal(t, grid.ScoreNone, gc.Rule)
	assert.Equal(t, "carol", gc.Player)
}

func TestLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)
}
