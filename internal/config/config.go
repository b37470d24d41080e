// Package config provides YAML-based configuration loading for t2048.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/autoplay"
	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/grid"
)

// Config is the complete t2048 configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Storage StorageConfig `yaml:"storage"`
	Sim     SimConfig     `yaml:"sim"`
	SSH     SSHConfig     `yaml:"ssh"`
	Log     LogConfig     `yaml:"log"`
}

// GridConfig defines the board parameters.
type GridConfig struct {
	Size    int    `yaml:"size"`
	Scoring string `yaml:"scoring"` // "exponential", "rank" or "none"
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db"`
}

// SimConfig defines headless simulation defaults.
type SimConfig struct {
	Policy   string `yaml:"policy"`
	Games    int    `yaml:"games"`
	MaxMoves int    `yaml:"max_moves"`
}

// SSHConfig defines the SSH server parameters.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ScoreRule returns the parsed scoring rule.
func (c Config) ScoreRule() (grid.ScoreRule, error) {
	return grid.ParseScoreRule(c.Grid.Scoring)
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// GameConfig builds a session config for the given seed and player.
func (c Config) GameConfig(seed int64, player string) (game.Config, error) {
	rule, err := c.ScoreRule()
	if err != nil {
		return game.Config{}, err
	}
	return game.Config{
		Size:   c.Grid.Size,
		Seed:   seed,
		Rule:   rule,
		Player: player,
	}, nil
}

// Validate checks every section and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if c.Grid.Size < grid.MinSize || c.Grid.Size > grid.MaxSize {
		errs = append(errs, fmt.Errorf("grid.size must be %d..%d, got %d", grid.MinSize, grid.MaxSize, c.Grid.Size))
	}
	if _, err := c.ScoreRule(); err != nil {
		errs = append(errs, fmt.Errorf("grid.scoring: %w", err))
	}
	if c.Storage.DBPath == "" {
		errs = append(errs, errors.New("storage.db must not be empty"))
	}
	if !autoplay.Exists(c.Sim.Policy) {
		errs = append(errs, fmt.Errorf("sim.policy: unknown policy %q", c.Sim.Policy))
	}
	if c.Sim.Games <= 0 {
		errs = append(errs, fmt.Errorf("sim.games must be positive, got %d", c.Sim.Games))
	}
	if c.Sim.MaxMoves < 0 {
		errs = append(errs, fmt.Errorf("sim.max_moves must not be negative, got %d", c.Sim.MaxMoves))
	}
	if c.SSH.Address == "" {
		errs = append(errs, errors.New("ssh.address must not be empty"))
	}
	if c.SSH.IdleTimeout <= 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout must be positive, got %s", c.SSH.IdleTimeout))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
