package autoplay

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/game"
)

// Run plays s with p until the board is terminal, maxMoves board-changing
// moves were made (0 means no cap), or ctx is cancelled.
func Run(ctx context.Context, s *game.Session, p Policy, maxMoves int) error {
	for !s.Finished() {
		if maxMoves > 0 && s.MoveCount() >= maxMoves {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		d, ok := p.Choose(s.Board())
		if !ok {
			return nil
		}
		if !s.Apply(d) {
			return fmt.Errorf("autoplay: policy %s chose %s but the board did not change", p.Name(), d)
		}
	}
	return nil
}

// SimConfig describes a batch of headless games.
type SimConfig struct {
	Game     game.Config
	Policy   string
	Games    int
	MaxMoves int
}

// Summary aggregates the results of a simulation batch.
type Summary struct {
	Games     int
	Finished  int // Games that reached the terminal state
	BestScore int
	AvgScore  float64
	BestTile  int
	Elapsed   time.Duration
}

// Simulate plays cfg.Games sessions in sequence. Game i uses seed base+i,
// where base is cfg.Game.Seed (or the clock when it is zero), so a batch is
// reproducible from its base seed. onResult, if non-nil, is called after
// every game.
func Simulate(ctx context.Context, cfg SimConfig, logger *log.Logger, onResult func(game.Result) error) (Summary, error) {
	if cfg.Games <= 0 {
		return Summary{}, fmt.Errorf("autoplay: games must be positive, got %d", cfg.Games)
	}
	if !Exists(cfg.Policy) {
		return Summary{}, fmt.Errorf("autoplay: unknown policy %q", cfg.Policy)
	}

	base := cfg.Game.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	start := time.Now()
	var summary Summary
	total := 0

	for i := 0; i < cfg.Games; i++ {
		gameCfg := cfg.Game
		gameCfg.Seed = base + int64(i)
		if gameCfg.Player == "" {
			gameCfg.Player = "bot:" + cfg.Policy
		}

		s, err := game.NewSession(gameCfg)
		if err != nil {
			return summary, err
		}
		policy, err := Create(cfg.Policy, gameCfg.Seed)
		if err != nil {
			return summary, err
		}

		if err := Run(ctx, s, policy, cfg.MaxMoves); err != nil {
			return summary, err
		}

		result := s.Result()
		logger.Debug("game finished",
			"game", i+1,
			"seed", result.Seed,
			"score", result.Score,
			"max_tile", result.MaxTile,
			"moves", result.Moves,
			"terminal", result.Terminal,
		)

		summary.Games++
		total += result.Score
		if result.Terminal {
			summary.Finished++
		}
		summary.BestScore = max(summary.BestScore, result.Score)
		summary.BestTile = max(summary.BestTile, result.MaxTile)

		if onResult != nil {
			if err := onResult(result); err != nil {
				return summary, err
			}
		}
	}

	summary.AvgScore = float64(total) / float64(summary.Games)
	summary.Elapsed = time.Since(start)
	return summary, nil
}
