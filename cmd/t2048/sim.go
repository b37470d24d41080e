package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/autoplay"
	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/storage"
)

var (
	flagPolicy   string
	flagGames    int
	flagMaxMoves int
	flagNoSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless games with an autoplay policy",
	Long: `Play a batch of games without a terminal UI and print a summary.

Game i of the batch uses seed base+i, where base is --seed (or the clock),
so a batch can be reproduced exactly. Results are recorded under the
player name "bot:<policy>" unless --no-save is given.

Examples:
  t2048 sim
  t2048 sim --policy corner --games 1000
  t2048 sim --seed 7 --games 10 --log-level debug
  t2048 sim --size 3 --max-moves 200 --no-save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagPolicy, "policy", "", "Autoplay policy (overrides config, see 't2048 policies')")
	simCmd.Flags().IntVar(&flagGames, "games", 0, "Number of games (overrides config)")
	simCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 0, "Stop each game after this many moves, 0 = until game over (overrides config)")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results")
}

func runSim(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	if cmd.Flags().Changed("policy") {
		cfg.Sim.Policy = flagPolicy
	}
	if cmd.Flags().Changed("games") {
		cfg.Sim.Games = flagGames
	}
	if cmd.Flags().Changed("max-moves") {
		cfg.Sim.MaxMoves = flagMaxMoves
	}
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	logger := newLogger(cfg, os.Stderr)

	var onResult func(game.Result) error
	if !flagNoSave {
		store := openStore(cfg, logger, true)
		defer store.Close()
		onResult = func(r game.Result) error {
			_, err := store.SaveGame(storage.RecordFromResult(r))
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	simCfg := autoplay.SimConfig{
		Game:     gameConfig(cfg, ""),
		Policy:   cfg.Sim.Policy,
		Games:    cfg.Sim.Games,
		MaxMoves: cfg.Sim.MaxMoves,
	}

	logger.Info("simulation started",
		"policy", simCfg.Policy,
		"games", simCfg.Games,
		"variant", game.Variant(simCfg.Game.Size, simCfg.Game.Rule),
	)

	summary, err := autoplay.Simulate(ctx, simCfg, logger, onResult)
	if errors.Is(err, context.Canceled) {
		logger.Warn("simulation interrupted", "completed", summary.Games)
	} else if err != nil {
		fatalf("%v", err)
	}

	printSummary(simCfg, summary)
}

func printSummary(cfg autoplay.SimConfig, s autoplay.Summary) {
	fmt.Printf("Simulation - %s, policy %s\n", game.Variant(cfg.Game.Size, cfg.Game.Rule), cfg.Policy)
	fmt.Println()
	fmt.Printf("  %-12s  %d\n", "Games", s.Games)
	fmt.Printf("  %-12s  %d\n", "Game over", s.Finished)
	fmt.Printf("  %-12s  %d\n", "Best score", s.BestScore)
	fmt.Printf("  %-12s  %.1f\n", "Avg score", s.AvgScore)
	fmt.Printf("  %-12s  %d\n", "Best tile", s.BestTile)
	fmt.Printf("  %-12s  %s\n", "Elapsed", s.Elapsed.Round(time.Millisecond))
}
