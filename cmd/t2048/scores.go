package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/platform/tui"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top scores for a variant. A variant is the grid size and
scoring rule, e.g. "4x4/exponential"; without an argument the variant
from the config and --size/--scoring is shown.

Examples:
  t2048 scores
  t2048 scores 3x3/exponential --limit 20
  t2048 scores --interactive
  t2048 scores 5x5/rank --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all variants in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games of the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	gc := gameConfig(cfg, "")

	variant := game.Variant(gc.Size, gc.Rule)
	if len(args) == 1 {
		if _, _, err := game.ParseVariant(args[0]); err != nil {
			fatalf("%v", err)
		}
		variant = args[0]
	}

	store := openStore(cfg, newLogger(cfg, os.Stderr), true)
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, variant, width, height); err != nil {
			fatalf("%v", err)
		}
		return
	}

	if flagClear {
		if err := store.ClearScores(variant); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("Cleared scores for %s\n", variant)
		return
	}

	records, err := store.TopScores(variant, flagLimit)
	if err != nil {
		fatalf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", variant)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Tile", "Moves", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "----")

	for i, r := range records {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-12s  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, r.Player, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(variant)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Avg: %.0f  Best tile: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestTile)
	}
}
