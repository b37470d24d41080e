// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play                 - Play in the terminal
//	t2048 serve                - Start SSH server for remote play
//	t2048 sim                  - Run headless games with an autoplay policy
//	t2048 replay <moves>       - Replay a move log from a seed and print the board
//	t2048 scores [variant]     - Show high scores
//	t2048 policies             - List autoplay policies
//
// Global flags:
//
//	--config <path>    - Config file (default: ~/.t2048/config.yaml)
//	--seed <value>     - Set RNG seed for reproducible games
//	--size <n>         - Grid dimension (2..8)
//	--scoring <rule>   - exponential, rank or none
//	--db <path>        - Set database path (default: ~/.t2048/scores.db)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagSize     int
	flagScoring  string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "t2048 - the 2048 puzzle in your terminal",
	Long: `t2048 is the sliding-tile merge puzzle 2048 for the terminal.
Slide the board in one of four directions; equal tiles merge and a new
tile appears after every move that changes the board.

Available commands:
  play      - Play locally
  serve     - Start SSH server for remote play
  sim       - Run headless games with an autoplay policy
  replay    - Replay a move log and print the final board
  scores    - View high scores
  policies  - List autoplay policies

Examples:
  t2048 play
  t2048 play --size 5 --scoring rank
  t2048 sim --policy greedy --games 500
  t2048 replay LLURDD --seed 42
  t2048 serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Grid dimension (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagScoring, "scoring", "", "Scoring rule: exponential, rank, none (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(policiesCmd)
}

// fatalf prints an error and exits with status 1.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config file and applies any global flags the user set.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil && flagConfig != "" {
		fatalf("%v", err)
	}
	if err != nil {
		// A broken user config falls back to the defaults.
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.Default()
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Grid.Size = flagSize
	}
	if flags.Changed("scoring") {
		cfg.Grid.Scoring = flagScoring
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}
	return cfg
}

// newLogger builds the command logger writing to w at the configured level.
func newLogger(cfg config.Config, w io.Writer) *log.Logger {
	level, err := cfg.LogLevel()
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
}

// gameConfig builds the session config from cfg and the --seed flag.
func gameConfig(cfg config.Config, player string) game.Config {
	gc, err := cfg.GameConfig(flagSeed, player)
	if err != nil {
		fatalf("%v", err)
	}
	return gc
}

// openStore opens the scores database. When required is false a failure is
// logged and nil is returned so the command can run without storage.
func openStore(cfg config.Config, logger *log.Logger, required bool) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err == nil {
		return store
	}
	if required {
		fatalf("opening scores database: %v", err)
	}
	logger.Warn("could not open scores database", "path", cfg.Storage.DBPath, "error", err)
	return nil
}

// currentUser returns the login name used as the player for local games.
func currentUser() string {
	for _, env := range []string{"USER", "USERNAME", "LOGNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "player"
}
