package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/platform/tui"
)

var (
	flagPlayer  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game in the terminal.

Controls:
  Arrows / hjkl / wasd  - Slide the board
  R                     - Restart
  ?                     - Toggle help
  Q/Ctrl+C              - Quit

The result is recorded once the board has no moves left.

Examples:
  t2048 play
  t2048 play --size 3
  t2048 play --seed 42 --scoring rank
  t2048 play --log-file /tmp/t2048.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name stored with results (default: $USER)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fatalf("opening log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(cfg, logOut)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	player := flagPlayer
	if player == "" {
		player = currentUser()
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Game:    gameConfig(cfg, player),
	}

	store := openStore(cfg, logger, false)
	if store == nil {
		fmt.Fprintln(os.Stderr, "Warning: could not open scores database, results will not be saved")
	} else {
		defer store.Close()
	}

	if err := tui.Run(rc, store, logger); err != nil {
		fatalf("%v", err)
	}
}
