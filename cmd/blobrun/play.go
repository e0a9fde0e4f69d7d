package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blobrun/internal/config"
	"github.com/vovakirdan/blobrun/internal/core"
	"github.com/vovakirdan/blobrun/internal/games/blobrun"
	"github.com/vovakirdan/blobrun/internal/platform/tui"
	"github.com/vovakirdan/blobrun/internal/registry"
	"github.com/vovakirdan/blobrun/internal/storage"
)

var (
	flagConfig      string
	flagDifficulty  string
	flagAutoRestart bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D, H/L  - Run
  Up, W, K, Space       - Jump
  P/Esc                 - Pause
  R                     - Restart with a new level
  B/Esc (paused)        - Leave
  Ctrl+S                - Save a screenshot
  Q/Ctrl+C              - Quit

Terminals do not report key releases, so a direction stays held for a
moment after its last key repeat.

Difficulty options:
  easy   - Slower antiblobs and lifts, progresses to max
  normal - Starts at 30% difficulty, progresses to max
  hard   - Faster antiblobs, more of them, starts at 70%
  fixed  - No progression, stays at config's initial level

Examples:
  blobrun play blobrun
  blobrun play blobrun_lifts --difficulty hard
  blobrun play blobrun --seed 42 --auto-restart
  blobrun play blobrun --config ./my-blobrun.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().StringVar(&flagLogFile, "log", "", "Write debug logs to this file")
	}
	playCmd.Flags().BoolVar(&flagAutoRestart, "auto-restart", false, "Start a new run as soon as you are caught")
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags validates --difficulty and hands --config to the game
// package before any game is created.
func applyGameFlags() error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	blobrun.SetConfigPath(flagConfig)
	blobrun.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openStore opens the score database, or returns nil with a warning so the
// game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blobrun list' to see available games.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := tui.Run(game, store, terminalConfig(), tui.Options{
		Difficulty:  flagDifficulty,
		AutoRestart: flagAutoRestart,
		KeepSeed:    flagSeed != 0,
		Logger:      logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
