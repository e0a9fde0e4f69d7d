package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blobrun/internal/platform/tui"
	"github.com/vovakirdan/blobrun/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to pick a difficulty and
Enter to play. Leaving a game returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Difficulty
  Enter/Space     - Select game
  Tab             - Scoreboard
  Q               - Quit

Examples:
  blobrun menu
  blobrun menu --fps 30
  blobrun menu --db ./blobrun.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// A fixed --seed replays its level; otherwise every game gets a new one.
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		difficulty := menuResult.Difficulty
		if difficulty == "" {
			difficulty = flagDifficulty
		}

		if err := tui.Run(game, store, runCfg, tui.Options{
			Difficulty: difficulty,
			KeepSeed:   flagSeed != 0,
			Logger:     logger,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
