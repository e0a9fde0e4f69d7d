// blobrun is a terminal platformer: run and jump across generated floors
// and stay away from the antiblobs.
//
// Usage:
//
//	blobrun list              - List available games
//	blobrun play <game>       - Play a game
//	blobrun menu              - Start menu to pick games interactively
//	blobrun serve             - Start SSH server for remote play
//	blobrun scores <game>     - Show best times and recent runs
//	blobrun level             - Print a generated level
//	blobrun inspect           - Serve levels and runs over HTTP
//	blobrun config            - Print the default config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible levels
//	--db <path>     - Set database path (default: ~/.blobrun/blobrun.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blobrun/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/blobrun/internal/games/blobrun"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blobrun",
	Short: "Blob Run - a platformer in your terminal",
	Long: `Blob Run is a terminal platformer. Every run builds a new level from
a library of floor patterns; run, jump, and keep away from the antiblobs
for as long as you can.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View best times and recent runs
  level    - Print the level a seed generates
  inspect  - HTTP API for levels and run history
  config   - Print the default config YAML

Examples:
  blobrun list
  blobrun play blobrun
  blobrun play blobrun_lifts --difficulty hard
  blobrun level --seed 42
  blobrun serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
}
