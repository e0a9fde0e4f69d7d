package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blobrun/internal/platform/tui"
	"github.com/vovakirdan/blobrun/internal/registry"
	"github.com/vovakirdan/blobrun/internal/storage"
)

var flagRuns int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show best times and recent runs for a game",
	Long: `Display the top 10 survival times for the specified game, followed by
its most recent runs and the seed behind the best one.

Examples:
  blobrun scores blobrun
  blobrun scores blobrun_lifts --runs 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "How many recent runs to list")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blobrun list' to see available games.")
		os.Exit(1)
	}
	title := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("Best Times - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blobrun play %s' to set the first time!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, tui.FormatTime(entry.Score), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if seed, score, ok, err := store.BestSeed(gameID); err == nil && ok {
		fmt.Println()
		fmt.Printf("Best run: %s on seed %d (replay with --seed %d)\n", tui.FormatTime(score), seed, seed)
	}
	if sum, err := store.Summary(gameID); err == nil && sum.Runs > 0 {
		fmt.Printf("%d runs, %d caught, average %s\n",
			sum.Runs, sum.Caught, tui.FormatTime(int(sum.MeanTicks()*10)/max(flagFPS, 1)))
	}

	if flagRuns <= 0 {
		return
	}
	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-10s  %-20s  %-7s  %-8s  %s\n", "Time", "Seed", "End", "Level", "Date")
	fmt.Printf("  %-10s  %-20s  %-7s  %-8s  %s\n", "----", "----", "---", "-----", "----")
	for _, r := range runs {
		difficulty := r.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Printf("  %-10s  %-20d  %-7s  %-8s  %s\n",
			tui.FormatTime(r.Score), r.Seed, r.EndReason, difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
