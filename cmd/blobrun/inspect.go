package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blobrun/internal/games/blobrun"
	"github.com/vovakirdan/blobrun/internal/inspect"
	"github.com/vovakirdan/blobrun/internal/storage"
)

var flagHTTPAddr string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Serve levels and run history over HTTP",
	Long: `Start a JSON API for looking at generated levels and recorded runs.

Routes:
  GET /api/health
  GET /api/games
  GET /api/patterns
  GET /api/levels/{seed}
  GET /api/levels/{seed}/ascii
  GET /api/scores/{game}?limit=N
  GET /api/runs/{game}?limit=N
  GET /api/runs/{game}/best

Examples:
  blobrun inspect
  blobrun inspect --http 127.0.0.1:9000
  curl localhost:8080/api/levels/42/ascii`,
	Run: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP listen address")
	inspectCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runInspect(_ *cobra.Command, _ []string) {
	logger := stderrLogger("blobrun-inspect")
	blobrun.SetConfigPath(flagConfig)
	blobrun.SetLogger(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := inspect.NewHandler(blobrun.LoadConfig(), store, logger)
	if err := h.Serve(ctx, flagHTTPAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
