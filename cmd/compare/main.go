// Command compare scores every cabinet author's combined tweets against the
// reference author with each configured similarity measure and renders the
// per-author aggregates.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/jdpolicano/go-corpustat/internal/app"
	"github.com/jdpolicano/go-corpustat/internal/config"
	"github.com/jdpolicano/go-corpustat/internal/logging"
	"github.com/jdpolicano/go-corpustat/internal/pipeline"
	"github.com/jdpolicano/go-corpustat/internal/present"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = logging.WithRunID(ctx, uuid.NewString())

	logger := logging.WithContext(logging.NewLogger(logging.LevelFromEnv()), ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	tweets, err := app.LoadDataset(ctx, cfg, cfg.Datasets.Tweets, false, logger)
	if err != nil {
		logger.Error("Error loading tweets dataset", "error", err)
		os.Exit(1)
	}

	runner := pipeline.NewRunner(logger)
	table, err := runner.CompareSimilarity(tweets, cfg.Reference, cfg.Metrics.Similarity)
	if err != nil {
		logger.Error("Comparison failed", "reference", cfg.Reference, "error", err)
		os.Exit(1)
	}

	fmt.Print(present.NewRenderer().Facets(table))
}
