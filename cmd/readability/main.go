// Command readability scores every speech with each configured readability
// formula and renders the per-author aggregates. Documents are tagged with
// their detected language and only English speeches are scored, since the
// formulas' constants are calibrated for English surface statistics.
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

	speeches, err := app.LoadDataset(ctx, cfg, cfg.Datasets.Speeches, true, logger)
	if err != nil {
		logger.Error("Error loading speeches dataset", "error", err)
		os.Exit(1)
	}

	runner := pipeline.NewRunner(logger)
	table, err := runner.CompareReadability(speeches, cfg.Metrics.Readability, "EN")
	if err != nil {
		logger.Error("Readability comparison failed", "error", err)
		os.Exit(1)
	}

	fmt.Print(present.NewRenderer().Facets(table))
}
