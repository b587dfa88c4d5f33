// Command sweep soft-deletes every word that no live sentence references any
// more. Words touched within the grace period are skipped so an extraction
// that is still running cannot lose a word it just created. It is intended
// to be invoked by an external cron job as a backstop for the per-edit sweeps
// the server queues itself.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres"
	"github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/deeplisten-backend/internal/app"
	"github.com/heartmarshall/deeplisten-backend/internal/config"
	"github.com/heartmarshall/deeplisten-backend/internal/service/extraction"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	grace := flag.Duration("grace", cfg.Queue.SweepGracePeriod, "skip words updated more recently than this")
	flag.Parse()

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	collector := extraction.NewOrphanCollector(logger, word.New(pool))

	deleted, err := collector.Sweep(ctx, *grace)
	if err != nil {
		logger.Error("orphan sweep failed",
			slog.String("error", err.Error()),
			slog.Duration("grace", *grace),
		)
		os.Exit(1)
	}

	logger.Info("orphan sweep completed",
		slog.Int("deleted", deleted),
		slog.Duration("grace", *grace),
	)
}
