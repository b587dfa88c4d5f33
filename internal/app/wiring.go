package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/deeplisten-backend/internal/adapter/notify"
	"github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres"
	"github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres/job"
	"github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres/material"
	"github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres/occurrence"
	"github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres/review"
	"github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres/status"
	"github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/deeplisten-backend/internal/adapter/provider/nolookup"
	"github.com/heartmarshall/deeplisten-backend/internal/adapter/provider/stardict"
	"github.com/heartmarshall/deeplisten-backend/internal/adapter/redis"
	"github.com/heartmarshall/deeplisten-backend/internal/config"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
	"github.com/heartmarshall/deeplisten-backend/internal/service/content"
	"github.com/heartmarshall/deeplisten-backend/internal/service/extraction"
	"github.com/heartmarshall/deeplisten-backend/internal/service/queue"
	"github.com/heartmarshall/deeplisten-backend/internal/service/study"
	"github.com/heartmarshall/deeplisten-backend/internal/service/study/fsrs"
)

type lookuper interface {
	Lookup(ctx context.Context, words []string) (map[string]domain.WordEnrichment, error)
}

type notifier interface {
	ExtractionCompleted(ctx context.Context, s domain.ExtractionSummary) error
}

// Services holds everything built from the configuration.
type Services struct {
	Queue      *queue.Service
	Extraction *extraction.Service
	Content    *content.Service
	Study      *study.Service
	Activity   *activity.Repo

	// Redis is nil when no address is configured.
	Redis *goredis.Client
}

// Build creates repositories, adapters, and services on top of pool and
// registers the queue's job handlers. The returned cleanup closes the
// dictionary and Redis handles; it does not close pool.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*Services, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	txm := postgres.NewTxManager(pool)
	words := word.New(pool)
	statuses := status.New(pool, cfg.Extraction.WriteBatchSize)
	occurrences := occurrence.New(pool, cfg.Extraction.WriteBatchSize)
	materials := material.New(pool)
	reviews := review.New(pool)
	activities := activity.New(pool)
	jobs := job.New(pool)

	var lookup lookuper = nolookup.NewStub()
	if cfg.Dictionary.StarDictPath != "" {
		dict, err := stardict.Open(ctx, cfg.Dictionary.StarDictPath, logger)
		if err != nil {
			return nil, func() {}, err
		}
		closers = append(closers, func() { _ = dict.Close() })
		lookup = dict
	} else {
		logger.Warn("no stardict database configured, words will not be enriched")
	}

	var (
		publisher notifier = notify.NewLogNotifier(logger)
		rdb       *goredis.Client
	)
	if cfg.Redis.Enabled() {
		var err error
		rdb, err = redis.NewClient(ctx, cfg.Redis, logger)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		closers = append(closers, func() { _ = rdb.Close() })
		lookup = redis.NewLookupCache(lookup, rdb, cfg.Redis.CacheTTL, logger)
		publisher = redis.NewPublisher(rdb, cfg.Redis.NotifyChannel)
	}

	queueSvc := queue.NewService(logger, jobs, queue.Config{
		PollInterval: cfg.Queue.PollInterval,
		JobTimeout:   cfg.Queue.JobTimeout,
	})

	extractionSvc := extraction.NewService(
		logger,
		materials,
		extraction.NewResolver(logger, words, statuses, lookup, cfg.Extraction.LookupBatchSize),
		extraction.NewIndexer(occurrences, words, materials, txm),
		extraction.NewOrphanCollector(logger, words),
		queueSvc,
		activities,
		publisher,
	)
	queueSvc.Handle(domain.JobKindExtractMaterial, extractionSvc.HandleExtractJob)
	queueSvc.Handle(domain.JobKindSweepOrphans, extractionSvc.HandleSweepJob)

	studySvc, err := study.NewService(logger, statuses, reviews, activities, txm, FSRSParameters(cfg.SRS), StudyConfig(cfg.SRS))
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("study service: %w", err)
	}

	return &Services{
		Queue:      queueSvc,
		Extraction: extractionSvc,
		Content:    content.NewService(logger, materials, occurrences, queueSvc, txm),
		Study:      studySvc,
		Activity:   activities,
		Redis:      rdb,
	}, cleanup, nil
}

// FSRSParameters converts validated SRS settings into scheduler parameters.
func FSRSParameters(cfg config.SRSConfig) fsrs.Parameters {
	p := fsrs.DefaultParameters()
	p.DesiredRetention = cfg.DesiredRetention
	p.MaxIntervalDays = cfg.MaxIntervalDays
	p.EnableFuzz = cfg.EnableFuzz
	p.LearningSteps = cfg.LearningSteps
	p.RelearningSteps = cfg.RelearningSteps
	if len(cfg.Weights) == len(p.W) {
		copy(p.W[:], cfg.Weights)
	}
	return p
}

// StudyConfig extracts the review grading thresholds from SRS settings.
func StudyConfig(cfg config.SRSConfig) study.Config {
	return study.Config{
		MasteredStability: cfg.MasteredStabilityDays,
		FastResponseMs:    cfg.FastResponseMs,
		SlowResponseMs:    cfg.SlowResponseMs,
	}
}
