// Package queue runs the durable background job queue.
//
// Jobs are persisted before the worker is signalled, so nothing is lost when
// the process stops; a job left in processing by a crash goes back to pending
// when the worker starts again. A single worker runs one job at a time, in
// creation order.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

type jobRepo interface {
	Enqueue(ctx context.Context, kind domain.JobKind, payload any) (*domain.Job, error)
	ClaimNext(ctx context.Context) (*domain.Job, error)
	MarkDone(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
	Release(ctx context.Context, id uuid.UUID) error
	ResetProcessing(ctx context.Context) (int, error)
	RetryFailed(ctx context.Context) (int, error)
	Stats(ctx context.Context) (domain.JobStats, error)
	List(ctx context.Context, status domain.JobStatus, limit, offset int) ([]domain.Job, error)
}

// Handler runs one job of a given kind.
type Handler func(ctx context.Context, job domain.Job) error

// Config tunes the worker loop.
type Config struct {
	// PollInterval is how often the worker looks for jobs without a signal.
	PollInterval time.Duration
	// JobTimeout bounds a single handler run.
	JobTimeout time.Duration
}

// Service enqueues jobs and runs the worker that executes them.
type Service struct {
	log      *slog.Logger
	jobs     jobRepo
	handlers map[domain.JobKind]Handler
	wake     chan struct{}
	cfg      Config
}

// NewService creates a new queue service.
func NewService(log *slog.Logger, jobs jobRepo, cfg Config) *Service {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 10 * time.Minute
	}
	return &Service{
		log:      log.With("service", "queue"),
		jobs:     jobs,
		handlers: make(map[domain.JobKind]Handler),
		wake:     make(chan struct{}, 1),
		cfg:      cfg,
	}
}

// Handle registers h for jobs of kind. Call before Run.
func (s *Service) Handle(kind domain.JobKind, h Handler) {
	s.handlers[kind] = h
}

// Enqueue persists a job and wakes the worker. It does not wait for the job.
func (s *Service) Enqueue(ctx context.Context, kind domain.JobKind, payload any) (*domain.Job, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "unknown job kind")
	}

	job, err := s.jobs.Enqueue(ctx, kind, payload)
	if err != nil {
		return nil, err
	}
	s.signal()

	s.log.DebugContext(ctx, "job enqueued",
		slog.String("job_id", job.ID.String()),
		slog.String("kind", string(kind)),
	)
	return job, nil
}

func (s *Service) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run resets jobs interrupted by a previous crash, then executes jobs until
// ctx is cancelled. It returns nil on cancellation.
func (s *Service) Run(ctx context.Context) error {
	n, err := s.jobs.ResetProcessing(ctx)
	if err != nil {
		return fmt.Errorf("reset processing jobs: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "reset interrupted jobs", slog.Int("count", n))
	}

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	s.log.InfoContext(ctx, "worker started", slog.Duration("poll_interval", s.cfg.PollInterval))
	for {
		s.drain(ctx)

		select {
		case <-ctx.Done():
			s.log.InfoContext(ctx, "worker stopped")
			return nil
		case <-s.wake:
		case <-ticker.C:
		}
	}
}

// drain runs jobs until the queue is empty or ctx is cancelled.
func (s *Service) drain(ctx context.Context) {
	for ctx.Err() == nil {
		ran, err := s.RunNext(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				s.log.ErrorContext(ctx, "claim job", slog.String("error", err.Error()))
			}
			return
		}
		if !ran {
			return
		}
	}
}

// RunNext claims and runs the oldest pending job. It reports whether a job was
// found. A failing handler marks the job failed and is not returned as an error.
// A job cut short because ctx was cancelled goes back to pending instead.
func (s *Service) RunNext(ctx context.Context) (bool, error) {
	job, err := s.jobs.ClaimNext(ctx)
	if err != nil {
		return false, err
	}
	if job == nil {
		return false, nil
	}

	start := time.Now()
	log := s.log.With(
		slog.String("job_id", job.ID.String()),
		slog.String("kind", string(job.Kind)),
		slog.Int("attempt", job.Attempts),
	)

	if runErr := s.execute(ctx, *job); runErr != nil {
		if ctx.Err() != nil {
			log.InfoContext(ctx, "job interrupted by shutdown, releasing",
				slog.String("error", runErr.Error()),
			)
			if err := s.jobs.Release(context.WithoutCancel(ctx), job.ID); err != nil {
				log.ErrorContext(ctx, "release job", slog.String("error", err.Error()))
			}
			return true, nil
		}
		log.WarnContext(ctx, "job failed",
			slog.String("error", runErr.Error()),
			slog.Duration("duration", time.Since(start)),
		)
		if err := s.jobs.MarkFailed(context.WithoutCancel(ctx), job.ID, runErr.Error()); err != nil {
			log.ErrorContext(ctx, "mark job failed", slog.String("error", err.Error()))
		}
		return true, nil
	}

	if err := s.jobs.MarkDone(context.WithoutCancel(ctx), job.ID); err != nil {
		log.ErrorContext(ctx, "mark job done", slog.String("error", err.Error()))
		return true, nil
	}
	log.InfoContext(ctx, "job done", slog.Duration("duration", time.Since(start)))
	return true, nil
}

func (s *Service) execute(ctx context.Context, job domain.Job) (err error) {
	h, ok := s.handlers[job.Kind]
	if !ok {
		return fmt.Errorf("no handler for job kind %q", job.Kind)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.JobTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	return h(ctx, job)
}

// Stats returns job counts by status.
func (s *Service) Stats(ctx context.Context) (domain.JobStats, error) {
	return s.jobs.Stats(ctx)
}

// List returns jobs filtered by status (all when empty), newest first.
func (s *Service) List(ctx context.Context, status domain.JobStatus, limit, offset int) ([]domain.Job, error) {
	if status != "" && !status.IsValid() {
		return nil, domain.NewValidationError("status", "must be pending, processing, done, or failed")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.jobs.List(ctx, status, limit, offset)
}

// RetryFailed puts every failed job back to pending and wakes the worker.
func (s *Service) RetryFailed(ctx context.Context) (int, error) {
	n, err := s.jobs.RetryFailed(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.signal()
	}
	s.log.InfoContext(ctx, "retried failed jobs", slog.Int("count", n))
	return n, nil
}
