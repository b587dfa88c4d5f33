// Package job implements the durable background job queue using PostgreSQL.
package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// Repo provides job queue persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new job queue repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const jobColumns = `id, kind, payload, status, attempts, error_message, created_at, started_at, finished_at`

const enqueueSQL = `
INSERT INTO jobs (kind, payload) VALUES ($1, $2)
RETURNING ` + jobColumns

// claimNextSQL takes the oldest pending job. SKIP LOCKED keeps a second
// claimer from blocking on a row that is already being taken.
const claimNextSQL = `
UPDATE jobs SET status = 'processing', attempts = attempts + 1, started_at = now(), error_message = NULL
WHERE id = (
    SELECT id FROM jobs
    WHERE status = 'pending'
    ORDER BY created_at, id
    LIMIT 1
    FOR UPDATE SKIP LOCKED
)
RETURNING ` + jobColumns

const markDoneSQL = `
UPDATE jobs SET status = 'done', finished_at = now() WHERE id = $1`

const markFailedSQL = `
UPDATE jobs SET status = 'failed', finished_at = now(), error_message = $2 WHERE id = $1`

const releaseSQL = `
UPDATE jobs SET status = 'pending', started_at = NULL WHERE id = $1 AND status = 'processing'`

const resetProcessingSQL = `
UPDATE jobs SET status = 'pending', started_at = NULL WHERE status = 'processing'`

const retryFailedSQL = `
UPDATE jobs SET status = 'pending', started_at = NULL, finished_at = NULL WHERE status = 'failed'`

const statsSQL = `
SELECT
    count(*) FILTER (WHERE status = 'pending')    AS pending,
    count(*) FILTER (WHERE status = 'processing') AS processing,
    count(*) FILTER (WHERE status = 'done')       AS done,
    count(*) FILTER (WHERE status = 'failed')     AS failed,
    count(*)                                      AS total
FROM jobs`

// Enqueue persists a pending job with the JSON-encoded payload.
func (r *Repo) Enqueue(ctx context.Context, kind domain.JobKind, payload any) (*domain.Job, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("job.Enqueue: marshal payload: %w", err)
	}

	var row jobRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, enqueueSQL, string(kind), raw); err != nil {
		return nil, fmt.Errorf("job.Enqueue: %w", err)
	}
	j := row.toDomain()
	return &j, nil
}

// ClaimNext marks the oldest pending job as processing and returns it.
// It returns nil, nil when the queue is empty.
func (r *Repo) ClaimNext(ctx context.Context) (*domain.Job, error) {
	var row jobRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, claimNextSQL)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("job.ClaimNext: %w", err)
	}
	j := row.toDomain()
	return &j, nil
}

// MarkDone marks a job as successfully finished.
func (r *Repo) MarkDone(ctx context.Context, id uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, markDoneSQL, id); err != nil {
		return fmt.Errorf("job.MarkDone: %w", err)
	}
	return nil
}

// Release puts a claimed job back to pending so it runs again.
func (r *Repo) Release(ctx context.Context, id uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, releaseSQL, id); err != nil {
		return fmt.Errorf("job.Release: %w", err)
	}
	return nil
}

// MarkFailed marks a job as failed with an error message.
func (r *Repo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, markFailedSQL, id, errMsg); err != nil {
		return fmt.Errorf("job.MarkFailed: %w", err)
	}
	return nil
}

// ResetProcessing puts jobs left in processing by a crashed worker back to pending.
func (r *Repo) ResetProcessing(ctx context.Context) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, resetProcessingSQL)
	if err != nil {
		return 0, fmt.Errorf("job.ResetProcessing: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// RetryFailed resets all failed jobs to pending.
func (r *Repo) RetryFailed(ctx context.Context) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, retryFailedSQL)
	if err != nil {
		return 0, fmt.Errorf("job.RetryFailed: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// Stats returns job counts by status.
func (r *Repo) Stats(ctx context.Context) (domain.JobStats, error) {
	var s domain.JobStats
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, statsSQL).
		Scan(&s.Pending, &s.Processing, &s.Done, &s.Failed, &s.Total)
	if err != nil {
		return domain.JobStats{}, fmt.Errorf("job.Stats: %w", err)
	}
	return s, nil
}

// List returns jobs newest first, optionally filtered by status.
func (r *Repo) List(ctx context.Context, status domain.JobStatus, limit, offset int) ([]domain.Job, error) {
	if limit <= 0 {
		return nil, errors.New("job.List: limit must be positive")
	}

	b := postgres.Builder().
		Select(jobColumns).
		From("jobs").
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(max(offset, 0)))
	if status != "" {
		b = b.Where(sq.Eq{"status": string(status)})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("job.List: build: %w", err)
	}

	var rows []jobRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("job.List: %w", err)
	}

	jobs := make([]domain.Job, len(rows))
	for i, row := range rows {
		jobs[i] = row.toDomain()
	}
	return jobs, nil
}

type jobRow struct {
	ID           uuid.UUID  `db:"id"`
	Kind         string     `db:"kind"`
	Payload      []byte     `db:"payload"`
	Status       string     `db:"status"`
	Attempts     int        `db:"attempts"`
	ErrorMessage *string    `db:"error_message"`
	CreatedAt    time.Time  `db:"created_at"`
	StartedAt    *time.Time `db:"started_at"`
	FinishedAt   *time.Time `db:"finished_at"`
}

func (r jobRow) toDomain() domain.Job {
	return domain.Job{
		ID:           r.ID,
		Kind:         domain.JobKind(r.Kind),
		Payload:      json.RawMessage(r.Payload),
		Status:       domain.JobStatus(r.Status),
		Attempts:     r.Attempts,
		ErrorMessage: r.ErrorMessage,
		CreatedAt:    r.CreatedAt,
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
	}
}
