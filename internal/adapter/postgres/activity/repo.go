// Package activity implements per-day activity counters using PostgreSQL.
package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// Repo provides daily activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new activity repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const incrementSQL = `
INSERT INTO daily_activities (user_id, activity_date, words_added, sentences_added, reviews_done)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, activity_date) DO UPDATE SET
    words_added     = daily_activities.words_added + EXCLUDED.words_added,
    sentences_added = daily_activities.sentences_added + EXCLUDED.sentences_added,
    reviews_done    = daily_activities.reviews_done + EXCLUDED.reviews_done,
    updated_at      = now()`

const getSQL = `
SELECT words_added, sentences_added, reviews_done
FROM daily_activities
WHERE user_id = $1 AND activity_date = $2`

// Increment adds delta to the user's counters for the UTC day of date,
// creating the row if it does not exist. A zero delta is a no-op.
func (r *Repo) Increment(ctx context.Context, userID uuid.UUID, date time.Time, delta domain.ActivityDelta) error {
	if delta.IsZero() {
		return nil
	}
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, incrementSQL,
		userID, domain.UTCDate(date), delta.WordsAdded, delta.SentencesAdded, delta.ReviewsDone,
	)
	if err != nil {
		return fmt.Errorf("activity.Increment: %w", err)
	}
	return nil
}

// Get returns the user's counters for the UTC day of date. A day with no
// activity yields zero counters, not an error.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, date time.Time) (domain.DailyActivity, error) {
	day := domain.UTCDate(date)
	a := domain.DailyActivity{UserID: userID, Date: day}

	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSQL, userID, day).
		Scan(&a.WordsAdded, &a.SentencesAdded, &a.ReviewsDone)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return domain.DailyActivity{}, fmt.Errorf("activity.Get: %w", err)
	}
	return a, nil
}
