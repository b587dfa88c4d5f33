// Package review implements the append-only WordReview log using PostgreSQL.
package review

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new review repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const insertSQL = `
INSERT INTO word_reviews (status_id, user_id, word_id, grade, mode, response_time_ms, correct,
                          prev_state, state, stability, difficulty, scheduled_days, due, reviewed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id`

const listByStatusSQL = `
SELECT id, status_id, user_id, word_id, grade, mode, response_time_ms, correct,
       prev_state, state, stability, difficulty, scheduled_days, due, reviewed_at
FROM word_reviews
WHERE status_id = $1 AND user_id = $2
ORDER BY reviewed_at DESC
LIMIT $3`

// Create appends a review and sets its generated id.
func (r *Repo) Create(ctx context.Context, rv *domain.WordReview) error {
	prev, err := json.Marshal(rv.PrevState)
	if err != nil {
		return fmt.Errorf("review.Create: marshal prev state: %w", err)
	}

	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL,
		rv.StatusID, rv.UserID, rv.WordID, string(rv.Grade), string(rv.Mode), rv.ResponseTimeMs, rv.Correct,
		prev, string(rv.State), rv.Stability, rv.Difficulty, rv.ScheduledDays, rv.Due, rv.ReviewedAt,
	).Scan(&rv.ID)
	if err != nil {
		return postgres.MapError(err, "review of status", rv.StatusID)
	}
	return nil
}

// ListByStatus returns the newest reviews of a status first.
func (r *Repo) ListByStatus(ctx context.Context, userID, statusID uuid.UUID, limit int) ([]domain.WordReview, error) {
	var rows []reviewRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByStatusSQL, statusID, userID, limit); err != nil {
		return nil, fmt.Errorf("review.ListByStatus: %w", err)
	}

	reviews := make([]domain.WordReview, 0, len(rows))
	for _, row := range rows {
		rv, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("review.ListByStatus: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, nil
}

type reviewRow struct {
	ID             uuid.UUID `db:"id"`
	StatusID       uuid.UUID `db:"status_id"`
	UserID         uuid.UUID `db:"user_id"`
	WordID         uuid.UUID `db:"word_id"`
	Grade          string    `db:"grade"`
	Mode           string    `db:"mode"`
	ResponseTimeMs *int      `db:"response_time_ms"`
	Correct        *bool     `db:"correct"`
	PrevState      []byte    `db:"prev_state"`
	State          string    `db:"state"`
	Stability      float64   `db:"stability"`
	Difficulty     float64   `db:"difficulty"`
	ScheduledDays  int       `db:"scheduled_days"`
	Due            time.Time `db:"due"`
	ReviewedAt     time.Time `db:"reviewed_at"`
}

func (r reviewRow) toDomain() (domain.WordReview, error) {
	var prev domain.StatusSnapshot
	if err := json.Unmarshal(r.PrevState, &prev); err != nil {
		return domain.WordReview{}, fmt.Errorf("review %s: decode prev state: %w", r.ID, err)
	}
	return domain.WordReview{
		ID:             r.ID,
		StatusID:       r.StatusID,
		UserID:         r.UserID,
		WordID:         r.WordID,
		Grade:          domain.ReviewGrade(r.Grade),
		Mode:           domain.ReviewMode(r.Mode),
		ResponseTimeMs: r.ResponseTimeMs,
		Correct:        r.Correct,
		PrevState:      prev,
		State:          domain.CardState(r.State),
		Stability:      r.Stability,
		Difficulty:     r.Difficulty,
		ScheduledDays:  r.ScheduledDays,
		Due:            r.Due,
		ReviewedAt:     r.ReviewedAt,
	}, nil
}
