// Package status implements the UserWordStatus repository using PostgreSQL.
package status

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// DefaultWriteBatch is the number of rows per multi-row upsert.
const DefaultWriteBatch = 500

// Repo provides user word status persistence backed by PostgreSQL.
type Repo struct {
	db         postgres.DB
	writeBatch int
}

// New creates a new status repository. writeBatch <= 0 uses DefaultWriteBatch.
func New(db postgres.DB, writeBatch int) *Repo {
	if writeBatch <= 0 {
		writeBatch = DefaultWriteBatch
	}
	return &Repo{db: db, writeBatch: writeBatch}
}

var statusColumns = []string{
	"id", "user_id", "word_id", "status", "state", "step", "stability", "difficulty",
	"elapsed_days", "scheduled_days", "reps", "lapses", "due", "last_review",
	"created_at", "updated_at", "deleted_at",
}

// ensureSuffix restores trashed rows without touching any other column, and
// leaves live rows alone so they are absent from RETURNING.
const ensureSuffix = `
ON CONFLICT (user_id, word_id) DO UPDATE SET deleted_at = NULL
WHERE user_word_statuses.deleted_at IS NOT NULL
RETURNING word_id, (xmax = 0) AS inserted`

const updateSQL = `
UPDATE user_word_statuses SET
    status = $2, state = $3, step = $4, stability = $5, difficulty = $6,
    elapsed_days = $7, scheduled_days = $8, reps = $9, lapses = $10,
    due = $11, last_review = $12, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

const trashSQL = `
UPDATE user_word_statuses SET deleted_at = COALESCE(deleted_at, now())
WHERE id = $1 AND user_id = $2`

const restoreSQL = `
UPDATE user_word_statuses SET deleted_at = NULL
WHERE id = $1 AND user_id = $2`

// EnsureForWords makes sure a live status exists for every (user, word) pair.
// New rows start in the NEW state, due now. It reports per word whether the
// status was created, restored from the trash, or already live.
func (r *Repo) EnsureForWords(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID) (map[uuid.UUID]domain.StatusOutcome, error) {
	outcomes := make(map[uuid.UUID]domain.StatusOutcome, len(wordIDs))
	unique := make([]uuid.UUID, 0, len(wordIDs))
	for _, id := range wordIDs {
		if _, seen := outcomes[id]; seen {
			continue
		}
		outcomes[id] = domain.StatusOutcomeExisting
		unique = append(unique, id)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	for start := 0; start < len(unique); start += r.writeBatch {
		end := min(start+r.writeBatch, len(unique))

		b := postgres.Builder().
			Insert("user_word_statuses").
			Columns("user_id", "word_id")
		for _, wordID := range unique[start:end] {
			b = b.Values(userID, wordID)
		}
		query, args, err := b.Suffix(ensureSuffix).ToSql()
		if err != nil {
			return nil, fmt.Errorf("status.EnsureForWords: build: %w", err)
		}

		var rows []struct {
			WordID   uuid.UUID `db:"word_id"`
			Inserted bool      `db:"inserted"`
		}
		if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
			return nil, fmt.Errorf("status.EnsureForWords: %w", postgres.MapError(err, "user", userID))
		}
		for _, row := range rows {
			if row.Inserted {
				outcomes[row.WordID] = domain.StatusOutcomeCreated
			} else {
				outcomes[row.WordID] = domain.StatusOutcomeRestored
			}
		}
	}

	return outcomes, nil
}

// GetByID returns a status of the user, including a trashed one.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.UserWordStatus, error) {
	return r.get(ctx, postgres.Builder().
		Select(statusColumns...).
		From("user_word_statuses").
		Where(sq.Eq{"id": id, "user_id": userID}), id)
}

// GetForUpdate returns a live status of the user and locks its row until the
// surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.UserWordStatus, error) {
	return r.get(ctx, postgres.Builder().
		Select(statusColumns...).
		From("user_word_statuses").
		Where(sq.Eq{"id": id, "user_id": userID, "deleted_at": nil}).
		Suffix("FOR UPDATE"), id)
}

// GetByWord returns the user's status for a word, including a trashed one.
func (r *Repo) GetByWord(ctx context.Context, userID, wordID uuid.UUID) (*domain.UserWordStatus, error) {
	return r.get(ctx, postgres.Builder().
		Select(statusColumns...).
		From("user_word_statuses").
		Where(sq.Eq{"user_id": userID, "word_id": wordID}), wordID)
}

func (r *Repo) get(ctx context.Context, b sq.SelectBuilder, id uuid.UUID) (*domain.UserWordStatus, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("status.get: build: %w", err)
	}

	var row statusRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "status", id)
	}
	s := row.toDomain()
	return &s, nil
}

// Update writes the scheduling fields of a live status.
func (r *Repo) Update(ctx context.Context, s *domain.UserWordStatus) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateSQL,
		s.ID, string(s.Status), string(s.State), s.Step, s.Stability, s.Difficulty,
		s.ElapsedDays, s.ScheduledDays, s.Reps, s.Lapses, s.Due, s.LastReview,
	)
	if err != nil {
		return postgres.MapError(err, "status", s.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("status %s: %w", s.ID, domain.ErrNotFound)
	}
	return nil
}

// Trash soft-deletes the status. Trashing an already trashed status keeps
// its original deleted_at.
func (r *Repo) Trash(ctx context.Context, userID, id uuid.UUID) error {
	return r.setTrashed(ctx, trashSQL, userID, id)
}

// Restore brings a trashed status back. No other column changes.
func (r *Repo) Restore(ctx context.Context, userID, id uuid.UUID) error {
	return r.setTrashed(ctx, restoreSQL, userID, id)
}

func (r *Repo) setTrashed(ctx context.Context, query string, userID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, id, userID)
	if err != nil {
		return postgres.MapError(err, "status", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("status %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type statusRow struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	WordID        uuid.UUID  `db:"word_id"`
	Status        string     `db:"status"`
	State         string     `db:"state"`
	Step          int        `db:"step"`
	Stability     float64    `db:"stability"`
	Difficulty    float64    `db:"difficulty"`
	ElapsedDays   int        `db:"elapsed_days"`
	ScheduledDays int        `db:"scheduled_days"`
	Reps          int        `db:"reps"`
	Lapses        int        `db:"lapses"`
	Due           time.Time  `db:"due"`
	LastReview    *time.Time `db:"last_review"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

func (r statusRow) toDomain() domain.UserWordStatus {
	return domain.UserWordStatus{
		ID:            r.ID,
		UserID:        r.UserID,
		WordID:        r.WordID,
		Status:        domain.LearningStatus(r.Status),
		State:         domain.CardState(r.State),
		Step:          r.Step,
		Stability:     r.Stability,
		Difficulty:    r.Difficulty,
		ElapsedDays:   r.ElapsedDays,
		ScheduledDays: r.ScheduledDays,
		Reps:          r.Reps,
		Lapses:        r.Lapses,
		Due:           r.Due,
		LastReview:    r.LastReview,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		DeletedAt:     r.DeletedAt,
	}
}
