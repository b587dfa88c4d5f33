// Package material implements the Material and Sentence repository using PostgreSQL.
package material

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

// Repo provides material and sentence persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new material repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

var (
	materialColumns = []string{"id", "user_id", "title", "processed", "processed_at", "created_at", "updated_at", "deleted_at"}
	sentenceColumns = []string{
		"id", "material_id", "position", "original_content", "edited_content",
		"start_time", "end_time", "extracted_at", "created_at", "updated_at", "deleted_at",
	}
)

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createMaterialSQL = `
INSERT INTO materials (user_id, title)
VALUES ($1, $2)
RETURNING id, user_id, title, processed, processed_at, created_at, updated_at, deleted_at`

const setProcessedSQL = `
UPDATE materials
SET processed = $2,
    processed_at = CASE WHEN $2 THEN now() ELSE NULL END,
    updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

const softDeleteMaterialSQL = `
UPDATE materials SET deleted_at = now(), updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

const softDeleteSentencesOfMaterialSQL = `
UPDATE sentences SET deleted_at = now(), updated_at = now()
WHERE material_id = $1 AND deleted_at IS NULL`

const nextPositionSQL = `
SELECT COALESCE(MAX(position), -1) + 1 FROM sentences WHERE material_id = $1`

const markExtractedSQL = `
UPDATE sentences SET extracted_at = now() WHERE id = $1 AND deleted_at IS NULL`

const editSentenceSQL = `
UPDATE sentences SET edited_content = $2, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

const softDeleteSentenceSQL = `
UPDATE sentences SET deleted_at = now(), updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

// ---------------------------------------------------------------------------
// Materials
// ---------------------------------------------------------------------------

// Create inserts a new, unprocessed material.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, title string) (*domain.Material, error) {
	var row materialRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createMaterialSQL, userID, title); err != nil {
		return nil, postgres.MapError(err, "material", uuid.Nil)
	}
	m := row.toDomain()
	return &m, nil
}

// GetByID returns a live material.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error) {
	query, args, err := postgres.Builder().
		Select(materialColumns...).
		From("materials").
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("material.GetByID: build: %w", err)
	}

	var row materialRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "material", id)
	}
	m := row.toDomain()
	return &m, nil
}

// SetProcessed sets the processed flag; processed_at follows it.
func (r *Repo) SetProcessed(ctx context.Context, id uuid.UUID, processed bool) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, setProcessedSQL, id, processed)
	if err != nil {
		return postgres.MapError(err, "material", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("material %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SoftDelete soft-deletes the material and all of its live sentences.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, softDeleteMaterialSQL, id)
	if err != nil {
		return postgres.MapError(err, "material", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("material %s: %w", id, domain.ErrNotFound)
	}

	if _, err := q.Exec(ctx, softDeleteSentencesOfMaterialSQL, id); err != nil {
		return postgres.MapError(err, "material", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Sentences
// ---------------------------------------------------------------------------

// ListLiveSentences returns the live sentences of a material ordered by position.
func (r *Repo) ListLiveSentences(ctx context.Context, materialID uuid.UUID) ([]domain.Sentence, error) {
	query, args, err := postgres.Builder().
		Select(sentenceColumns...).
		From("sentences").
		Where(sq.Eq{"material_id": materialID, "deleted_at": nil}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("material.ListLiveSentences: build: %w", err)
	}

	var rows []sentenceRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("material.ListLiveSentences: %w", err)
	}

	sentences := make([]domain.Sentence, len(rows))
	for i, row := range rows {
		sentences[i] = row.toDomain()
	}
	return sentences, nil
}

// GetSentence returns a live sentence.
func (r *Repo) GetSentence(ctx context.Context, id uuid.UUID) (*domain.Sentence, error) {
	query, args, err := postgres.Builder().
		Select(sentenceColumns...).
		From("sentences").
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("material.GetSentence: build: %w", err)
	}

	var row sentenceRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "sentence", id)
	}
	s := row.toDomain()
	return &s, nil
}

// AppendSentences inserts the segments after the material's last sentence.
// It returns the number of sentences written.
func (r *Repo) AppendSentences(ctx context.Context, materialID uuid.UUID, segments []domain.TranscriptSegment) (int, error) {
	if len(segments) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var next int
	if err := q.QueryRow(ctx, nextPositionSQL, materialID).Scan(&next); err != nil {
		return 0, fmt.Errorf("material.AppendSentences: next position: %w", err)
	}

	b := postgres.Builder().
		Insert("sentences").
		Columns("material_id", "position", "original_content", "start_time", "end_time")
	for i, seg := range segments {
		b = b.Values(materialID, next+i, seg.Text, seg.Start, seg.End)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("material.AppendSentences: build: %w", err)
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "material", materialID)
	}
	return int(tag.RowsAffected()), nil
}

// MarkExtracted stamps the sentence's extracted_at with the current time.
// Inside a transaction the update also locks the row, so a concurrent delete
// of the sentence waits for the caller to commit. Returns ErrNotFound when
// the sentence is already deleted.
func (r *Repo) MarkExtracted(ctx context.Context, sentenceID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, markExtractedSQL, sentenceID)
	if err != nil {
		return postgres.MapError(err, "sentence", sentenceID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sentence %s: %w", sentenceID, domain.ErrNotFound)
	}
	return nil
}

// EditSentence sets (or with nil clears) the sentence's edit override.
func (r *Repo) EditSentence(ctx context.Context, id uuid.UUID, edited *string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, editSentenceSQL, id, edited)
	if err != nil {
		return postgres.MapError(err, "sentence", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sentence %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SoftDeleteSentence soft-deletes a live sentence.
func (r *Repo) SoftDeleteSentence(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, softDeleteSentenceSQL, id)
	if err != nil {
		return postgres.MapError(err, "sentence", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sentence %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type materialRow struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	Title       string     `db:"title"`
	Processed   bool       `db:"processed"`
	ProcessedAt *time.Time `db:"processed_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

func (r materialRow) toDomain() domain.Material {
	return domain.Material{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Processed:   r.Processed,
		ProcessedAt: r.ProcessedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		DeletedAt:   r.DeletedAt,
	}
}

type sentenceRow struct {
	ID              uuid.UUID  `db:"id"`
	MaterialID      uuid.UUID  `db:"material_id"`
	Position        int        `db:"position"`
	OriginalContent string     `db:"original_content"`
	EditedContent   *string    `db:"edited_content"`
	StartTime       float64    `db:"start_time"`
	EndTime         float64    `db:"end_time"`
	ExtractedAt     *time.Time `db:"extracted_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

func (r sentenceRow) toDomain() domain.Sentence {
	return domain.Sentence{
		ID:              r.ID,
		MaterialID:      r.MaterialID,
		Position:        r.Position,
		OriginalContent: r.OriginalContent,
		EditedContent:   r.EditedContent,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		ExtractedAt:     r.ExtractedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		DeletedAt:       r.DeletedAt,
	}
}
