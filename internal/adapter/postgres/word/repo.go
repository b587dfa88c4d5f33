// Package word implements the global Word repository using PostgreSQL.
// Lookups by text go through squirrel; the upsert and orphan statements are raw SQL.
package word

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/deeplisten-backend/internal/adapter/postgres"
	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new word repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

var wordColumns = []string{
	"id", "text", "lemma", "phonetic", "definition", "translation", "part_of_speech",
	"collins_stars", "oxford_3000", "tags", "bnc_rank", "frequency_rank", "exchange",
	"created_at", "updated_at", "deleted_at",
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

// upsertSQL inserts a word or revives a soft-deleted one with the same text.
// A live conflicting row is left untouched, so RETURNING yields no row for it.
// Enrichment of a revived word is only filled where it was missing.
const upsertSQL = `
INSERT INTO words (text, lemma, phonetic, definition, translation, part_of_speech,
                   collins_stars, oxford_3000, tags, bnc_rank, frequency_rank, exchange)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (text) DO UPDATE SET
    deleted_at     = NULL,
    updated_at     = now(),
    lemma          = COALESCE(words.lemma, EXCLUDED.lemma),
    phonetic       = COALESCE(words.phonetic, EXCLUDED.phonetic),
    definition     = COALESCE(words.definition, EXCLUDED.definition),
    translation    = COALESCE(words.translation, EXCLUDED.translation),
    part_of_speech = COALESCE(words.part_of_speech, EXCLUDED.part_of_speech)
WHERE words.deleted_at IS NOT NULL
RETURNING id, (xmax = 0) AS inserted`

const selectIDByTextSQL = `SELECT id FROM words WHERE text = $1`

const reviveSQL = `
UPDATE words SET deleted_at = NULL, updated_at = now()
WHERE id = ANY($1) AND deleted_at IS NOT NULL`

// softDeleteIfOrphanSQL is a single statement so the check and the delete
// cannot interleave with an occurrence insert committed in between.
const softDeleteIfOrphanSQL = `
UPDATE words SET deleted_at = now(), updated_at = now()
WHERE id = $1
  AND deleted_at IS NULL
  AND NOT EXISTS (
      SELECT 1 FROM word_occurrences o
      JOIN sentences s ON s.id = o.sentence_id
      WHERE o.word_id = words.id AND s.deleted_at IS NULL
  )`

const sweepOrphansSQL = `
UPDATE words SET deleted_at = now(), updated_at = now()
WHERE deleted_at IS NULL
  AND updated_at < $1
  AND NOT EXISTS (
      SELECT 1 FROM word_occurrences o
      JOIN sentences s ON s.id = o.sentence_id
      WHERE o.word_id = words.id AND s.deleted_at IS NULL
  )`

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a word by id, including soft-deleted words.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	query, args, err := postgres.Builder().
		Select(wordColumns...).
		From("words").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("word.GetByID: build: %w", err)
	}

	var row wordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	w := row.toDomain()
	return &w, nil
}

// GetLiveByTexts returns the live words whose text is in texts.
// Texts with no live word are simply absent from the result.
func (r *Repo) GetLiveByTexts(ctx context.Context, texts []string) ([]domain.Word, error) {
	if len(texts) == 0 {
		return []domain.Word{}, nil
	}

	query, args, err := postgres.Builder().
		Select(wordColumns...).
		From("words").
		Where(sq.Eq{"text": texts}).
		Where(sq.Eq{"deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("word.GetLiveByTexts: build: %w", err)
	}

	var rows []wordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("word.GetLiveByTexts: %w", err)
	}

	words := make([]domain.Word, len(rows))
	for i, row := range rows {
		words[i] = row.toDomain()
	}
	return words, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a word with the given enrichment. Losing a creation race is
// not an error: the existing word's id is returned with CreateOutcomeAlreadyExisted.
func (r *Repo) Create(ctx context.Context, text string, e domain.WordEnrichment) (uuid.UUID, domain.CreateOutcome, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var (
		id       uuid.UUID
		inserted bool
	)
	err := q.QueryRow(ctx, upsertSQL,
		text, e.Lemma, e.Phonetic, e.Definition, e.Translation, e.PartOfSpeech,
		e.CollinsStars, e.Oxford3000, e.Tags, e.BNCRank, e.FrequencyRank, e.Exchange,
	).Scan(&id, &inserted)

	switch {
	case err == nil && inserted:
		return id, domain.CreateOutcomeCreated, nil
	case err == nil:
		return id, domain.CreateOutcomeRevived, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return uuid.Nil, "", fmt.Errorf("word.Create %q: %w", text, err)
	}

	// A live word with this text already exists.
	if err := q.QueryRow(ctx, selectIDByTextSQL, text).Scan(&id); err != nil {
		return uuid.Nil, "", fmt.Errorf("word.Create %q: select existing: %w", text, err)
	}
	return id, domain.CreateOutcomeAlreadyExisted, nil
}

// Revive clears deleted_at on any of the given words that are soft-deleted.
// It returns the number of words brought back.
func (r *Repo) Revive(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, reviveSQL, ids)
	if err != nil {
		return 0, fmt.Errorf("word.Revive: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// SoftDeleteIfOrphan soft-deletes the word if no live sentence references it.
// It reports whether the word was deleted; an already deleted word is a no-op.
func (r *Repo) SoftDeleteIfOrphan(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, softDeleteIfOrphanSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "word", id)
	}
	return tag.RowsAffected() == 1, nil
}

// SweepOrphans soft-deletes every live, unreferenced word last touched before cutoff.
func (r *Repo) SweepOrphans(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sweepOrphansSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("word.SweepOrphans: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type wordRow struct {
	ID            uuid.UUID  `db:"id"`
	Text          string     `db:"text"`
	Lemma         *string    `db:"lemma"`
	Phonetic      *string    `db:"phonetic"`
	Definition    *string    `db:"definition"`
	Translation   *string    `db:"translation"`
	PartOfSpeech  *string    `db:"part_of_speech"`
	CollinsStars  *int       `db:"collins_stars"`
	Oxford3000    bool       `db:"oxford_3000"`
	Tags          *string    `db:"tags"`
	BNCRank       *int       `db:"bnc_rank"`
	FrequencyRank *int       `db:"frequency_rank"`
	Exchange      *string    `db:"exchange"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

func (r wordRow) toDomain() domain.Word {
	return domain.Word{
		ID:            r.ID,
		Text:          r.Text,
		Lemma:         r.Lemma,
		Phonetic:      r.Phonetic,
		Definition:    r.Definition,
		Translation:   r.Translation,
		PartOfSpeech:  r.PartOfSpeech,
		CollinsStars:  r.CollinsStars,
		Oxford3000:    r.Oxford3000,
		Tags:          r.Tags,
		BNCRank:       r.BNCRank,
		FrequencyRank: r.FrequencyRank,
		Exchange:      r.Exchange,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		DeletedAt:     r.DeletedAt,
	}
}
