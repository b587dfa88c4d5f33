// Package occurrence implements the WordOccurrence repository using PostgreSQL.
package occurrence

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

// DefaultWriteBatch is the number of rows per multi-row INSERT.
const DefaultWriteBatch = 500

// Repo provides occurrence persistence backed by PostgreSQL.
type Repo struct {
	db         postgres.DB
	writeBatch int
}

// New creates a new occurrence repository. writeBatch <= 0 uses DefaultWriteBatch.
func New(db postgres.DB, writeBatch int) *Repo {
	if writeBatch <= 0 {
		writeBatch = DefaultWriteBatch
	}
	return &Repo{db: db, writeBatch: writeBatch}
}

const deleteBySentenceSQL = `
DELETE FROM word_occurrences WHERE sentence_id = $1
RETURNING word_id`

const deleteByMaterialSQL = `
DELETE FROM word_occurrences o
USING sentences s
WHERE o.sentence_id = s.id AND s.material_id = $1
RETURNING o.word_id`

// DeleteBySentence removes all occurrences of the sentence and returns the
// distinct word ids that were linked to it.
func (r *Repo) DeleteBySentence(ctx context.Context, sentenceID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.deleteReturning(ctx, deleteBySentenceSQL, sentenceID)
	if err != nil {
		return nil, fmt.Errorf("occurrence.DeleteBySentence: %w", err)
	}
	return ids, nil
}

// DeleteByMaterial removes the occurrences of every sentence of the material
// and returns the distinct word ids that were linked to them.
func (r *Repo) DeleteByMaterial(ctx context.Context, materialID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.deleteReturning(ctx, deleteByMaterialSQL, materialID)
	if err != nil {
		return nil, fmt.Errorf("occurrence.DeleteByMaterial: %w", err)
	}
	return ids, nil
}

func (r *Repo) deleteReturning(ctx context.Context, query string, id uuid.UUID) ([]uuid.UUID, error) {
	var wordIDs []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &wordIDs, query, id); err != nil {
		return nil, err
	}
	return distinct(wordIDs), nil
}

// Insert writes the occurrences in multi-row batches and returns the number of rows written.
func (r *Repo) Insert(ctx context.Context, occs []domain.WordOccurrence) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	written := 0

	for start := 0; start < len(occs); start += r.writeBatch {
		end := min(start+r.writeBatch, len(occs))

		b := postgres.Builder().
			Insert("word_occurrences").
			Columns("word_id", "sentence_id", "start_index", "end_index")
		for _, o := range occs[start:end] {
			b = b.Values(o.WordID, o.SentenceID, o.StartIndex, o.EndIndex)
		}

		query, args, err := b.ToSql()
		if err != nil {
			return written, fmt.Errorf("occurrence.Insert: build: %w", err)
		}
		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return written, fmt.Errorf("occurrence.Insert: %w", err)
		}
		written += int(tag.RowsAffected())
	}

	return written, nil
}

// ListBySentence returns the occurrences of a sentence ordered by position.
func (r *Repo) ListBySentence(ctx context.Context, sentenceID uuid.UUID) ([]domain.WordOccurrence, error) {
	query, args, err := postgres.Builder().
		Select("id", "word_id", "sentence_id", "start_index", "end_index", "created_at").
		From("word_occurrences").
		Where(sq.Eq{"sentence_id": sentenceID}).
		OrderBy("start_index", "word_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("occurrence.ListBySentence: build: %w", err)
	}

	var rows []occurrenceRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("occurrence.ListBySentence: %w", err)
	}

	occs := make([]domain.WordOccurrence, len(rows))
	for i, row := range rows {
		occs[i] = domain.WordOccurrence{
			ID:         row.ID,
			WordID:     row.WordID,
			SentenceID: row.SentenceID,
			StartIndex: row.StartIndex,
			EndIndex:   row.EndIndex,
			CreatedAt:  row.CreatedAt,
		}
	}
	return occs, nil
}

type occurrenceRow struct {
	ID         uuid.UUID `db:"id"`
	WordID     uuid.UUID `db:"word_id"`
	SentenceID uuid.UUID `db:"sentence_id"`
	StartIndex int       `db:"start_index"`
	EndIndex   int       `db:"end_index"`
	CreatedAt  time.Time `db:"created_at"`
}

func distinct(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
