package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueWord returns a lowercase word text that no other test will use.
func UniqueWord(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// UniqueLetters returns a letters-only word that no other test will use and
// that the tokenizer keeps as a single token.
func UniqueLetters(prefix string) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")[:10]
	b := []byte(hex)
	for i, c := range b {
		if c >= '0' && c <= '9' {
			b[i] = 'g' + (c - '0')
		}
	}
	return prefix + string(b)
}

// SeedMaterial creates a live, unprocessed material owned by userID.
func SeedMaterial(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Material {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.Material{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Material " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO materials (id, user_id, title, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.UserID, m.Title, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMaterial: %v", err)
	}
	return m
}

// SeedSentence creates a live sentence of the material at the given position.
func SeedSentence(t *testing.T, pool *pgxpool.Pool, materialID uuid.UUID, position int, content string) domain.Sentence {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Sentence{
		ID:              uuid.New(),
		MaterialID:      materialID,
		Position:        position,
		OriginalContent: content,
		StartTime:       float64(position),
		EndTime:         float64(position) + 1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO sentences (id, material_id, position, original_content, start_time, end_time, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.MaterialID, s.Position, s.OriginalContent, s.StartTime, s.EndTime, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSentence: %v", err)
	}
	return s
}

// SeedWord creates a live, unenriched word.
func SeedWord(t *testing.T, pool *pgxpool.Pool, text string) domain.Word {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	w := domain.Word{
		ID:        uuid.New(),
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (id, text, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		w.ID, w.Text, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord: %v", err)
	}
	return w
}

// SeedOccurrence links a word to a span of a sentence.
func SeedOccurrence(t *testing.T, pool *pgxpool.Pool, wordID, sentenceID uuid.UUID, start, end int) domain.WordOccurrence {
	t.Helper()

	o := domain.WordOccurrence{
		ID:         uuid.New(),
		WordID:     wordID,
		SentenceID: sentenceID,
		StartIndex: start,
		EndIndex:   end,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO word_occurrences (id, word_id, sentence_id, start_index, end_index, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		o.ID, o.WordID, o.SentenceID, o.StartIndex, o.EndIndex, o.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOccurrence: %v", err)
	}
	return o
}

// SeedStatus creates a NEW status for (userID, wordID), due now.
func SeedStatus(t *testing.T, pool *pgxpool.Pool, userID, wordID uuid.UUID) domain.UserWordStatus {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.UserWordStatus{
		ID:        uuid.New(),
		UserID:    userID,
		WordID:    wordID,
		Status:    domain.LearningStatusNew,
		State:     domain.CardStateNew,
		Due:       now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_word_statuses (id, user_id, word_id, status, state, due, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.UserID, s.WordID, string(s.Status), string(s.State), s.Due, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStatus: %v", err)
	}
	return s
}

// SoftDeleteWord marks a word as soft-deleted.
func SoftDeleteWord(t *testing.T, pool *pgxpool.Pool, wordID uuid.UUID) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `UPDATE words SET deleted_at = now() WHERE id = $1`, wordID); err != nil {
		t.Fatalf("testhelper: SoftDeleteWord: %v", err)
	}
}

// SoftDeleteSentence marks a sentence as soft-deleted.
func SoftDeleteSentence(t *testing.T, pool *pgxpool.Pool, sentenceID uuid.UUID) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `UPDATE sentences SET deleted_at = now() WHERE id = $1`, sentenceID); err != nil {
		t.Fatalf("testhelper: SoftDeleteSentence: %v", err)
	}
}
