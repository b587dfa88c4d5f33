// Package extraction turns material sentences into words, per-user statuses
// and occurrence links, and collects words that are no longer referenced.
package extraction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetLiveByTexts(ctx context.Context, texts []string) ([]domain.Word, error)
	Create(ctx context.Context, text string, e domain.WordEnrichment) (uuid.UUID, domain.CreateOutcome, error)
	Revive(ctx context.Context, ids []uuid.UUID) (int, error)
	SoftDeleteIfOrphan(ctx context.Context, id uuid.UUID) (bool, error)
	SweepOrphans(ctx context.Context, cutoff time.Time) (int, error)
}

type statusRepo interface {
	EnsureForWords(ctx context.Context, userID uuid.UUID, wordIDs []uuid.UUID) (map[uuid.UUID]domain.StatusOutcome, error)
}

type occurrenceRepo interface {
	DeleteBySentence(ctx context.Context, sentenceID uuid.UUID) ([]uuid.UUID, error)
	Insert(ctx context.Context, occs []domain.WordOccurrence) (int, error)
}

type materialRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error)
	SetProcessed(ctx context.Context, id uuid.UUID, processed bool) error
	ListLiveSentences(ctx context.Context, materialID uuid.UUID) ([]domain.Sentence, error)
	MarkExtracted(ctx context.Context, sentenceID uuid.UUID) error
}

type lookuper interface {
	Lookup(ctx context.Context, words []string) (map[string]domain.WordEnrichment, error)
}

type jobQueue interface {
	Enqueue(ctx context.Context, kind domain.JobKind, payload any) (*domain.Job, error)
}

type activityRepo interface {
	Increment(ctx context.Context, userID uuid.UUID, date time.Time, delta domain.ActivityDelta) error
}

type notifier interface {
	ExtractionCompleted(ctx context.Context, summary domain.ExtractionSummary) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
