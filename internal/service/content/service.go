// Package content manages materials and their transcript sentences, and queues
// the extraction and orphan-collection work their changes cause.
package content

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	MaxTitleLength    = 500
	MaxSentenceLength = 2000
	MaxSegments       = 10000
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type materialRepo interface {
	Create(ctx context.Context, userID uuid.UUID, title string) (*domain.Material, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	GetSentence(ctx context.Context, id uuid.UUID) (*domain.Sentence, error)
	AppendSentences(ctx context.Context, materialID uuid.UUID, segments []domain.TranscriptSegment) (int, error)
	EditSentence(ctx context.Context, id uuid.UUID, edited *string) error
	SoftDeleteSentence(ctx context.Context, id uuid.UUID) error
}

type occurrenceRepo interface {
	DeleteBySentence(ctx context.Context, sentenceID uuid.UUID) ([]uuid.UUID, error)
	DeleteByMaterial(ctx context.Context, materialID uuid.UUID) ([]uuid.UUID, error)
}

type jobQueue interface {
	Enqueue(ctx context.Context, kind domain.JobKind, payload any) (*domain.Job, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the content business logic.
type Service struct {
	log         *slog.Logger
	materials   materialRepo
	occurrences occurrenceRepo
	jobs        jobQueue
	tx          txManager
}

// NewService creates a new content service.
func NewService(
	log *slog.Logger,
	materials materialRepo,
	occurrences occurrenceRepo,
	jobs jobQueue,
	tx txManager,
) *Service {
	return &Service{
		log:         log.With("service", "content"),
		materials:   materials,
		occurrences: occurrences,
		jobs:        jobs,
		tx:          tx,
	}
}

// ownedMaterial returns the live material if it belongs to userID.
// A material of another user is reported as not found.
func (s *Service) ownedMaterial(ctx context.Context, userID, materialID uuid.UUID) (*domain.Material, error) {
	m, err := s.materials.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// ownedSentence returns the live sentence if its material belongs to userID.
func (s *Service) ownedSentence(ctx context.Context, userID, sentenceID uuid.UUID) (*domain.Sentence, error) {
	sentence, err := s.materials.GetSentence(ctx, sentenceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedMaterial(ctx, userID, sentence.MaterialID); err != nil {
		return nil, err
	}
	return sentence, nil
}

func (s *Service) enqueueExtraction(ctx context.Context, materialID uuid.UUID) (*domain.Job, error) {
	return s.jobs.Enqueue(ctx, domain.JobKindExtractMaterial, domain.ExtractMaterialPayload{MaterialID: materialID})
}

func (s *Service) enqueueSweep(ctx context.Context, wordIDs []uuid.UUID) error {
	if len(wordIDs) == 0 {
		return nil
	}
	_, err := s.jobs.Enqueue(ctx, domain.JobKindSweepOrphans, domain.SweepOrphansPayload{WordIDs: wordIDs})
	return err
}
