package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
	"github.com/heartmarshall/deeplisten-backend/pkg/ctxutil"
)

// CreateMaterial creates a material for the current user. When segments are
// given they become its first sentences and extraction is queued.
func (s *Service) CreateMaterial(ctx context.Context, input CreateMaterialInput) (*domain.Material, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	segments := sanitizeSegments(input.Segments)

	var material *domain.Material
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		m, err := s.materials.Create(txCtx, userID, strings.TrimSpace(input.Title))
		if err != nil {
			return fmt.Errorf("create material: %w", err)
		}
		if _, err := s.materials.AppendSentences(txCtx, m.ID, segments); err != nil {
			return fmt.Errorf("append sentences: %w", err)
		}
		material = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(segments) > 0 {
		if _, err := s.enqueueExtraction(ctx, material.ID); err != nil {
			return nil, fmt.Errorf("enqueue extraction: %w", err)
		}
	}

	s.log.InfoContext(ctx, "material created",
		slog.String("user_id", userID.String()),
		slog.String("material_id", material.ID.String()),
		slog.Int("sentences", len(segments)),
	)
	return material, nil
}

// AppendTranscript adds transcript segments to a material as sentences and
// queues extraction. It returns the number of sentences added; segments with
// blank text are skipped.
func (s *Service) AppendTranscript(ctx context.Context, input AppendTranscriptInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return 0, err
	}

	if _, err := s.ownedMaterial(ctx, userID, input.MaterialID); err != nil {
		return 0, err
	}

	segments := sanitizeSegments(input.Segments)
	if len(segments) == 0 {
		return 0, nil
	}

	n, err := s.materials.AppendSentences(ctx, input.MaterialID, segments)
	if err != nil {
		return 0, fmt.Errorf("append sentences: %w", err)
	}

	if _, err := s.enqueueExtraction(ctx, input.MaterialID); err != nil {
		return 0, fmt.Errorf("enqueue extraction: %w", err)
	}

	s.log.InfoContext(ctx, "transcript appended",
		slog.String("user_id", userID.String()),
		slog.String("material_id", input.MaterialID.String()),
		slog.Int("sentences", n),
		slog.Int("skipped", len(input.Segments)-len(segments)),
	)
	return n, nil
}

// RequestExtraction queues (re-)extraction of a material.
func (s *Service) RequestExtraction(ctx context.Context, materialID uuid.UUID) (*domain.Job, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := s.ownedMaterial(ctx, userID, materialID); err != nil {
		return nil, err
	}

	job, err := s.enqueueExtraction(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("enqueue extraction: %w", err)
	}
	return job, nil
}

// DeleteMaterial soft-deletes a material with its sentences, drops their
// occurrences and queues an orphan check of the words they referenced.
func (s *Service) DeleteMaterial(ctx context.Context, materialID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.ownedMaterial(ctx, userID, materialID); err != nil {
		return err
	}

	var affected []uuid.UUID
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.materials.SoftDelete(txCtx, materialID); err != nil {
			return fmt.Errorf("delete material: %w", err)
		}
		ids, err := s.occurrences.DeleteByMaterial(txCtx, materialID)
		if err != nil {
			return fmt.Errorf("delete occurrences: %w", err)
		}
		affected = ids
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.enqueueSweep(ctx, affected); err != nil {
		return fmt.Errorf("enqueue orphan sweep: %w", err)
	}

	s.log.InfoContext(ctx, "material deleted",
		slog.String("user_id", userID.String()),
		slog.String("material_id", materialID.String()),
		slog.Int("orphan_candidates", len(affected)),
	)
	return nil
}
