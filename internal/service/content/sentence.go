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

// EditSentence sets or clears a sentence's edit override and queues
// re-extraction of its material.
func (s *Service) EditSentence(ctx context.Context, input EditSentenceInput) (*domain.Sentence, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sentence, err := s.ownedSentence(ctx, userID, input.SentenceID)
	if err != nil {
		return nil, err
	}

	var edited *string
	if input.Content != nil {
		c := strings.TrimSpace(*input.Content)
		edited = &c
	}

	if err := s.materials.EditSentence(ctx, sentence.ID, edited); err != nil {
		return nil, fmt.Errorf("edit sentence: %w", err)
	}
	sentence.EditedContent = edited

	if _, err := s.enqueueExtraction(ctx, sentence.MaterialID); err != nil {
		return nil, fmt.Errorf("enqueue extraction: %w", err)
	}

	s.log.InfoContext(ctx, "sentence edited",
		slog.String("user_id", userID.String()),
		slog.String("sentence_id", sentence.ID.String()),
		slog.Bool("override", edited != nil),
	)
	return sentence, nil
}

// DeleteSentence soft-deletes a sentence, drops its occurrences and queues an
// orphan check of the words it referenced.
func (s *Service) DeleteSentence(ctx context.Context, sentenceID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.ownedSentence(ctx, userID, sentenceID); err != nil {
		return err
	}

	var affected []uuid.UUID
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.materials.SoftDeleteSentence(txCtx, sentenceID); err != nil {
			return fmt.Errorf("delete sentence: %w", err)
		}
		ids, err := s.occurrences.DeleteBySentence(txCtx, sentenceID)
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

	s.log.InfoContext(ctx, "sentence deleted",
		slog.String("user_id", userID.String()),
		slog.String("sentence_id", sentenceID.String()),
		slog.Int("orphan_candidates", len(affected)),
	)
	return nil
}
