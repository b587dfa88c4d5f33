package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
	"github.com/heartmarshall/deeplisten-backend/internal/service/study/fsrs"
	"github.com/heartmarshall/deeplisten-backend/pkg/ctxutil"
)

// SubmitReview applies one review to a live status using FSRS-5 and records it.
// The status row is locked for the duration of the transaction, so concurrent
// reviews of the same status are applied one after the other.
func (s *Service) SubmitReview(ctx context.Context, input SubmitReviewInput) (*domain.UserWordStatus, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	grade := s.resolveGrade(input)
	rating := mapGradeToRating(grade)
	mode := input.Mode
	if mode == "" {
		mode = domain.ReviewModeFlashcard
	}

	var (
		updated *domain.UserWordStatus
		prev    domain.StatusSnapshot
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		status, err := s.statuses.GetForUpdate(txCtx, userID, input.StatusID)
		if err != nil {
			return fmt.Errorf("get status: %w", err)
		}
		prev = status.Snapshot()

		next, err := fsrs.Schedule(s.params, toCard(status), rating, s.now())
		if err != nil {
			return fmt.Errorf("schedule: %w", err)
		}
		applyCard(status, next)
		status.Status = fsrs.LearningStatus(prev.Status, next, rating, s.cfg.MasteredStability)

		if err := s.statuses.Update(txCtx, status); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		reviewedAt := *next.LastReview
		if err := s.reviews.Create(txCtx, &domain.WordReview{
			StatusID:       status.ID,
			UserID:         userID,
			WordID:         status.WordID,
			Grade:          grade,
			Mode:           mode,
			ResponseTimeMs: input.ResponseTimeMs,
			Correct:        input.Correct,
			PrevState:      prev,
			State:          next.State,
			Stability:      next.Stability,
			Difficulty:     next.Difficulty,
			ScheduledDays:  next.ScheduledDays,
			Due:            next.Due,
			ReviewedAt:     reviewedAt,
		}); err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		if err := s.activity.Increment(txCtx, userID, reviewedAt, domain.ActivityDelta{ReviewsDone: 1}); err != nil {
			return fmt.Errorf("increment activity: %w", err)
		}

		updated = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word reviewed",
		slog.String("user_id", userID.String()),
		slog.String("status_id", updated.ID.String()),
		slog.String("grade", string(grade)),
		slog.String("old_state", string(prev.State)),
		slog.String("new_state", string(updated.State)),
		slog.String("status", string(updated.Status)),
		slog.Float64("stability", updated.Stability),
	)

	return updated, nil
}

func (s *Service) resolveGrade(input SubmitReviewInput) domain.ReviewGrade {
	if input.Grade != nil {
		return *input.Grade
	}
	return gradeFromResponse(*input.Correct, input.ResponseTimeMs, s.cfg.FastResponseMs, s.cfg.SlowResponseMs)
}

// ListReviews returns a status's review history, newest first.
func (s *Service) ListReviews(ctx context.Context, input ListReviewsInput) ([]domain.WordReview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}
	return s.reviews.ListByStatus(ctx, userID, input.StatusID, limit)
}

// GetStatus returns one of the user's statuses, trashed or not.
func (s *Service) GetStatus(ctx context.Context, statusID uuid.UUID) (*domain.UserWordStatus, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.statuses.GetByID(ctx, userID, statusID)
}
