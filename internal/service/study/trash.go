package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
	"github.com/heartmarshall/deeplisten-backend/pkg/ctxutil"
)

// TrashStatus moves a status to the trash. Trashing twice is a no-op.
func (s *Service) TrashStatus(ctx context.Context, statusID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.statuses.Trash(ctx, userID, statusID); err != nil {
		return fmt.Errorf("trash status: %w", err)
	}

	s.log.InfoContext(ctx, "status trashed",
		slog.String("user_id", userID.String()),
		slog.String("status_id", statusID.String()),
	)
	return nil
}

// RestoreStatus takes a status out of the trash with its scheduling intact.
func (s *Service) RestoreStatus(ctx context.Context, statusID uuid.UUID) (*domain.UserWordStatus, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.statuses.Restore(ctx, userID, statusID); err != nil {
		return nil, fmt.Errorf("restore status: %w", err)
	}

	restored, err := s.statuses.GetByID(ctx, userID, statusID)
	if err != nil {
		return nil, fmt.Errorf("get restored status: %w", err)
	}

	s.log.InfoContext(ctx, "status restored",
		slog.String("user_id", userID.String()),
		slog.String("status_id", statusID.String()),
	)
	return restored, nil
}
