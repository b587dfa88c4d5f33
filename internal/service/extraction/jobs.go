package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// HandleExtractJob runs an extract_material job. A material deleted after the
// job was queued is not an error.
func (s *Service) HandleExtractJob(ctx context.Context, job domain.Job) error {
	var p domain.ExtractMaterialPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	_, err := s.ExtractMaterial(ctx, p.MaterialID)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.InfoContext(ctx, "material gone, skipping extraction",
			slog.String("material_id", p.MaterialID.String()),
		)
		return nil
	}
	return err
}

// HandleSweepJob runs a sweep_orphans job.
func (s *Service) HandleSweepJob(ctx context.Context, job domain.Job) error {
	var p domain.SweepOrphansPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	_, err := s.CollectOrphans(ctx, p.WordIDs)
	return err
}
