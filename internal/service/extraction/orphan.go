package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// OrphanCollector soft-deletes words that no live sentence references any more.
type OrphanCollector struct {
	words wordRepo
	log   *slog.Logger
	now   func() time.Time
}

// NewOrphanCollector creates a new OrphanCollector.
func NewOrphanCollector(log *slog.Logger, words wordRepo) *OrphanCollector {
	return &OrphanCollector{
		words: words,
		log:   log.With("service", "orphan_collector"),
		now:   time.Now,
	}
}

// Collect re-checks every candidate and soft-deletes those with no live
// occurrence left. A failure on one word is logged and the rest continue.
// It returns the number of words deleted.
func (c *OrphanCollector) Collect(ctx context.Context, wordIDs []uuid.UUID) (int, error) {
	deleted := 0
	for _, id := range wordIDs {
		if err := ctx.Err(); err != nil {
			return deleted, err
		}

		ok, err := c.words.SoftDeleteIfOrphan(ctx, id)
		if err != nil {
			c.log.WarnContext(ctx, "orphan check failed",
				slog.String("word_id", id.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if ok {
			deleted++
		}
	}

	if deleted > 0 {
		c.log.InfoContext(ctx, "orphan words deleted",
			slog.Int("candidates", len(wordIDs)),
			slog.Int("deleted", deleted),
		)
	}
	return deleted, nil
}

// Sweep soft-deletes every unreferenced live word not touched within grace.
func (c *OrphanCollector) Sweep(ctx context.Context, grace time.Duration) (int, error) {
	if grace < 0 {
		grace = 0
	}
	cutoff := c.now().Add(-grace)

	n, err := c.words.SweepOrphans(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("sweep orphans: %w", err)
	}

	c.log.InfoContext(ctx, "orphan sweep finished",
		slog.Time("cutoff", cutoff),
		slog.Int("deleted", n),
	)
	return n, nil
}
