// Package notify holds the notifier used when no message broker is configured.
package notify

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// LogNotifier writes extraction summaries to the log.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("component", "notifier")}
}

// ExtractionCompleted logs the summary. It never fails.
func (n *LogNotifier) ExtractionCompleted(ctx context.Context, s domain.ExtractionSummary) error {
	n.log.InfoContext(ctx, "extraction completed",
		slog.String("material_id", s.MaterialID.String()),
		slog.String("user_id", s.UserID.String()),
		slog.Int("sentences", s.SentenceCount),
		slog.Int("words", s.WordCount),
		slog.Int("new_words", s.NewWords),
		slog.Int("restored_words", s.RestoredWords),
		slog.Int("occurrences", s.OccurrenceRows),
	)
	return nil
}
