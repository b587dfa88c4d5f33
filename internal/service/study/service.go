package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
	"github.com/heartmarshall/deeplisten-backend/internal/service/study/fsrs"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type statusRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.UserWordStatus, error)
	GetForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.UserWordStatus, error)
	Update(ctx context.Context, s *domain.UserWordStatus) error
	Trash(ctx context.Context, userID, id uuid.UUID) error
	Restore(ctx context.Context, userID, id uuid.UUID) error
}

type reviewRepo interface {
	Create(ctx context.Context, r *domain.WordReview) error
	ListByStatus(ctx context.Context, userID, statusID uuid.UUID, limit int) ([]domain.WordReview, error)
}

type activityRepo interface {
	Increment(ctx context.Context, userID uuid.UUID, date time.Time, delta domain.ActivityDelta) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the study settings that are not FSRS parameters.
type Config struct {
	// MasteredStability is the stability, in days, at which a word counts as mastered.
	MasteredStability float64
	// FastResponseMs and SlowResponseMs map a correct answer's response time
	// to EASY (<= fast), GOOD (<= slow) or HARD.
	FastResponseMs int
	SlowResponseMs int
}

// DefaultConfig returns the built-in study settings.
func DefaultConfig() Config {
	return Config{
		MasteredStability: fsrs.DefaultMasteredStability,
		FastResponseMs:    3000,
		SlowResponseMs:    10000,
	}
}

// Service implements review submission and status trash/restore.
type Service struct {
	statuses statusRepo
	reviews  reviewRepo
	activity activityRepo
	tx       txManager
	log      *slog.Logger
	params   fsrs.Parameters
	cfg      Config
	now      func() time.Time
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	statuses statusRepo,
	reviews reviewRepo,
	activity activityRepo,
	tx txManager,
	params fsrs.Parameters,
	cfg Config,
) (*Service, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid FSRS parameters: %w", err)
	}
	if cfg.MasteredStability <= 0 {
		cfg.MasteredStability = fsrs.DefaultMasteredStability
	}

	return &Service{
		statuses: statuses,
		reviews:  reviews,
		activity: activity,
		tx:       tx,
		log:      log.With("service", "study"),
		params:   params,
		cfg:      cfg,
		now:      time.Now,
	}, nil
}
