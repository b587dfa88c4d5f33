package study

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

const maxResponseTimeMs = 600_000

// SubmitReviewInput holds one review. Either Grade is set, or Correct
// (optionally with ResponseTimeMs) is set and the grade is derived from it.
type SubmitReviewInput struct {
	StatusID       uuid.UUID
	Grade          *domain.ReviewGrade
	Correct        *bool
	ResponseTimeMs *int
	Mode           domain.ReviewMode
}

// Validate checks all fields and collects all errors.
func (i *SubmitReviewInput) Validate() error {
	var v domain.ValidationError

	if i.StatusID == uuid.Nil {
		v.Add("status_id", "required")
	}
	if i.Grade == nil && i.Correct == nil {
		v.Add("grade", "grade or correct is required")
	}
	if i.Grade != nil && !i.Grade.IsValid() {
		v.Add("grade", "must be AGAIN, HARD, GOOD, or EASY")
	}
	if i.Mode != "" && !i.Mode.IsValid() {
		v.Add("mode", "must be FLASHCARD, SPELLING, LISTENING, or CHOICE")
	}
	if i.ResponseTimeMs != nil && (*i.ResponseTimeMs < 0 || *i.ResponseTimeMs > maxResponseTimeMs) {
		v.Add("response_time_ms", "must be between 0 and 600000")
	}

	return v.Err()
}

// ListReviewsInput holds the parameters for listing a status's review history.
type ListReviewsInput struct {
	StatusID uuid.UUID
	Limit    int
}

// Validate checks all fields and collects all errors.
func (i *ListReviewsInput) Validate() error {
	var v domain.ValidationError

	if i.StatusID == uuid.Nil {
		v.Add("status_id", "required")
	}
	if i.Limit < 0 || i.Limit > 200 {
		v.Add("limit", "must be between 0 and 200")
	}

	return v.Err()
}
