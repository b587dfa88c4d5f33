package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserWordStatus is the per-user learning state of a word.
type UserWordStatus struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	WordID        uuid.UUID
	Status        LearningStatus
	State         CardState
	Step          int
	Stability     float64
	Difficulty    float64
	ElapsedDays   int
	ScheduledDays int
	Reps          int
	Lapses        int
	Due           time.Time
	LastReview    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// IsDeleted returns true if the status is in the trash.
func (s *UserWordStatus) IsDeleted() bool {
	return s.DeletedAt != nil
}

// Snapshot captures the scheduling fields of the status.
func (s *UserWordStatus) Snapshot() StatusSnapshot {
	return StatusSnapshot{
		Status:        s.Status,
		State:         s.State,
		Step:          s.Step,
		Stability:     s.Stability,
		Difficulty:    s.Difficulty,
		ElapsedDays:   s.ElapsedDays,
		ScheduledDays: s.ScheduledDays,
		Reps:          s.Reps,
		Lapses:        s.Lapses,
		Due:           s.Due,
		LastReview:    s.LastReview,
	}
}

// StatusSnapshot is the scheduling part of a UserWordStatus.
type StatusSnapshot struct {
	Status        LearningStatus `json:"status"`
	State         CardState      `json:"state"`
	Step          int            `json:"step"`
	Stability     float64        `json:"stability"`
	Difficulty    float64        `json:"difficulty"`
	ElapsedDays   int            `json:"elapsed_days"`
	ScheduledDays int            `json:"scheduled_days"`
	Reps          int            `json:"reps"`
	Lapses        int            `json:"lapses"`
	Due           time.Time      `json:"due"`
	LastReview    *time.Time     `json:"last_review,omitempty"`
}

// StatusOutcome tells a caller what EnsureForWords did to a (user, word) status.
type StatusOutcome string

const (
	StatusOutcomeCreated  StatusOutcome = "created"
	StatusOutcomeRestored StatusOutcome = "restored"
	StatusOutcomeExisting StatusOutcome = "existing"
)

// WordReview is an immutable record of one review event.
type WordReview struct {
	ID             uuid.UUID
	StatusID       uuid.UUID
	UserID         uuid.UUID
	WordID         uuid.UUID
	Grade          ReviewGrade
	Mode           ReviewMode
	ResponseTimeMs *int
	Correct        *bool
	PrevState      StatusSnapshot
	State          CardState
	Stability      float64
	Difficulty     float64
	ScheduledDays  int
	Due            time.Time
	ReviewedAt     time.Time
}

// DailyActivity counts what a user did on one UTC day.
type DailyActivity struct {
	UserID         uuid.UUID
	Date           time.Time
	WordsAdded     int
	SentencesAdded int
	ReviewsDone    int
}

// ActivityDelta is an increment applied to a DailyActivity row.
type ActivityDelta struct {
	WordsAdded     int
	SentencesAdded int
	ReviewsDone    int
}

// IsZero reports whether the delta would change nothing.
func (d ActivityDelta) IsZero() bool {
	return d.WordsAdded == 0 && d.SentencesAdded == 0 && d.ReviewsDone == 0
}

// UTCDate truncates t to midnight UTC.
func UTCDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
