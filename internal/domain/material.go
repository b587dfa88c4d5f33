package domain

import (
	"time"

	"github.com/google/uuid"
)

// Material is a piece of uploaded media whose transcript is split into sentences.
type Material struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Processed   bool
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsDeleted returns true if the material has been soft-deleted.
func (m *Material) IsDeleted() bool {
	return m.DeletedAt != nil
}

// Sentence is one transcript line of a material.
type Sentence struct {
	ID              uuid.UUID
	MaterialID      uuid.UUID
	Position        int
	OriginalContent string
	EditedContent   *string
	StartTime       float64
	EndTime         float64
	ExtractedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// EffectiveContent returns the edit override if present, else the original content.
func (s *Sentence) EffectiveContent() string {
	if s.EditedContent != nil {
		return *s.EditedContent
	}
	return s.OriginalContent
}

// IsDeleted returns true if the sentence has been soft-deleted.
func (s *Sentence) IsDeleted() bool {
	return s.DeletedAt != nil
}

// TranscriptSegment is one timed line produced by the speech-to-text process.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// ExtractionSummary is reported to the notifier after a material is processed.
type ExtractionSummary struct {
	MaterialID     uuid.UUID `json:"material_id"`
	UserID         uuid.UUID `json:"user_id"`
	SentenceCount  int       `json:"sentence_count"`
	WordCount      int       `json:"word_count"`
	NewWords       int       `json:"new_words"`
	RestoredWords  int       `json:"restored_words"`
	OccurrenceRows int       `json:"occurrence_rows"`
	FinishedAt     time.Time `json:"finished_at"`
}
