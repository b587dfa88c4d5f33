package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a canonical dictionary entry shared by all users.
// Text is the normalized form and is unique; identity never changes.
type Word struct {
	ID            uuid.UUID
	Text          string
	Lemma         *string
	Phonetic      *string
	Definition    *string
	Translation   *string
	PartOfSpeech  *string
	CollinsStars  *int
	Oxford3000    bool
	Tags          *string
	BNCRank       *int
	FrequencyRank *int
	Exchange      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// IsDeleted returns true if the word has been soft-deleted as an orphan.
func (w *Word) IsDeleted() bool {
	return w.DeletedAt != nil
}

// Apply copies the enrichment fields of e onto the word.
func (w *Word) Apply(e WordEnrichment) {
	w.Lemma = e.Lemma
	w.Phonetic = e.Phonetic
	w.Definition = e.Definition
	w.Translation = e.Translation
	w.PartOfSpeech = e.PartOfSpeech
	w.CollinsStars = e.CollinsStars
	w.Oxford3000 = e.Oxford3000
	w.Tags = e.Tags
	w.BNCRank = e.BNCRank
	w.FrequencyRank = e.FrequencyRank
	w.Exchange = e.Exchange
}

// WordEnrichment is the record a dictionary lookup returns for a word.
// Every field is optional.
type WordEnrichment struct {
	Lemma         *string `json:"lemma,omitempty"`
	Phonetic      *string `json:"phonetic,omitempty"`
	Definition    *string `json:"definition,omitempty"`
	Translation   *string `json:"translation,omitempty"`
	PartOfSpeech  *string `json:"pos,omitempty"`
	CollinsStars  *int    `json:"collins,omitempty"`
	Oxford3000    bool    `json:"oxford,omitempty"`
	Tags          *string `json:"tag,omitempty"`
	BNCRank       *int    `json:"bnc,omitempty"`
	FrequencyRank *int    `json:"frq,omitempty"`
	Exchange      *string `json:"exchange,omitempty"`
}

// CreateOutcome tells a caller what a conflict-tolerant word create did.
type CreateOutcome string

const (
	CreateOutcomeCreated        CreateOutcome = "created"
	CreateOutcomeRevived        CreateOutcome = "revived"
	CreateOutcomeAlreadyExisted CreateOutcome = "already_existed"
)

// WordOccurrence links a word to the span of a sentence it appears in.
// Start and End are rune offsets into the sentence's effective content, End exclusive.
type WordOccurrence struct {
	ID         uuid.UUID
	WordID     uuid.UUID
	SentenceID uuid.UUID
	StartIndex int
	EndIndex   int
	CreatedAt  time.Time
}
