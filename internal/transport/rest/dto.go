package rest

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

type statusResponse struct {
	ID            string     `json:"id"`
	WordID        string     `json:"word_id"`
	Status        string     `json:"status"`
	State         string     `json:"state"`
	Step          int        `json:"step"`
	Stability     float64    `json:"stability"`
	Difficulty    float64    `json:"difficulty"`
	ScheduledDays int        `json:"scheduled_days"`
	Reps          int        `json:"reps"`
	Lapses        int        `json:"lapses"`
	Due           time.Time  `json:"due"`
	LastReview    *time.Time `json:"last_review,omitempty"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}

func toStatusResponse(s *domain.UserWordStatus) statusResponse {
	return statusResponse{
		ID:            s.ID.String(),
		WordID:        s.WordID.String(),
		Status:        s.Status.String(),
		State:         s.State.String(),
		Step:          s.Step,
		Stability:     s.Stability,
		Difficulty:    s.Difficulty,
		ScheduledDays: s.ScheduledDays,
		Reps:          s.Reps,
		Lapses:        s.Lapses,
		Due:           s.Due,
		LastReview:    s.LastReview,
		DeletedAt:     s.DeletedAt,
	}
}

type reviewResponse struct {
	ID             string                `json:"id"`
	Grade          string                `json:"grade"`
	Mode           string                `json:"mode"`
	Correct        *bool                 `json:"correct,omitempty"`
	ResponseTimeMs *int                  `json:"response_time_ms,omitempty"`
	Previous       domain.StatusSnapshot `json:"previous"`
	State          string                `json:"state"`
	Stability      float64               `json:"stability"`
	Difficulty     float64               `json:"difficulty"`
	ScheduledDays  int                   `json:"scheduled_days"`
	Due            time.Time             `json:"due"`
	ReviewedAt     time.Time             `json:"reviewed_at"`
}

func toReviewResponses(reviews []domain.WordReview) []reviewResponse {
	out := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, reviewResponse{
			ID:             r.ID.String(),
			Grade:          r.Grade.String(),
			Mode:           r.Mode.String(),
			Correct:        r.Correct,
			ResponseTimeMs: r.ResponseTimeMs,
			Previous:       r.PrevState,
			State:          r.State.String(),
			Stability:      r.Stability,
			Difficulty:     r.Difficulty,
			ScheduledDays:  r.ScheduledDays,
			Due:            r.Due,
			ReviewedAt:     r.ReviewedAt,
		})
	}
	return out
}

type materialResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Processed   bool       `json:"processed"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toMaterialResponse(m *domain.Material) materialResponse {
	return materialResponse{
		ID:          m.ID.String(),
		Title:       m.Title,
		Processed:   m.Processed,
		ProcessedAt: m.ProcessedAt,
		CreatedAt:   m.CreatedAt,
	}
}

type sentenceResponse struct {
	ID              string     `json:"id"`
	MaterialID      string     `json:"material_id"`
	Position        int        `json:"position"`
	OriginalContent string     `json:"original_content"`
	EditedContent   *string    `json:"edited_content,omitempty"`
	Content         string     `json:"content"`
	StartTime       float64    `json:"start_time"`
	EndTime         float64    `json:"end_time"`
	ExtractedAt     *time.Time `json:"extracted_at,omitempty"`
}

func toSentenceResponse(s *domain.Sentence) sentenceResponse {
	return sentenceResponse{
		ID:              s.ID.String(),
		MaterialID:      s.MaterialID.String(),
		Position:        s.Position,
		OriginalContent: s.OriginalContent,
		EditedContent:   s.EditedContent,
		Content:         s.EffectiveContent(),
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		ExtractedAt:     s.ExtractedAt,
	}
}

type jobResponse struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	Status       string          `json:"status"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	Attempts     int             `json:"attempts"`
	ErrorMessage *string         `json:"error,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	StartedAt    *time.Time      `json:"started_at,omitempty"`
	FinishedAt   *time.Time      `json:"finished_at,omitempty"`
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:           j.ID.String(),
		Kind:         j.Kind.String(),
		Status:       j.Status.String(),
		Payload:      j.Payload,
		Attempts:     j.Attempts,
		ErrorMessage: j.ErrorMessage,
		CreatedAt:    j.CreatedAt,
		StartedAt:    j.StartedAt,
		FinishedAt:   j.FinishedAt,
	}
}

type activityResponse struct {
	Date           string `json:"date"`
	WordsAdded     int    `json:"words_added"`
	SentencesAdded int    `json:"sentences_added"`
	ReviewsDone    int    `json:"reviews_done"`
}

func toActivityResponse(a domain.DailyActivity) activityResponse {
	return activityResponse{
		Date:           a.Date.Format(time.DateOnly),
		WordsAdded:     a.WordsAdded,
		SentencesAdded: a.SentencesAdded,
		ReviewsDone:    a.ReviewsDone,
	}
}
