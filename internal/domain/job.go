package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Job is a durable unit of background work.
type Job struct {
	ID           uuid.UUID
	Kind         JobKind
	Payload      json.RawMessage
	Status       JobStatus
	Attempts     int
	ErrorMessage *string
	CreatedAt    time.Time
	StartedAt    *time.Time
	FinishedAt   *time.Time
}

// JobStats holds queue counts by status.
type JobStats struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Done       int `json:"done"`
	Failed     int `json:"failed"`
	Total      int `json:"total"`
}

// ExtractMaterialPayload is the payload of an extract_material job.
type ExtractMaterialPayload struct {
	MaterialID uuid.UUID `json:"material_id"`
}

// SweepOrphansPayload is the payload of a sweep_orphans job.
type SweepOrphansPayload struct {
	WordIDs []uuid.UUID `json:"word_ids"`
}
