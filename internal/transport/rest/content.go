package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
	"github.com/heartmarshall/deeplisten-backend/internal/service/content"
)

type contentService interface {
	CreateMaterial(ctx context.Context, input content.CreateMaterialInput) (*domain.Material, error)
	AppendTranscript(ctx context.Context, input content.AppendTranscriptInput) (int, error)
	RequestExtraction(ctx context.Context, materialID uuid.UUID) (*domain.Job, error)
	DeleteMaterial(ctx context.Context, materialID uuid.UUID) error
	EditSentence(ctx context.Context, input content.EditSentenceInput) (*domain.Sentence, error)
	DeleteSentence(ctx context.Context, sentenceID uuid.UUID) error
}

// ContentHandler serves material and sentence endpoints.
type ContentHandler struct {
	svc contentService
	log *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(svc contentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, log: logger.With("handler", "content")}
}

type createMaterialRequest struct {
	Title    string                     `json:"title"`
	Segments []domain.TranscriptSegment `json:"segments"`
}

type appendTranscriptRequest struct {
	Segments []domain.TranscriptSegment `json:"segments"`
}

type appendTranscriptResponse struct {
	Appended int `json:"appended"`
}

type editSentenceRequest struct {
	// Null clears the override.
	Content *string `json:"content"`
}

// CreateMaterial handles POST /api/materials.
func (h *ContentHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req createMaterialRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.svc.CreateMaterial(r.Context(), content.CreateMaterialInput{
		Title:    req.Title,
		Segments: req.Segments,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMaterialResponse(m))
}

// AppendTranscript handles POST /api/materials/{id}/transcript.
func (h *ContentHandler) AppendTranscript(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req appendTranscriptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.AppendTranscript(r.Context(), content.AppendTranscriptInput{
		MaterialID: id,
		Segments:   req.Segments,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, appendTranscriptResponse{Appended: n})
}

// RequestExtraction handles POST /api/materials/{id}/extract.
func (h *ContentHandler) RequestExtraction(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	job, err := h.svc.RequestExtraction(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, toJobResponse(job))
}

// DeleteMaterial handles DELETE /api/materials/{id}.
func (h *ContentHandler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteMaterial(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// EditSentence handles PATCH /api/sentences/{id}.
func (h *ContentHandler) EditSentence(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req editSentenceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.EditSentence(r.Context(), content.EditSentenceInput{
		SentenceID: id,
		Content:    req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSentenceResponse(s))
}

// DeleteSentence handles DELETE /api/sentences/{id}.
func (h *ContentHandler) DeleteSentence(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteSentence(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
