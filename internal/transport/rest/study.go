package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
	"github.com/heartmarshall/deeplisten-backend/internal/service/study"
)

type studyService interface {
	SubmitReview(ctx context.Context, input study.SubmitReviewInput) (*domain.UserWordStatus, error)
	GetStatus(ctx context.Context, statusID uuid.UUID) (*domain.UserWordStatus, error)
	ListReviews(ctx context.Context, input study.ListReviewsInput) ([]domain.WordReview, error)
	TrashStatus(ctx context.Context, statusID uuid.UUID) error
	RestoreStatus(ctx context.Context, statusID uuid.UUID) (*domain.UserWordStatus, error)
}

// StudyHandler serves review and word status endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type submitReviewRequest struct {
	StatusID       uuid.UUID           `json:"status_id"`
	Grade          *domain.ReviewGrade `json:"grade"`
	Correct        *bool               `json:"correct"`
	ResponseTimeMs *int                `json:"response_time_ms"`
	Mode           domain.ReviewMode   `json:"mode"`
}

// SubmitReview handles POST /api/reviews.
func (h *StudyHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req submitReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status, err := h.svc.SubmitReview(r.Context(), study.SubmitReviewInput{
		StatusID:       req.StatusID,
		Grade:          req.Grade,
		Correct:        req.Correct,
		ResponseTimeMs: req.ResponseTimeMs,
		Mode:           req.Mode,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatusResponse(status))
}

// GetStatus handles GET /api/statuses/{id}.
func (h *StudyHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status, err := h.svc.GetStatus(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatusResponse(status))
}

// ListReviews handles GET /api/statuses/{id}/reviews?limit=50.
func (h *StudyHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reviews, err := h.svc.ListReviews(r.Context(), study.ListReviewsInput{StatusID: id, Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponses(reviews))
}

// TrashStatus handles POST /api/statuses/{id}/trash.
func (h *StudyHandler) TrashStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.TrashStatus(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RestoreStatus handles POST /api/statuses/{id}/restore.
func (h *StudyHandler) RestoreStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status, err := h.svc.RestoreStatus(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatusResponse(status))
}
