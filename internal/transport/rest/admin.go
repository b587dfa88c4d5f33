package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

type queueService interface {
	Stats(ctx context.Context) (domain.JobStats, error)
	List(ctx context.Context, status domain.JobStatus, limit, offset int) ([]domain.Job, error)
	RetryFailed(ctx context.Context) (int, error)
}

// AdminHandler serves operator endpoints for the background job queue.
// Routes must be wrapped with middleware.AdminOnly.
type AdminHandler struct {
	queue queueService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(queue queueService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		queue: queue,
		log:   logger.With("handler", "admin"),
	}
}

type retryResponse struct {
	Retried int `json:"retried"`
}

// JobStats returns job counts by status.
// GET /admin/jobs/stats
func (h *AdminHandler) JobStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.queue.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// JobList returns jobs filtered by status.
// GET /admin/jobs?status=failed&limit=50&offset=0
func (h *AdminHandler) JobList(w http.ResponseWriter, r *http.Request) {
	status := domain.JobStatus(r.URL.Query().Get("status"))
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	jobs, err := h.queue.List(r.Context(), status, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]jobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobResponse(&jobs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// RetryFailed moves failed jobs back to pending.
// POST /admin/jobs/retry
func (h *AdminHandler) RetryFailed(w http.ResponseWriter, r *http.Request) {
	n, err := h.queue.RetryFailed(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, retryResponse{Retried: n})
}
