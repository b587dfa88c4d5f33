package rest

import (
	"net/http"

	"github.com/heartmarshall/deeplisten-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Study    *StudyHandler
	Content  *ContentHandler
	Activity *ActivityHandler
	Admin    *AdminHandler
}

// RouterConfig carries the cross-cutting middleware the router applies.
type RouterConfig struct {
	// Global wraps every route, outermost first (request id, recovery, CORS, auth, logging).
	Global []middleware.Middleware
	// ReviewLimit and ExtractLimit throttle the write-heavy endpoints.
	// Nil means unlimited.
	ReviewLimit  middleware.Middleware
	ExtractLimit middleware.Middleware
}

// NewRouter builds the HTTP handler for the API.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	user := func(hf http.HandlerFunc, limit ...middleware.Middleware) http.Handler {
		return middleware.Wrap(hf, append([]middleware.Middleware{middleware.RequireAuth}, limit...)...)
	}

	mux.Handle("POST /api/reviews", user(h.Study.SubmitReview, cfg.ReviewLimit))
	mux.Handle("GET /api/statuses/{id}", user(h.Study.GetStatus))
	mux.Handle("GET /api/statuses/{id}/reviews", user(h.Study.ListReviews))
	mux.Handle("POST /api/statuses/{id}/trash", user(h.Study.TrashStatus))
	mux.Handle("POST /api/statuses/{id}/restore", user(h.Study.RestoreStatus))

	mux.Handle("POST /api/materials", user(h.Content.CreateMaterial, cfg.ExtractLimit))
	mux.Handle("POST /api/materials/{id}/transcript", user(h.Content.AppendTranscript, cfg.ExtractLimit))
	mux.Handle("POST /api/materials/{id}/extract", user(h.Content.RequestExtraction, cfg.ExtractLimit))
	mux.Handle("DELETE /api/materials/{id}", user(h.Content.DeleteMaterial))
	mux.Handle("PATCH /api/sentences/{id}", user(h.Content.EditSentence, cfg.ExtractLimit))
	mux.Handle("DELETE /api/sentences/{id}", user(h.Content.DeleteSentence))

	mux.Handle("GET /api/activity/{date}", user(h.Activity.Get))

	mux.Handle("GET /admin/jobs/stats", middleware.Wrap(h.Admin.JobStats, middleware.AdminOnly))
	mux.Handle("GET /admin/jobs", middleware.Wrap(h.Admin.JobList, middleware.AdminOnly))
	mux.Handle("POST /admin/jobs/retry", middleware.Wrap(h.Admin.RetryFailed, middleware.AdminOnly))

	return middleware.Chain(cfg.Global...)(mux)
}
