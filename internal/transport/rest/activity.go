package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
	"github.com/heartmarshall/deeplisten-backend/pkg/ctxutil"
)

type activityReader interface {
	Get(ctx context.Context, userID uuid.UUID, date time.Time) (domain.DailyActivity, error)
}

// ActivityHandler serves the per-day learning counters.
type ActivityHandler struct {
	activity activityReader
	log      *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(activity activityReader, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{activity: activity, log: logger.With("handler", "activity")}
}

// Get handles GET /api/activity/{date}, where date is YYYY-MM-DD (UTC).
// Days without activity report zero counters.
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.ErrUnauthorized)
		return
	}

	date, err := time.Parse(time.DateOnly, r.PathValue("date"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("date", "must be YYYY-MM-DD"))
		return
	}

	a, err := h.activity.Get(r.Context(), userID, date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponse(a))
}
