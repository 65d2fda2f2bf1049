package list_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tktkaws/booking-02/internal/api/handlers"
	"github.com/tktkaws/booking-02/internal/calendar"
	"github.com/tktkaws/booking-02/internal/service/calendarview"
)

const msgInvalidDates = "invalid from/to, expected YYYY-MM-DD"

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: from (YYYY-MM-DD, default today), to (YYYY-MM-DD, optional).
// Returns the flat chronological feed of the list view.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromKey := r.URL.Query().Get("from")
	if fromKey == "" {
		fromKey = calendar.DateKey(time.Now())
	}
	toKey := r.URL.Query().Get("to")

	userID := optionalUserID(r)

	parsed, err := h.service.ListParsed(r.Context(), userID, fromKey, toKey)
	if err != nil {
		switch {
		case errors.Is(err, calendarview.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid range: from=%s, to=%s", fromKey, toKey)
			handlers.RespondBadRequest(w, msgInvalidDates)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: from=%s, to=%s, error=%v", fromKey, toKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Listed %d bookings: from=%s, to=%s", len(parsed), fromKey, toKey)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewParsedBookingsJSON(parsed))
}

// optionalUserID reads the X-User-ID header if present. The list is public,
// so a missing or malformed header is not an error.
func optionalUserID(r *http.Request) *int64 {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		return nil
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return nil
	}
	return &userID
}
