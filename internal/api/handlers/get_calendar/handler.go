package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tktkaws/booking-02/internal/api/handlers"
	"github.com/tktkaws/booking-02/internal/calendar"
	"github.com/tktkaws/booking-02/internal/service/calendarview"
)

const (
	msgInvalidView = "invalid view, expected month, week or list"
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
)

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

// Handle GET /api/v1/calendar
// Query params: view (month|week|list, default month), date (YYYY-MM-DD,
// default today). The optional X-User-ID header selects whose color
// customization applies; anonymous viewers get organization defaults.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view, err := calendar.ParseView(r.URL.Query().Get("view"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid view: %v", err)
		handlers.RespondBadRequest(w, msgInvalidView)
		return
	}

	dateKey := r.URL.Query().Get("date")
	if dateKey == "" {
		dateKey = calendar.DateKey(time.Now())
	}

	userID := optionalUserID(r)

	data, err := h.service.GetCalendar(r.Context(), userID, dateKey, view)
	if err != nil {
		switch {
		case errors.Is(err, calendarview.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid date: %s", dateKey)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return

		default:
			// The service degrades to an empty calendar; serve it instead of
			// failing the whole view.
			h.logger.Error("GET /calendar - Fetch failed, serving empty calendar: date=%s, error=%v", dateKey, err)
		}
	}

	h.logger.Info("GET /calendar - Calendar computed: view=%s, date=%s, days=%d", view, dateKey, len(data.Days))
	handlers.RespondJSON(w, http.StatusOK, FromCalendarData(data))
}

// optionalUserID reads the X-User-ID header if present. The calendar is
// public, so a missing or malformed header is not an error.
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
