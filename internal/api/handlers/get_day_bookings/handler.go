package get_day_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tktkaws/booking-02/internal/api/handlers"
	"github.com/tktkaws/booking-02/internal/service/bookings"
)

const (
	msgInvalidDate      = "invalid date, expected YYYY-MM-DD"
	msgInvalidExcludeID = "invalid excludeId"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/days/{date}/bookings
// Query params: excludeId (optional) drops the booking being edited. This is
// the overlap-candidate feed for the reservation form.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateKey := vars["date"]

	var excludeID *int64
	if raw := r.URL.Query().Get("excludeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /days/{date}/bookings - Invalid excludeId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		excludeID = &id
	}

	dayBookings, err := h.service.ListForDay(r.Context(), dateKey, excludeID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /days/{date}/bookings - Invalid date: %s", dateKey)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /days/{date}/bookings - Failed to list bookings: date=%s, error=%v", dateKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := make([]handlers.BookingJSON, len(dayBookings))
	for i, b := range dayBookings {
		response[i] = handlers.NewBookingJSON(b)
	}

	h.logger.Info("GET /days/{date}/bookings - Listed %d bookings: date=%s", len(response), dateKey)
	handlers.RespondJSON(w, http.StatusOK, response)
}
