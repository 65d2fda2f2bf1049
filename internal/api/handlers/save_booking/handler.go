package save_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tktkaws/booking-02/internal/api/handlers"
	"github.com/tktkaws/booking-02/internal/api/middleware"
	saveBooking "github.com/tktkaws/booking-02/internal/usecase/save_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking ID"
	msgMissingUserID      = "missing user ID"
	msgNotFound           = "booking not found"
	msgForbidden          = "access denied"
	msgInvalidInput       = "invalid booking data"
)

type Handler struct {
	useCase SaveBookingUseCase
	logger  Logger
}

func NewHandler(useCase SaveBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/bookings
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, nil)
}

// HandleUpdate PUT /api/v1/bookings/{bookingId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	h.handle(w, r, &bookingID)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, bookingID *int64) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("SaveBooking - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SaveBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("SaveBooking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, bookingID))
	if err != nil {
		var validationErr *saveBooking.ValidationFailedError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("SaveBooking - Reservation rules rejected input: user_id=%d, errors=%v",
				userID, validationErr.Errors)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, ValidationFailedResponse{
				Valid:  false,
				Errors: validationErr.Errors,
			})

		case errors.Is(err, saveBooking.ErrBookingNotFound):
			h.logger.Warn("SaveBooking - Booking not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, saveBooking.ErrAccessDenied):
			h.logger.Warn("SaveBooking - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, saveBooking.ErrInvalidInput):
			h.logger.Warn("SaveBooking - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("SaveBooking - Failed to save booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if bookingID == nil {
		status = http.StatusCreated
	}

	h.logger.Info("SaveBooking - Booking saved: booking_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
