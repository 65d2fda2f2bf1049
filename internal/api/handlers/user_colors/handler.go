package user_colors

import (
	"errors"
	"net/http"

	"github.com/tktkaws/booking-02/internal/api/handlers"
	"github.com/tktkaws/booking-02/internal/api/middleware"
	"github.com/tktkaws/booking-02/internal/service/colors"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidColor       = "invalid color, expected a hex value like #aabbcc"
	msgMissingUserID      = "missing user ID"
)

type Handler struct {
	service ColorsService
	logger  Logger
}

func NewHandler(service ColorsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/settings/colors
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /settings/colors - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	stored, err := h.service.GetUserColors(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /settings/colors - Failed to get settings: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSettings(stored))
}

// HandleUpdate PUT /api/v1/settings/colors
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /settings/colors - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UserColorsJSON
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/colors - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	input, err := req.ToSettings()
	if err != nil {
		h.logger.Warn("PUT /settings/colors - Invalid settings: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateUserColors(r.Context(), userID, input); err != nil {
		switch {
		case errors.Is(err, colors.ErrInvalidColor):
			h.logger.Warn("PUT /settings/colors - Invalid color: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidColor)

		default:
			h.logger.Error("PUT /settings/colors - Failed to update settings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings/colors - Settings updated: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, req)
}
