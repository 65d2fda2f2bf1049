package company_color

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
	msgForbidden          = "access denied"
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

// HandleGet GET /api/v1/settings/company-color
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	color, err := h.service.GetCompanyColor(r.Context())
	if err != nil {
		h.logger.Error("GET /settings/company-color - Failed to get color: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CompanyColorJSON{Color: color})
}

// HandleUpdate PUT /api/v1/settings/company-color
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /settings/company-color - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CompanyColorJSON
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/company-color - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateCompanyColor(r.Context(), userID, req.Color); err != nil {
		switch {
		case errors.Is(err, colors.ErrInvalidColor):
			h.logger.Warn("PUT /settings/company-color - Invalid color: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidColor)

		case errors.Is(err, colors.ErrAccessDenied):
			h.logger.Warn("PUT /settings/company-color - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /settings/company-color - Failed to update color: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings/company-color - Color updated: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, CompanyColorJSON{Color: req.Color})
}
