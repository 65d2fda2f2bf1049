package delete_department

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tktkaws/booking-02/internal/api/handlers"
	"github.com/tktkaws/booking-02/internal/api/middleware"
	"github.com/tktkaws/booking-02/internal/service/departments"
)

const (
	msgInvalidDepartmentID = "invalid department ID"
	msgMissingUserID       = "missing user ID"
	msgNotFound            = "department not found"
	msgForbidden           = "access denied"
	msgInUse               = "department still has bookings"
)

type Handler struct {
	service DepartmentService
	logger  Logger
}

func NewHandler(service DepartmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/departments/{departmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	departmentID, err := strconv.ParseInt(vars["departmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /departments/{id} - Invalid department ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDepartmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /departments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), userID, departmentID); err != nil {
		switch {
		case errors.Is(err, departments.ErrDepartmentNotFound):
			h.logger.Warn("DELETE /departments/{id} - Department not found: department_id=%d", departmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, departments.ErrDepartmentInUse):
			h.logger.Warn("DELETE /departments/{id} - Department in use: department_id=%d", departmentID)
			handlers.RespondError(w, http.StatusConflict, msgInUse)

		case errors.Is(err, departments.ErrAccessDenied):
			h.logger.Warn("DELETE /departments/{id} - Access denied: department_id=%d, user_id=%d", departmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /departments/{id} - Failed to delete department: department_id=%d, error=%v", departmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /departments/{id} - Department deleted: department_id=%d, user_id=%d", departmentID, userID)
	w.WriteHeader(http.StatusNoContent)
}
