package save_department

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tktkaws/booking-02/internal/api/handlers"
	"github.com/tktkaws/booking-02/internal/api/middleware"
	"github.com/tktkaws/booking-02/internal/domain"
	"github.com/tktkaws/booking-02/internal/service/departments"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDepartmentID = "invalid department ID"
	msgInvalidInput        = "invalid department data"
	msgMissingUserID       = "missing user ID"
	msgNotFound            = "department not found"
	msgForbidden           = "access denied"
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

// HandleCreate POST /api/v1/departments
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, nil)
}

// HandleUpdate PUT /api/v1/departments/{departmentId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	departmentID, err := strconv.ParseInt(vars["departmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /departments/{id} - Invalid department ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDepartmentID)
		return
	}

	h.handle(w, r, &departmentID)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, departmentID *int64) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("SaveDepartment - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SaveDepartmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("SaveDepartment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var result *domain.Department
	var err error
	if departmentID == nil {
		result, err = h.service.Create(r.Context(), userID, req.Name, req.DefaultColor)
	} else {
		result, err = h.service.Update(r.Context(), userID, *departmentID, req.Name, req.DefaultColor)
	}
	if err != nil {
		switch {
		case errors.Is(err, departments.ErrDepartmentNotFound):
			h.logger.Warn("SaveDepartment - Department not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, departments.ErrAccessDenied):
			h.logger.Warn("SaveDepartment - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, departments.ErrInvalidInput):
			h.logger.Warn("SaveDepartment - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("SaveDepartment - Failed to save department: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if departmentID == nil {
		status = http.StatusCreated
	}

	h.logger.Info("SaveDepartment - Department saved: department_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, status, handlers.NewDepartmentJSON(result))
}
