package list_departments

import (
	"net/http"

	"github.com/tktkaws/booking-02/internal/api/handlers"
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

// Handle GET /api/v1/departments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	departments, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /departments - Failed to list departments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]handlers.DepartmentJSON, len(departments))
	for i, d := range departments {
		response[i] = handlers.NewDepartmentJSON(d)
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
