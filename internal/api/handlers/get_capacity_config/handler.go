package get_capacity_config

import (
	"net/http"

	"github.com/termindesk/appointment-service/internal/api/handlers"
)

type Handler struct {
	service CapacityService
	logger  Logger
}

func NewHandler(service CapacityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employee/capacity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /employee/capacity - Failed to get capacity config: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /employee/capacity - Capacity config retrieved")
	handlers.RespondJSON(w, http.StatusOK, result)
}
