package lookup_appointments

import (
	"errors"
	"net/http"

	"github.com/termindesk/appointment-service/internal/api/handlers"
	"github.com/termindesk/appointment-service/internal/service/appointments"
)

const msgMissingCode = "отсутствует параметр code"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?code={secretCode}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")

	result, err := h.service.Lookup(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Missing lookup code")
			handlers.RespondBadRequest(w, msgMissingCode)

		default:
			h.logger.Error("GET /appointments - Failed to lookup appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Lookup returned %d appointments", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
