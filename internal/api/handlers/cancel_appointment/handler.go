package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/termindesk/appointment-service/internal/api/handlers"
	"github.com/termindesk/appointment-service/internal/service/appointments"
)

const msgInvalidID = "некорректный код подтверждения"

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

// Handle DELETE /api/v1/appointments/{appointmentId}
// Отмена идемпотентна: повторный запрос с тем же кодом тоже вернёт 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID := vars["appointmentId"]

	result, err := h.service.Cancel(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID")
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to cancel appointment: id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Cancel processed: id=%s, cancelled=%t",
		appointmentID, result.Cancelled)
	handlers.RespondJSON(w, http.StatusOK, result)
}
