package get_day_appointments

import (
	"errors"
	"net/http"

	"github.com/termindesk/appointment-service/internal/api/handlers"
	"github.com/termindesk/appointment-service/internal/service/appointments"
)

const msgInvalidDate = "некорректный параметр date, ожидается YYYY-MM-DD"

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

// Handle GET /api/v1/employee/appointments?date={date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.service.GetDaySchedule(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /employee/appointments - Invalid date: date=%s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /employee/appointments - Failed to get day schedule: date=%s, error=%v",
				date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employee/appointments - Day schedule: date=%s, appointments=%d, blocks=%d",
		date, len(result.Appointments), len(result.BlockedSlots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
