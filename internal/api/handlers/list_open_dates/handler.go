package list_open_dates

import (
	"net/http"
	"strconv"

	"github.com/termindesk/appointment-service/internal/api/handlers"
)

const msgInvalidDays = "некорректный параметр days"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/open-dates?days={N}
// Без параметра days используется горизонт бронирования по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /open-dates - Invalid days parameter: days=%s", raw)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	result, err := h.service.ListOpenDates(r.Context(), days)
	if err != nil {
		h.logger.Error("GET /open-dates - Failed to list open dates: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /open-dates - Returned %d open dates", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
