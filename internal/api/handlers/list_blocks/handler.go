package list_blocks

import (
	"errors"
	"net/http"

	"github.com/termindesk/appointment-service/internal/api/handlers"
	"github.com/termindesk/appointment-service/internal/service/blocks"
)

const msgInvalidDate = "некорректный параметр date, ожидается YYYY-MM-DD"

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employee/blocks?date={date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("GET /employee/blocks - Invalid date: date=%s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /employee/blocks - Failed to list blocks: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employee/blocks - Returned %d blocks for date=%s", result.Total, date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
