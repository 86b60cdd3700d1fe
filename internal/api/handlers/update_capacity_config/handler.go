package update_capacity_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/termindesk/appointment-service/internal/api/handlers"
	"github.com/termindesk/appointment-service/internal/service/capacity"
	"github.com/termindesk/appointment-service/internal/service/capacity/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDayOfWeek   = "некорректный день недели, ожидается 0..6"
	msgInvalidCapacity    = "некорректная вместимость слота"
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

// Handle PUT /api/v1/employee/capacity/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	dayOfWeek, err := strconv.Atoi(vars["dayOfWeek"])
	if err != nil {
		h.logger.Warn("PUT /employee/capacity/{dayOfWeek} - Invalid day of week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	var req UpdateCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /employee/capacity/{dayOfWeek} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &models.UpdateCapacityRequest{
		DayOfWeek:    dayOfWeek,
		SlotsPerTime: req.SlotsPerTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, capacity.ErrInvalidInput):
			h.logger.Warn("PUT /employee/capacity/{dayOfWeek} - Invalid capacity: day=%d, slots=%d",
				dayOfWeek, req.SlotsPerTime)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		default:
			h.logger.Error("PUT /employee/capacity/{dayOfWeek} - Failed to update capacity: day=%d, error=%v",
				dayOfWeek, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /employee/capacity/{dayOfWeek} - Capacity updated: day=%d, slots=%d",
		dayOfWeek, req.SlotsPerTime)
	handlers.RespondJSON(w, http.StatusOK, result)
}
