package block_slot

import (
	"errors"
	"net/http"

	"github.com/termindesk/appointment-service/internal/api/handlers"
	"github.com/termindesk/appointment-service/internal/service/blocks"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные блокировки"
	msgClosedDay          = "день закрыт, блокировка не требуется"
	msgAlreadyBlocked     = "слот уже заблокирован"
)

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

// Handle POST /api/v1/employee/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employee/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /employee/blocks - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Block(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("POST /employee/blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, blocks.ErrClosedDay):
			h.logger.Warn("POST /employee/blocks - Closed day: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, blocks.ErrAlreadyBlocked):
			h.logger.Warn("POST /employee/blocks - Already blocked: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyBlocked)

		default:
			h.logger.Error("POST /employee/blocks - Failed to block slot: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /employee/blocks - Slot blocked: id=%s, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
