package unblock_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/termindesk/appointment-service/internal/api/handlers"
	"github.com/termindesk/appointment-service/internal/service/blocks"
)

const msgInvalidID = "некорректный ID блокировки"

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

// Handle DELETE /api/v1/employee/blocks/{blockId}
// Снятие блокировки идемпотентно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockID := vars["blockId"]

	result, err := h.service.Unblock(r.Context(), blockID)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("DELETE /employee/blocks/{id} - Invalid block ID")
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("DELETE /employee/blocks/{id} - Failed to unblock slot: id=%s, error=%v",
				blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /employee/blocks/{id} - Unblock processed: id=%s, unblocked=%t",
		blockID, result.Unblocked)
	handlers.RespondJSON(w, http.StatusOK, result)
}
