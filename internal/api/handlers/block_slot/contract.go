package block_slot

import (
	"context"

	"github.com/termindesk/appointment-service/internal/service/blocks/models"
)

type BlockService interface {
	Block(ctx context.Context, req *models.BlockSlotRequest) (*models.BlockedSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
