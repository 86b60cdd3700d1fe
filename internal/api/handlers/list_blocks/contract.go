package list_blocks

import (
	"context"

	"github.com/termindesk/appointment-service/internal/service/blocks/models"
)

type BlockService interface {
	ListByDate(ctx context.Context, date string) (*models.BlockedSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
