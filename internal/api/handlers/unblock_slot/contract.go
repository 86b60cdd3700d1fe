package unblock_slot

import (
	"context"

	"github.com/termindesk/appointment-service/internal/service/blocks/models"
)

type BlockService interface {
	Unblock(ctx context.Context, id string) (*models.UnblockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
