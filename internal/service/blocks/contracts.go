package blocks

import (
	"context"

	"github.com/termindesk/appointment-service/internal/domain"
	"github.com/termindesk/appointment-service/pkg/types"
)

// BlockRepository интерфейс леджера заблокированных слотов
type BlockRepository interface {
	Add(ctx context.Context, b domain.BlockedSlot) error
	Remove(ctx context.Context, id string) (bool, error)
	GetByDate(ctx context.Context, date string) ([]domain.BlockedSlot, error)
	IsBlocked(ctx context.Context, date string, slot types.TimeString) (bool, error)
}

// IDGenerator интерфейс генератора идентификаторов блокировок
type IDGenerator interface {
	BlockID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
