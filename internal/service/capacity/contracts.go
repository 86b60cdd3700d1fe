package capacity

import (
	"context"

	"github.com/termindesk/appointment-service/internal/domain"
)

// CapacityRepository интерфейс репозитория конфигурации вместимости
type CapacityRepository interface {
	Get(ctx context.Context) (domain.SlotCapacityConfig, error)
	Update(ctx context.Context, capacity domain.SlotCapacity) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
