package get_availability

import (
	"context"

	"github.com/termindesk/appointment-service/internal/domain"
)

// AppointmentRepository интерфейс леджера записей
type AppointmentRepository interface {
	// GetByDate получает все записи на конкретную дату
	GetByDate(ctx context.Context, date string) ([]domain.Appointment, error)
}

// BlockRepository интерфейс леджера заблокированных слотов
type BlockRepository interface {
	GetByDate(ctx context.Context, date string) ([]domain.BlockedSlot, error)
}

// CapacityRepository интерфейс конфигурации вместимости слотов
type CapacityRepository interface {
	SlotsPerTimeFor(ctx context.Context, dayOfWeek int) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
