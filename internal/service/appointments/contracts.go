package appointments

import (
	"context"

	"github.com/termindesk/appointment-service/internal/domain"
)

// AppointmentRepository интерфейс леджера записей на приём
type AppointmentRepository interface {
	Remove(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByDate(ctx context.Context, date string) ([]domain.Appointment, error)
	GetBySecretCode(ctx context.Context, code string) ([]domain.Appointment, error)
}

// BlockRepository интерфейс леджера заблокированных слотов
type BlockRepository interface {
	GetByDate(ctx context.Context, date string) ([]domain.BlockedSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
