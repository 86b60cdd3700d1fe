package create_appointment

import (
	"context"
	"time"

	"github.com/termindesk/appointment-service/internal/domain"
	"github.com/termindesk/appointment-service/pkg/idgen"
	"github.com/termindesk/appointment-service/pkg/types"
)

// AppointmentRepository интерфейс леджера записей
type AppointmentRepository interface {
	// Add добавляет запись; доступность слота репозиторий не проверяет
	Add(ctx context.Context, a domain.Appointment) error
	// CountByDateTime получает число записей на конкретный слот
	CountByDateTime(ctx context.Context, date string, slot types.TimeString) (int, error)
}

// BlockRepository интерфейс леджера заблокированных слотов
type BlockRepository interface {
	IsBlocked(ctx context.Context, date string, slot types.TimeString) (bool, error)
}

// CapacityRepository интерфейс конфигурации вместимости слотов
type CapacityRepository interface {
	SlotsPerTimeFor(ctx context.Context, dayOfWeek int) (int, error)
}

// IDGenerator интерфейс генератора кодов подтверждения (для тестирования)
type IDGenerator interface {
	ConfirmationCode() string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// ConfirmationCodeGenerator production-генератор кодов подтверждения
type ConfirmationCodeGenerator struct{}

// ConfirmationCode возвращает новый код подтверждения
func (g *ConfirmationCodeGenerator) ConfirmationCode() string {
	return idgen.ConfirmationCode()
}
