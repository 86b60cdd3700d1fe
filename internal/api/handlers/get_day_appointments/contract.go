package get_day_appointments

import (
	"context"

	"github.com/termindesk/appointment-service/internal/service/appointments/models"
)

type AppointmentService interface {
	GetDaySchedule(ctx context.Context, date string) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
