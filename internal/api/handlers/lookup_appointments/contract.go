package lookup_appointments

import (
	"context"

	"github.com/termindesk/appointment-service/internal/service/appointments/models"
)

type AppointmentService interface {
	Lookup(ctx context.Context, code string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
