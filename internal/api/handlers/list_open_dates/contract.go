package list_open_dates

import (
	"context"

	"github.com/termindesk/appointment-service/internal/service/schedule/models"
)

type ScheduleService interface {
	ListOpenDates(ctx context.Context, days int) (*models.OpenDatesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
