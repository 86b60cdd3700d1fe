package update_capacity_config

import (
	"context"

	"github.com/termindesk/appointment-service/internal/service/capacity/models"
)

type CapacityService interface {
	Update(ctx context.Context, req *models.UpdateCapacityRequest) (*models.CapacityConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
