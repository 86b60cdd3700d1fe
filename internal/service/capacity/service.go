package capacity

import (
	"context"
	"errors"
	"fmt"

	"github.com/termindesk/appointment-service/internal/domain"
	capacityRepo "github.com/termindesk/appointment-service/internal/infra/storage/capacity"
	"github.com/termindesk/appointment-service/internal/service/capacity/models"
)

// Service сервис для работы с конфигурацией вместимости слотов
type Service struct {
	capacityRepo CapacityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса вместимости
func NewService(capacityRepo CapacityRepository, logger Logger) *Service {
	return &Service{
		capacityRepo: capacityRepo,
		logger:       logger,
	}
}

// Get возвращает полную конфигурацию вместимости: по записи на каждый
// день недели, дни без переопределения получают значение по умолчанию
func (s *Service) Get(ctx context.Context) (*models.CapacityConfigResponse, error) {
	s.logger.Info("Get: fetching capacity config")

	config, err := s.capacityRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(config), nil
}

// Update изменяет вместимость для одного дня недели.
// Неположительные и выходящие за диапазон значения отклоняются,
// существующие записи сверх новой вместимости сохраняются.
func (s *Service) Update(ctx context.Context, req *models.UpdateCapacityRequest) (*models.CapacityConfigResponse, error) {
	s.logger.Info("Update: setting capacity dayOfWeek=%d, slotsPerTime=%d",
		req.DayOfWeek, req.SlotsPerTime)

	capacity := domain.SlotCapacity{
		DayOfWeek:    req.DayOfWeek,
		SlotsPerTime: req.SlotsPerTime,
	}
	if err := capacity.Validate(); err != nil {
		s.logger.Warn("Update: invalid capacity (day=%d, slots=%d): %v",
			req.DayOfWeek, req.SlotsPerTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err := s.capacityRepo.Update(ctx, capacity)
	if errors.Is(err, capacityRepo.ErrSaveFailed) {
		s.logger.Warn("Update: capacity updated but config not persisted: %v", err)
	} else if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	config, err := s.capacityRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Update: failed to read back config: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: capacity for dayOfWeek=%d is now %d", req.DayOfWeek, req.SlotsPerTime)
	return models.FromDomainConfig(config), nil
}
