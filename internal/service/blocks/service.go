package blocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/termindesk/appointment-service/internal/domain"
	blockRepo "github.com/termindesk/appointment-service/internal/infra/storage/block"
	"github.com/termindesk/appointment-service/internal/service/blocks/models"
	"github.com/termindesk/appointment-service/pkg/idgen"
)

// Service сервис для работы с блокировками слотов
type Service struct {
	schedule    domain.WeeklySchedule
	blockRepo   BlockRepository
	idGenerator IDGenerator
	logger      Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(
	schedule domain.WeeklySchedule,
	blockRepo BlockRepository,
	logger Logger,
) *Service {
	return &Service{
		schedule:    schedule,
		blockRepo:   blockRepo,
		idGenerator: &BlockIDGenerator{},
		logger:      logger,
	}
}

// BlockIDGenerator генератор идентификаторов блокировок на базе UUID
type BlockIDGenerator struct{}

// BlockID возвращает новый идентификатор блокировки
func (g *BlockIDGenerator) BlockID() string {
	return idgen.BlockID()
}

// Block блокирует слот для дальнейших бронирований.
// Блокировка закрытого дня отклоняется. Существующие записи на слоте
// не отменяются - блокировка лишь убирает слот из доступности.
func (s *Service) Block(ctx context.Context, req *models.BlockSlotRequest) (*models.BlockedSlotResponse, error) {
	s.logger.Info("Block: blocking slot date=%s, time=%s", req.Date, req.Time)

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		s.logger.Warn("Block: invalid date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Time.IsZero() {
		return nil, fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	dayOfWeek := domain.DayOfWeekFromDate(date)
	openingHours, err := s.schedule.ForDay(dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !openingHours.IsOpen {
		s.logger.Warn("Block: %s is closed (dayOfWeek=%d), nothing to block", req.Date, dayOfWeek)
		return nil, ErrClosedDay
	}

	blocked, err := s.blockRepo.IsBlocked(ctx, req.Date, req.Time)
	if err != nil {
		s.logger.Error("Block: failed to check existing block: %v", err)
		return nil, fmt.Errorf("%w: Block - repository error: %v", ErrInternal, err)
	}
	if blocked {
		s.logger.Warn("Block: slot %s %s is already blocked", req.Date, req.Time)
		return nil, ErrAlreadyBlocked
	}

	b := domain.BlockedSlot{
		ID:     s.idGenerator.BlockID(),
		Date:   req.Date,
		Time:   req.Time,
		Reason: req.Reason,
	}

	err = s.blockRepo.Add(ctx, b)
	if errors.Is(err, blockRepo.ErrSaveFailed) {
		s.logger.Warn("Block: block id=%s added but collection not persisted: %v", b.ID, err)
		return models.FromDomainBlockedSlot(&b), nil
	}
	if err != nil {
		s.logger.Error("Block: repository error: %v", err)
		return nil, fmt.Errorf("%w: Block - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Block: successfully blocked slot %s %s, id=%s", req.Date, req.Time, b.ID)
	return models.FromDomainBlockedSlot(&b), nil
}

// Unblock снимает блокировку по идентификатору.
// Снятие идемпотентно: отсутствие блокировки не является ошибкой.
func (s *Service) Unblock(ctx context.Context, id string) (*models.UnblockResponse, error) {
	s.logger.Info("Unblock: removing block id=%s", id)

	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	removed, err := s.blockRepo.Remove(ctx, id)
	if errors.Is(err, blockRepo.ErrSaveFailed) {
		s.logger.Warn("Unblock: block id=%s removed but collection not persisted: %v", id, err)
		return &models.UnblockResponse{Unblocked: removed}, nil
	}
	if err != nil {
		s.logger.Error("Unblock: repository error for block id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Unblock - repository error: %v", ErrInternal, err)
	}

	if !removed {
		s.logger.Info("Unblock: block id=%s not found, treating as no-op", id)
	} else {
		s.logger.Info("Unblock: successfully removed block id=%s", id)
	}

	return &models.UnblockResponse{Unblocked: removed}, nil
}

// ListByDate возвращает блокировки на дату, отсортированные по времени слота
func (s *Service) ListByDate(ctx context.Context, date string) (*models.BlockedSlotListResponse, error) {
	s.logger.Info("ListByDate: fetching blocks for date=%s", date)

	if _, err := domain.ParseDate(date); err != nil {
		s.logger.Warn("ListByDate: invalid date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.blockRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: date=%s has %d blocked slots", date, len(list))
	return models.FromDomainBlockedSlotList(list), nil
}
