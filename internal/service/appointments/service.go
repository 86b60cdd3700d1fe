package appointments

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/termindesk/appointment-service/internal/domain"
	appointmentRepo "github.com/termindesk/appointment-service/internal/infra/storage/appointment"
	"github.com/termindesk/appointment-service/internal/service/appointments/models"
)

// Service сервис для работы с записями на приём
type Service struct {
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		logger:          logger,
	}
}

// Cancel отменяет запись по коду подтверждения.
// Отмена идемпотентна: отсутствие записи не является ошибкой.
// Ошибка сохранения в хранилище не отменяет удаление из леджера.
func (s *Service) Cancel(ctx context.Context, id string) (*models.CancelResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	removed, err := s.appointmentRepo.Remove(ctx, id)
	if errors.Is(err, appointmentRepo.ErrSaveFailed) {
		s.logger.Warn("Cancel: appointment id=%s removed but collection not persisted: %v", id, err)
		return &models.CancelResponse{Cancelled: removed}, nil
	}
	if err != nil {
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !removed {
		s.logger.Info("Cancel: appointment id=%s not found, treating as no-op", id)
	} else {
		s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)
	}

	return &models.CancelResponse{Cancelled: removed}, nil
}

// Lookup возвращает записи по секретному коду (без учёта регистра)
// или по коду подтверждения, отсортированные по дате и времени
func (s *Service) Lookup(ctx context.Context, code string) (*models.AppointmentListResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	s.logger.Info("Lookup: fetching appointments by reference code")

	list, err := s.appointmentRepo.GetBySecretCode(ctx, code)
	if err != nil {
		s.logger.Error("Lookup: repository error: %v", err)
		return nil, fmt.Errorf("%w: Lookup - repository error: %v", ErrInternal, err)
	}

	// Код подтверждения тоже служит ссылкой на запись
	if a, err := s.appointmentRepo.GetByID(ctx, strings.ToUpper(code)); err == nil {
		duplicate := false
		for _, existing := range list {
			if existing.ID == a.ID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			list = append(list, *a)
			sort.Slice(list, func(i, j int) bool {
				return list[i].SortKey() < list[j].SortKey()
			})
		}
	}

	s.logger.Info("Lookup: found %d appointments", len(list))
	return models.FromDomainAppointmentList(list), nil
}

// GetByID возвращает запись по коду подтверждения
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	a, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(a), nil
}

// GetDaySchedule возвращает представление дня для сотрудника:
// все записи и блокировки на дату
func (s *Service) GetDaySchedule(ctx context.Context, date string) (*models.DayScheduleResponse, error) {
	s.logger.Info("GetDaySchedule: fetching schedule for date=%s", date)

	if _, err := domain.ParseDate(date); err != nil {
		s.logger.Warn("GetDaySchedule: invalid date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appts, err := s.appointmentRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetDaySchedule: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: GetDaySchedule - repository error: %v", ErrInternal, err)
	}

	blocks, err := s.blockRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetDaySchedule: block repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: GetDaySchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDaySchedule: date=%s has %d appointments, %d blocked slots",
		date, len(appts), len(blocks))

	apptList := models.FromDomainAppointmentList(appts)
	return &models.DayScheduleResponse{
		Date:         date,
		Appointments: apptList.Appointments,
		BlockedSlots: models.FromDomainBlockedSlotList(blocks),
	}, nil
}
