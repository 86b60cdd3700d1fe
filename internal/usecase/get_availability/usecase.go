package get_availability

import (
	"context"
	"fmt"

	"github.com/termindesk/appointment-service/internal/domain"
)

// UseCase use case расчёта доступности слотов на дату.
// Результат всегда вычисляется заново по текущему состоянию леджеров -
// никакого кэширования и побочных эффектов.
type UseCase struct {
	schedule        domain.WeeklySchedule
	slotDuration    int
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	capacityRepo    CapacityRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	schedule domain.WeeklySchedule,
	slotDuration int,
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	capacityRepo CapacityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		schedule:        schedule,
		slotDuration:    slotDuration,
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		capacityRepo:    capacityRepo,
		logger:          logger,
	}
}

// Execute выполняет расчёт доступности слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	dayOfWeek := domain.DayOfWeekFromDate(date)

	// 2. Закрытый день - пустой список слотов независимо от содержимого леджеров
	openingHours, err := uc.schedule.ForDay(dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !openingHours.IsOpen {
		uc.logger.Info("GetAvailability: %s is closed (dayOfWeek=%d)", req.Date, dayOfWeek)
		return &Response{
			Date:      req.Date,
			DayOfWeek: dayOfWeek,
			IsOpen:    false,
			Slots:     []domain.TimeSlot{},
		}, nil
	}

	// 3. Генерируем метки слотов по рабочим часам
	labels, err := generateSlotLabels(openingHours, uc.slotDuration)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate slot labels: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slot labels: %v", ErrInternal, err)
	}

	// 4. Вместимость слота для этого дня недели
	capacity, err := uc.capacityRepo.SlotsPerTimeFor(ctx, dayOfWeek)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get capacity: %v", err)
		return nil, fmt.Errorf("%w: failed to get capacity: %v", ErrInternal, err)
	}

	// 5. Записи и блокировки ровно на эту дату
	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	// 6. Собираем view доступности
	slots := buildTimeSlots(labels, capacity, appointments, blocks)

	uc.logger.Info("GetAvailability: date=%s, slots=%d, booked=%d, blocked=%d",
		req.Date, len(slots), len(appointments), len(blocks))

	return &Response{
		Date:      req.Date,
		DayOfWeek: dayOfWeek,
		IsOpen:    true,
		Slots:     slots,
	}, nil
}
