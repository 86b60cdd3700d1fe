package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/termindesk/appointment-service/internal/domain"
	appointmentRepo "github.com/termindesk/appointment-service/internal/infra/storage/appointment"
)

// Количество попыток при коллизии кода подтверждения.
// Коллизии практически невозможны, но леджер их проверяет, поэтому
// честно перегенерируем код вместо возврата ошибки клиенту.
const maxIDAttempts = 3

// UseCase use case создания записи на приём.
// Реализует атомарный check-then-commit: проверка доступности слота и
// добавление записи выполняются под одним мьютексом, что исключает
// гонку с овербукингом при конкурентных бронированиях.
type UseCase struct {
	mu sync.Mutex

	schedule        domain.WeeklySchedule
	slotDuration    int
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	capacityRepo    CapacityRepository
	idGenerator     IDGenerator
	timeProvider    TimeProvider
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
		idGenerator:     &ConfirmationCodeGenerator{},
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, time=%s", req.Date, req.Time)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	dayOfWeek := domain.DayOfWeekFromDate(date)

	// 2. День должен быть открыт
	openingHours, err := uc.schedule.ForDay(dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !openingHours.IsOpen {
		uc.logger.Warn("CreateAppointment: %s is closed (dayOfWeek=%d)", req.Date, dayOfWeek)
		return nil, ErrClosedDay
	}

	// 3. Метка времени должна входить в сетку слотов этого дня
	labels, err := generateSlotLabels(openingHours, uc.slotDuration)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to generate slot labels: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slot labels: %v", ErrInternal, err)
	}
	if !containsLabel(labels, req.Time) {
		uc.logger.Warn("CreateAppointment: time %s is not a slot of %s", req.Time, req.Date)
		return nil, ErrInvalidTimeSlot
	}

	// 4. Атомарный check-then-commit для слота (date, time)
	uc.mu.Lock()
	defer uc.mu.Unlock()

	// 4.1. Слот не должен быть заблокирован
	blocked, err := uc.blockRepo.IsBlocked(ctx, req.Date, req.Time)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to check block: %v", err)
		return nil, fmt.Errorf("%w: failed to check block: %v", ErrInternal, err)
	}
	if blocked {
		uc.logger.Warn("CreateAppointment: slot %s %s is blocked", req.Date, req.Time)
		return nil, ErrSlotBlocked
	}

	// 4.2. Перепроверяем вместимость по текущему состоянию леджера
	capacity, err := uc.capacityRepo.SlotsPerTimeFor(ctx, dayOfWeek)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get capacity: %v", err)
		return nil, fmt.Errorf("%w: failed to get capacity: %v", ErrInternal, err)
	}

	booked, err := uc.appointmentRepo.CountByDateTime(ctx, req.Date, req.Time)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	if booked >= capacity {
		uc.logger.Warn("CreateAppointment: slot %s %s is full, %d/%d taken",
			req.Date, req.Time, booked, capacity)
		return nil, ErrSlotNotAvailable
	}

	// 4.3. Коммитим запись
	created, err := uc.commit(ctx, req)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s, %d/%d spots taken",
		created.ID, booked+1, capacity)

	return &Response{
		ID:         created.ID,
		Date:       created.Date,
		Time:       created.Time,
		Name:       created.Name,
		Email:      created.Email,
		Phone:      created.Phone,
		SecretCode: created.SecretCode,
		CreatedAt:  created.CreatedAt,
	}, nil
}

// commit создает запись с новым кодом подтверждения и добавляет её в леджер.
// Вызывается под мьютексом. Ошибка сохранения в хранилище не отменяет
// запись - леджер в памяти остаётся источником истины.
func (uc *UseCase) commit(ctx context.Context, req *Request) (*domain.Appointment, error) {
	a := domain.Appointment{
		Date:       req.Date,
		Time:       req.Time,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		SecretCode: req.SecretCode,
		CreatedAt:  uc.timeProvider.Now(),
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		a.ID = uc.idGenerator.ConfirmationCode()

		err := uc.appointmentRepo.Add(ctx, a)
		if errors.Is(err, appointmentRepo.ErrDuplicateID) {
			uc.logger.Warn("CreateAppointment: confirmation code collision, regenerating (attempt %d)", attempt+1)
			continue
		}
		if errors.Is(err, appointmentRepo.ErrSaveFailed) {
			// Запись принята, но не сохранилась в хранилище - warning, не отказ
			uc.logger.Warn("CreateAppointment: appointment id=%s accepted but not persisted: %v", a.ID, err)
			return &a, nil
		}
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to add appointment: %v", err)
			return nil, fmt.Errorf("%w: failed to add appointment: %v", ErrInternal, err)
		}

		return &a, nil
	}

	return nil, fmt.Errorf("%w: could not generate a unique confirmation code", ErrInternal)
}
