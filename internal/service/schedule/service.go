package schedule

import (
	"context"
	"fmt"

	"github.com/termindesk/appointment-service/internal/domain"
	"github.com/termindesk/appointment-service/internal/service/schedule/models"
)

// Горизонт бронирования ограничен сверху, чтобы запрос с огромным days
// не разворачивал годы дат.
const maxHorizonDays = 365

// Service сервис недельного расписания и горизонта бронирования
type Service struct {
	schedule     domain.WeeklySchedule
	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(schedule domain.WeeklySchedule, horizonDays int, logger Logger) *Service {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	return &Service{
		schedule:     schedule,
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListOpenDates возвращает даты, открытые для записи, начиная с завтрашнего
// дня. days задаёт горизонт в календарных днях; при days <= 0 используется
// горизонт по умолчанию. Закрытые дни недели пропускаются.
func (s *Service) ListOpenDates(ctx context.Context, days int) (*models.OpenDatesResponse, error) {
	if days <= 0 {
		days = s.horizonDays
	}
	if days > maxHorizonDays {
		s.logger.Warn("ListOpenDates: days=%d exceeds maximum, clamping to %d", days, maxHorizonDays)
		days = maxHorizonDays
	}

	s.logger.Info("ListOpenDates: scanning %d days ahead", days)

	now := s.timeProvider.Now()
	resp := &models.OpenDatesResponse{
		Dates: make([]models.OpenDateResponse, 0, days),
	}

	for offset := 1; offset <= days; offset++ {
		date := now.AddDate(0, 0, offset)
		dayOfWeek := domain.DayOfWeekFromDate(date)

		openingHours, err := s.schedule.ForDay(dayOfWeek)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if !openingHours.IsOpen {
			continue
		}

		resp.Dates = append(resp.Dates, models.OpenDateResponse{
			Date:      date.Format(domain.DateFormat),
			DayOfWeek: dayOfWeek,
		})
	}
	resp.Total = len(resp.Dates)

	s.logger.Info("ListOpenDates: %d of %d days are open", resp.Total, days)
	return resp, nil
}

// IsDateOpen проверяет, открыт ли день недели указанной даты
func (s *Service) IsDateOpen(_ context.Context, rawDate string) (bool, error) {
	date, err := domain.ParseDate(rawDate)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	openingHours, err := s.schedule.ForDay(domain.DayOfWeekFromDate(date))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return openingHours.IsOpen, nil
}

// WeeklySchedule возвращает недельное расписание сервиса
func (s *Service) WeeklySchedule() domain.WeeklySchedule {
	return s.schedule
}
