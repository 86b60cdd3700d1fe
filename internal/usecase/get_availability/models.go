package get_availability

import "github.com/termindesk/appointment-service/internal/domain"

// Request модель запроса доступности слотов
type Request struct {
	Date string // Дата в формате YYYY-MM-DD
}

// Response модель ответа с доступностью слотов на дату.
// Для закрытого дня IsOpen = false и Slots пуст.
type Response struct {
	Date      string
	DayOfWeek int
	IsOpen    bool
	Slots     []domain.TimeSlot
}
