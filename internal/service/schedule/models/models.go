package models

// OpenDateResponse открытая для записи дата
type OpenDateResponse struct {
	Date      string `json:"date"`      // "2026-03-12"
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье .. 6 = суббота
}

// OpenDatesResponse список открытых дат в пределах горизонта бронирования
type OpenDatesResponse struct {
	Dates []OpenDateResponse `json:"dates"`
	Total int                `json:"total"`
}
