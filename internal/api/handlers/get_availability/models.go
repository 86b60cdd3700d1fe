package get_availability

import (
	getAvailability "github.com/termindesk/appointment-service/internal/usecase/get_availability"
)

// TimeSlotResponse HTTP модель одного слота
type TimeSlotResponse struct {
	Time      string `json:"time"` // "09:30"
	Available int    `json:"available"`
	Booked    int    `json:"booked"`
	Blocked   bool   `json:"blocked"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date      string             `json:"date"`
	DayOfWeek int                `json:"dayOfWeek"`
	IsOpen    bool               `json:"isOpen"`
	Slots     []TimeSlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]TimeSlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, TimeSlotResponse{
			Time:      s.Time.String(),
			Available: s.Available,
			Booked:    s.Booked,
			Blocked:   s.Blocked,
		})
	}

	return &AvailabilityResponse{
		Date:      resp.Date,
		DayOfWeek: resp.DayOfWeek,
		IsOpen:    resp.IsOpen,
		Slots:     slots,
	}
}
