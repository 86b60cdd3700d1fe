package models

import "github.com/termindesk/appointment-service/internal/domain"

// Request модели

// UpdateCapacityRequest запрос на изменение вместимости для дня недели
type UpdateCapacityRequest struct {
	DayOfWeek    int `json:"dayOfWeek"`    // 0 = воскресенье .. 6 = суббота
	SlotsPerTime int `json:"slotsPerTime"` // Мест в одном слоте
}

// Response модели

// SlotCapacityResponse вместимость одного дня недели
type SlotCapacityResponse struct {
	DayOfWeek    int `json:"dayOfWeek"`
	SlotsPerTime int `json:"slotsPerTime"`
}

// CapacityConfigResponse полная конфигурация вместимости:
// по одной записи на каждый день недели
type CapacityConfigResponse struct {
	Capacities []SlotCapacityResponse `json:"capacities"`
}

// FromDomainConfig конвертирует конфигурацию в полное 7-дневное представление.
// Дни без переопределения получают значение по умолчанию.
func FromDomainConfig(config domain.SlotCapacityConfig) *CapacityConfigResponse {
	resp := &CapacityConfigResponse{
		Capacities: make([]SlotCapacityResponse, 0, 7),
	}
	for day := domain.MinDayOfWeek; day <= domain.MaxDayOfWeek; day++ {
		resp.Capacities = append(resp.Capacities, SlotCapacityResponse{
			DayOfWeek:    day,
			SlotsPerTime: config.SlotsPerTimeFor(day),
		})
	}
	return resp
}
