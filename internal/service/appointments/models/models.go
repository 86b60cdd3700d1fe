package models

import (
	"time"

	"github.com/termindesk/appointment-service/internal/domain"
	"github.com/termindesk/appointment-service/pkg/types"
)

// Response модели

// AppointmentResponse ответ с данными записи на приём
type AppointmentResponse struct {
	ID         string           `json:"id"`
	Date       string           `json:"date"` // "2026-03-12"
	Time       types.TimeString `json:"time"` // "09:30"
	Name       string           `json:"name,omitempty"`
	Email      string           `json:"email,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
	SecretCode string           `json:"secretCode,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// CancelResponse результат отмены записи
type CancelResponse struct {
	Cancelled bool `json:"cancelled"` // false, если записи не было (no-op)
}

// BlockedSlotResponse блокировка в представлении дня сотрудника
type BlockedSlotResponse struct {
	ID     string           `json:"id"`
	Date   string           `json:"date"`
	Time   types.TimeString `json:"time"`
	Reason *string          `json:"reason,omitempty"`
}

// DayScheduleResponse представление дня для сотрудника:
// записи и блокировки одной даты
type DayScheduleResponse struct {
	Date         string                `json:"date"`
	Appointments []AppointmentResponse `json:"appointments"`
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         a.ID,
		Date:       a.Date,
		Time:       a.Time,
		Name:       a.Name,
		Email:      a.Email,
		Phone:      a.Phone,
		SecretCode: a.SecretCode,
		CreatedAt:  a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(list []domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
		Total:        len(list),
	}
	for i := range list {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(&list[i]))
	}
	return resp
}

// FromDomainBlockedSlotList конвертирует список блокировок в response
func FromDomainBlockedSlotList(list []domain.BlockedSlot) []BlockedSlotResponse {
	resp := make([]BlockedSlotResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, BlockedSlotResponse{
			ID:     b.ID,
			Date:   b.Date,
			Time:   b.Time,
			Reason: b.Reason,
		})
	}
	return resp
}
