package create_appointment

import (
	"time"

	createAppointment "github.com/termindesk/appointment-service/internal/usecase/create_appointment"
	"github.com/termindesk/appointment-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date       string  `json:"date"` // "2026-03-12"
	Time       string  `json:"time"` // "09:30"
	Name       string  `json:"name,omitempty"`
	Email      string  `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	SecretCode string  `json:"secretCode,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Name       string  `json:"name,omitempty"`
	Email      string  `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	SecretCode string  `json:"secretCode,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	// Парсим время слота
	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Date:       r.Date,
		Time:       slotTime,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		SecretCode: r.SecretCode,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID,
		Date:       resp.Date,
		Time:       resp.Time.String(),
		Name:       resp.Name,
		Email:      resp.Email,
		Phone:      resp.Phone,
		SecretCode: resp.SecretCode,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
