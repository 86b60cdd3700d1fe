package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/termindesk/appointment-service/internal/domain"
)

// validateRequest валидирует входные данные и парсит дату.
// Запись должна идентифицировать субъекта: секретным кодом,
// контактными данными (имя + email), либо и тем и другим.
func validateRequest(req *Request) (time.Time, error) {
	if req.Date == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Time.IsZero() {
		return time.Time{}, fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if err := validateSubjectReference(req); err != nil {
		return time.Time{}, err
	}

	return date, nil
}

// validateSubjectReference проверяет, что субъект записи задан корректно
func validateSubjectReference(req *Request) error {
	hasContact := req.Name != "" || req.Email != "" || req.Phone != nil
	hasSecret := req.SecretCode != ""

	if !hasContact && !hasSecret {
		return fmt.Errorf("%w: either secretCode or name with email is required", ErrInvalidInput)
	}

	if hasContact {
		if req.Name == "" {
			return fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		if len(req.Name) > domain.MaxNameLength {
			return fmt.Errorf("%w: name is too long", ErrInvalidInput)
		}
		if req.Email == "" {
			return fmt.Errorf("%w: email is required", ErrInvalidInput)
		}
		if len(req.Email) > domain.MaxEmailLength || !strings.Contains(req.Email, "@") {
			return fmt.Errorf("%w: invalid email", ErrInvalidInput)
		}
		if req.Phone != nil && len(*req.Phone) > domain.MaxPhoneLength {
			return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
		}
	}

	if hasSecret && len(req.SecretCode) > domain.MaxSecretLength {
		return fmt.Errorf("%w: secretCode is too long", ErrInvalidInput)
	}

	return nil
}
