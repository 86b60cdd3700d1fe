package get_availability

import (
	"fmt"
	"time"

	"github.com/termindesk/appointment-service/internal/domain"
)

// validateRequest валидирует входные данные и парсит дату
func validateRequest(req *Request) (time.Time, error) {
	if req.Date == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return date, nil
}
