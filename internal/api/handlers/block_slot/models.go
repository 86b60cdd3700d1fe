package block_slot

import (
	"github.com/termindesk/appointment-service/internal/service/blocks/models"
	"github.com/termindesk/appointment-service/pkg/types"
)

// BlockSlotRequest HTTP request model
type BlockSlotRequest struct {
	Date   string  `json:"date"` // "2026-03-12"
	Time   string  `json:"time"` // "09:30"
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *BlockSlotRequest) ToServiceRequest() (*models.BlockSlotRequest, error) {
	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &models.BlockSlotRequest{
		Date:   r.Date,
		Time:   slotTime,
		Reason: r.Reason,
	}, nil
}
