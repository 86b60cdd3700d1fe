package models

import (
	"github.com/termindesk/appointment-service/internal/domain"
	"github.com/termindesk/appointment-service/pkg/types"
)

// Request модели

// BlockSlotRequest запрос на блокировку слота
type BlockSlotRequest struct {
	Date   string           `json:"date"` // "2026-03-12"
	Time   types.TimeString `json:"time"` // "09:30"
	Reason *string          `json:"reason,omitempty"`
}

// Response модели

// BlockedSlotResponse ответ с данными блокировки
type BlockedSlotResponse struct {
	ID     string           `json:"id"`
	Date   string           `json:"date"`
	Time   types.TimeString `json:"time"`
	Reason *string          `json:"reason,omitempty"`
}

// BlockedSlotListResponse список блокировок
type BlockedSlotListResponse struct {
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
	Total        int                   `json:"total"`
}

// UnblockResponse результат снятия блокировки
type UnblockResponse struct {
	Unblocked bool `json:"unblocked"` // false, если блокировки не было (no-op)
}

// FromDomainBlockedSlot конвертирует domain модель в response
func FromDomainBlockedSlot(b *domain.BlockedSlot) *BlockedSlotResponse {
	return &BlockedSlotResponse{
		ID:     b.ID,
		Date:   b.Date,
		Time:   b.Time,
		Reason: b.Reason,
	}
}

// FromDomainBlockedSlotList конвертирует список domain моделей в response
func FromDomainBlockedSlotList(list []domain.BlockedSlot) *BlockedSlotListResponse {
	resp := &BlockedSlotListResponse{
		BlockedSlots: make([]BlockedSlotResponse, 0, len(list)),
		Total:        len(list),
	}
	for i := range list {
		resp.BlockedSlots = append(resp.BlockedSlots, *FromDomainBlockedSlot(&list[i]))
	}
	return resp
}
