package domain

import "github.com/termindesk/appointment-service/pkg/types"

// BlockedSlot is an administrative override that forces a slot's availability
// to zero. Blocking does not touch existing appointments at the slot; it only
// stops further availability from being reported there.
type BlockedSlot struct {
	ID     string           `json:"id"`
	Date   string           `json:"date"` // YYYY-MM-DD
	Time   types.TimeString `json:"time"` // slot label, HH:MM
	Reason *string          `json:"reason,omitempty"`
}
