package domain

import "github.com/termindesk/appointment-service/pkg/types"

// TimeSlot is the availability view for one slot label on one date.
// It is computed fresh on every availability query and never persisted.
type TimeSlot struct {
	Time      types.TimeString
	Available int
	Booked    int
	Blocked   bool
}

// IsFull returns true if no further bookings fit into the slot.
func (s *TimeSlot) IsFull() bool {
	return s.Available <= 0
}

// IsBookable returns true if the slot can accept another booking.
func (s *TimeSlot) IsBookable() bool {
	return !s.Blocked && s.Available > 0
}
