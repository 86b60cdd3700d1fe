package domain

import (
	"strings"
	"time"

	"github.com/termindesk/appointment-service/pkg/types"
)

// Appointment represents one booked slot in the ledger.
// The record is immutable after creation; cancelling removes it.
//
// The subject reference comes in two deployment variants that may coexist:
// free-form contact details (name, email, optional phone) and an opaque
// caller-chosen secret code used to look the booking up later.
type Appointment struct {
	ID   string           `json:"id"`   // confirmation code, also the cancel capability
	Date string           `json:"date"` // YYYY-MM-DD
	Time types.TimeString `json:"time"` // slot label, HH:MM

	Name       string  `json:"name,omitempty"`
	Email      string  `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	SecretCode string  `json:"secretCode,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// HasContactDetails returns true if the identity-record variant is filled in.
func (a *Appointment) HasContactDetails() bool {
	return a.Name != "" && a.Email != ""
}

// MatchesSecretCode compares the secret code case-insensitively.
func (a *Appointment) MatchesSecretCode(code string) bool {
	return a.SecretCode != "" && strings.EqualFold(a.SecretCode, code)
}

// SortKey is the date+time concatenation used for chronological ordering.
// Both parts are fixed-width zero-padded, so lexicographic order is
// chronological order.
func (a *Appointment) SortKey() string {
	return a.Date + string(a.Time)
}
