package domain

// Default configuration values
const (
	SlotDurationMinutes = 30
	DefaultSlotsPerTime = 10
	DefaultHorizonDays  = 28
)

// Business validation constants
const (
	MinSlotsPerTime = 1
	MaxSlotsPerTime = 100
	MinDayOfWeek    = 0 // Sunday
	MaxDayOfWeek    = 6 // Saturday
	MaxNameLength   = 200
	MaxEmailLength  = 254
	MaxPhoneLength  = 50
	MaxReasonLength = 500
	MaxSecretLength = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
