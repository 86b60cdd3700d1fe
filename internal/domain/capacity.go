package domain

// SlotCapacity is the per-day-of-week override of how many bookings one slot
// label may hold.
type SlotCapacity struct {
	DayOfWeek    int `json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	SlotsPerTime int `json:"slotsPerTime"`
}

// Validate checks the day index and that the capacity is positive.
func (c SlotCapacity) Validate() error {
	if c.DayOfWeek < MinDayOfWeek || c.DayOfWeek > MaxDayOfWeek {
		return ErrInvalidDayOfWeek
	}
	if c.SlotsPerTime < MinSlotsPerTime || c.SlotsPerTime > MaxSlotsPerTime {
		return ErrInvalidSlotsPerTime
	}
	return nil
}

// SlotCapacityConfig holds one SlotCapacity entry per day of week.
type SlotCapacityConfig []SlotCapacity

// DefaultSlotCapacityConfig returns the default capacity (10) for every day.
func DefaultSlotCapacityConfig() SlotCapacityConfig {
	config := make(SlotCapacityConfig, 0, 7)
	for dow := MinDayOfWeek; dow <= MaxDayOfWeek; dow++ {
		config = append(config, SlotCapacity{DayOfWeek: dow, SlotsPerTime: DefaultSlotsPerTime})
	}
	return config
}

// SlotsPerTimeFor returns the capacity for the given day of week, falling
// back to the default when the day has no entry.
func (c SlotCapacityConfig) SlotsPerTimeFor(dayOfWeek int) int {
	for _, entry := range c {
		if entry.DayOfWeek == dayOfWeek {
			return entry.SlotsPerTime
		}
	}
	return DefaultSlotsPerTime
}

// WithUpdated returns a copy of the config with the entry for dayOfWeek
// replaced (or appended when missing).
func (c SlotCapacityConfig) WithUpdated(capacity SlotCapacity) SlotCapacityConfig {
	updated := make(SlotCapacityConfig, 0, len(c)+1)
	replaced := false
	for _, entry := range c {
		if entry.DayOfWeek == capacity.DayOfWeek {
			updated = append(updated, capacity)
			replaced = true
			continue
		}
		updated = append(updated, entry)
	}
	if !replaced {
		updated = append(updated, capacity)
	}
	return updated
}
