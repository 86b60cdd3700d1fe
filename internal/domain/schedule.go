package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/termindesk/appointment-service/pkg/types"
)

var (
	// ErrInvalidDayOfWeek возвращается при дне недели вне диапазона 0..6
	ErrInvalidDayOfWeek = errors.New("day of week must be in range 0..6")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidInterval возвращается, когда интервал рабочих часов задан частично
	ErrInvalidInterval = errors.New("opening interval must have both start and end")

	// ErrInvalidSlotsPerTime возвращается при недопустимой вместимости слота
	ErrInvalidSlotsPerTime = errors.New("slotsPerTime must be a positive integer")
)

// OpeningHours describes the opening intervals for one day of the week.
// A day may have up to two intervals (morning and afternoon). When IsOpen
// is false the interval fields are ignored.
type OpeningHours struct {
	DayOfWeek      int               `json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	IsOpen         bool              `json:"isOpen"`
	MorningStart   *types.TimeString `json:"morningStart,omitempty"`
	MorningEnd     *types.TimeString `json:"morningEnd,omitempty"`
	AfternoonStart *types.TimeString `json:"afternoonStart,omitempty"`
	AfternoonEnd   *types.TimeString `json:"afternoonEnd,omitempty"`
}

// Interval is one contiguous open period within a day.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// Intervals returns the configured open intervals in fixed order:
// morning first, then afternoon. Closed days have no intervals.
func (oh OpeningHours) Intervals() []Interval {
	if !oh.IsOpen {
		return nil
	}

	intervals := make([]Interval, 0, 2)
	if oh.MorningStart != nil && oh.MorningEnd != nil {
		intervals = append(intervals, Interval{Start: *oh.MorningStart, End: *oh.MorningEnd})
	}
	if oh.AfternoonStart != nil && oh.AfternoonEnd != nil {
		intervals = append(intervals, Interval{Start: *oh.AfternoonStart, End: *oh.AfternoonEnd})
	}
	return intervals
}

// Validate checks the day index, interval completeness and time formats.
func (oh OpeningHours) Validate() error {
	if oh.DayOfWeek < MinDayOfWeek || oh.DayOfWeek > MaxDayOfWeek {
		return ErrInvalidDayOfWeek
	}
	if !oh.IsOpen {
		return nil
	}

	pairs := []struct {
		start, end *types.TimeString
	}{
		{oh.MorningStart, oh.MorningEnd},
		{oh.AfternoonStart, oh.AfternoonEnd},
	}

	for _, p := range pairs {
		if (p.start == nil) != (p.end == nil) {
			return ErrInvalidInterval
		}
		if p.start == nil {
			continue
		}
		if err := p.start.Validate(); err != nil {
			return err
		}
		if err := p.end.Validate(); err != nil {
			return err
		}
		if !p.start.IsBefore(*p.end) {
			return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidInterval, *p.start, *p.end)
		}
	}

	return nil
}

// WeeklySchedule is the static weekly template: exactly one entry per day of
// week. It is defined at configuration time and immutable afterwards.
type WeeklySchedule [7]OpeningHours

// ForDay returns the entry for the given day of week (0 = Sunday).
func (ws WeeklySchedule) ForDay(dayOfWeek int) (OpeningHours, error) {
	if dayOfWeek < MinDayOfWeek || dayOfWeek > MaxDayOfWeek {
		return OpeningHours{}, ErrInvalidDayOfWeek
	}
	return ws[dayOfWeek], nil
}

// Validate checks every entry and that entries sit at their own day index.
func (ws WeeklySchedule) Validate() error {
	for i, oh := range ws {
		if oh.DayOfWeek != i {
			return fmt.Errorf("%w: entry at index %d has dayOfWeek %d", ErrInvalidDayOfWeek, i, oh.DayOfWeek)
		}
		if err := oh.Validate(); err != nil {
			return fmt.Errorf("day %d: %w", i, err)
		}
	}
	return nil
}

// DefaultWeeklySchedule returns the standard office week: Monday to Thursday
// 08:00-12:00 and 13:00-16:00, Friday 08:00-12:00 and 13:00-14:00, weekend
// closed.
func DefaultWeeklySchedule() WeeklySchedule {
	ts := func(s string) *types.TimeString {
		v := types.TimeString(s)
		return &v
	}

	weekday := func(dow int, afternoonEnd string) OpeningHours {
		return OpeningHours{
			DayOfWeek:      dow,
			IsOpen:         true,
			MorningStart:   ts("08:00"),
			MorningEnd:     ts("12:00"),
			AfternoonStart: ts("13:00"),
			AfternoonEnd:   ts(afternoonEnd),
		}
	}

	return WeeklySchedule{
		{DayOfWeek: 0, IsOpen: false},
		weekday(1, "16:00"),
		weekday(2, "16:00"),
		weekday(3, "16:00"),
		weekday(4, "16:00"),
		weekday(5, "14:00"), // Friday closes earlier
		{DayOfWeek: 6, IsOpen: false},
	}
}

// ParseDate parses a YYYY-MM-DD calendar date in the local time zone.
// All date handling in the service goes through this function so the same
// local-date interpretation is used everywhere; parsing via ISO timestamps
// can shift the day near UTC offsets.
func ParseDate(s string) (time.Time, error) {
	date, err := time.ParseInLocation(DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return date, nil
}

// DayOfWeekFromDate resolves the 0..6 day index (0 = Sunday) from a date.
func DayOfWeekFromDate(date time.Time) int {
	return int(date.Weekday())
}
