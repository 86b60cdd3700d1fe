package get_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termindesk/appointment-service/internal/domain"
	"github.com/termindesk/appointment-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAppointments struct {
	appts []domain.Appointment
}

func (f *fakeAppointments) GetByDate(_ context.Context, date string) ([]domain.Appointment, error) {
	result := make([]domain.Appointment, 0)
	for _, a := range f.appts {
		if a.Date == date {
			result = append(result, a)
		}
	}
	return result, nil
}

type fakeBlocks struct {
	blocks []domain.BlockedSlot
}

func (f *fakeBlocks) GetByDate(_ context.Context, date string) ([]domain.BlockedSlot, error) {
	result := make([]domain.BlockedSlot, 0)
	for _, b := range f.blocks {
		if b.Date == date {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeCapacity struct {
	slots int
}

func (f *fakeCapacity) SlotsPerTimeFor(_ context.Context, _ int) (int, error) {
	return f.slots, nil
}

func newTestUseCase(appts []domain.Appointment, blocks []domain.BlockedSlot, capacity int) *UseCase {
	return NewUseCase(
		domain.DefaultWeeklySchedule(),
		domain.SlotDurationMinutes,
		&fakeAppointments{appts: appts},
		&fakeBlocks{blocks: blocks},
		&fakeCapacity{slots: capacity},
		nopLogger{},
	)
}

// 2026-03-09 - понедельник, 2026-03-08 - воскресенье, 2026-03-13 - пятница
const (
	monday = "2026-03-09"
	sunday = "2026-03-08"
	friday = "2026-03-13"
)

func TestExecuteOpenDayFullGrid(t *testing.T) {
	uc := newTestUseCase(nil, nil, 10)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	require.True(t, resp.IsOpen)
	require.Equal(t, 1, resp.DayOfWeek)

	// 8 утренних слотов (08:00-12:00) + 6 дневных (13:00-16:00)
	require.Len(t, resp.Slots, 14)
	require.Equal(t, types.TimeString("08:00"), resp.Slots[0].Time)
	require.Equal(t, types.TimeString("11:30"), resp.Slots[7].Time)
	require.Equal(t, types.TimeString("13:00"), resp.Slots[8].Time)
	require.Equal(t, types.TimeString("15:30"), resp.Slots[13].Time)

	for _, slot := range resp.Slots {
		require.Equal(t, 10, slot.Available)
		require.Zero(t, slot.Booked)
		require.False(t, slot.Blocked)
	}
}

func TestExecuteFridayShortAfternoon(t *testing.T) {
	uc := newTestUseCase(nil, nil, 10)

	resp, err := uc.Execute(context.Background(), &Request{Date: friday})
	require.NoError(t, err)

	// Пятница: 8 утренних + 2 дневных (13:00-14:00)
	require.Len(t, resp.Slots, 10)
	require.Equal(t, types.TimeString("13:30"), resp.Slots[9].Time)
}

func TestExecuteClosedDay(t *testing.T) {
	// Леджеры непустые - закрытый день всё равно возвращает пустую сетку
	appts := []domain.Appointment{{ID: "TV-X-1", Date: sunday, Time: "08:00"}}

	uc := newTestUseCase(appts, nil, 10)

	resp, err := uc.Execute(context.Background(), &Request{Date: sunday})
	require.NoError(t, err)

	require.False(t, resp.IsOpen)
	require.Empty(t, resp.Slots)
}

func TestExecuteAvailabilityReflectsBookings(t *testing.T) {
	appts := []domain.Appointment{
		{ID: "TV-X-1", Date: monday, Time: "08:00"},
		{ID: "TV-X-2", Date: monday, Time: "08:00"},
		{ID: "TV-X-3", Date: monday, Time: "08:00"},
		{ID: "TV-X-4", Date: "2026-03-10", Time: "08:00"}, // другая дата
	}

	uc := newTestUseCase(appts, nil, 10)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	first := resp.Slots[0]
	require.Equal(t, types.TimeString("08:00"), first.Time)
	require.Equal(t, 3, first.Booked)
	require.Equal(t, 7, first.Available)

	// Записи другой даты не влияют
	require.Equal(t, 10, resp.Slots[1].Available)
}

func TestExecuteBlockedSlotHasZeroAvailability(t *testing.T) {
	blocks := []domain.BlockedSlot{{ID: "b1", Date: monday, Time: "09:00"}}

	uc := newTestUseCase(nil, blocks, 10)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		if slot.Time == "09:00" {
			require.True(t, slot.Blocked)
			require.Zero(t, slot.Available)
		} else {
			require.False(t, slot.Blocked)
			require.Equal(t, 10, slot.Available)
		}
	}
}

func TestExecuteOverCapacityFloorsAtZero(t *testing.T) {
	// Вместимость уменьшили ниже числа существующих записей
	appts := []domain.Appointment{
		{ID: "TV-X-1", Date: monday, Time: "08:00"},
		{ID: "TV-X-2", Date: monday, Time: "08:00"},
		{ID: "TV-X-3", Date: monday, Time: "08:00"},
	}

	uc := newTestUseCase(appts, nil, 2)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	first := resp.Slots[0]
	require.Equal(t, 3, first.Booked)
	require.Zero(t, first.Available)
}

func TestExecuteInvalidDate(t *testing.T) {
	uc := newTestUseCase(nil, nil, 10)

	_, err := uc.Execute(context.Background(), &Request{Date: "not-a-date"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: ""})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateSlotLabelsDeduplicates(t *testing.T) {
	ts := func(s string) *types.TimeString {
		v := types.TimeString(s)
		return &v
	}

	// Интервалы стыкуются: конец утра совпадает с началом дня
	oh := domain.OpeningHours{
		DayOfWeek:      1,
		IsOpen:         true,
		MorningStart:   ts("08:00"),
		MorningEnd:     ts("10:00"),
		AfternoonStart: ts("09:00"),
		AfternoonEnd:   ts("10:00"),
	}

	labels, err := generateSlotLabels(oh, 30)
	require.NoError(t, err)

	seen := make(map[types.TimeString]int)
	for _, label := range labels {
		seen[label]++
		require.Equal(t, 1, seen[label], "label %s duplicated", label)
	}
}
