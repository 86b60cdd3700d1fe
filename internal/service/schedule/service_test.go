package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/termindesk/appointment-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestService(t *testing.T, horizonDays int, now time.Time) *Service {
	t.Helper()
	svc := NewService(domain.DefaultWeeklySchedule(), horizonDays, nopLogger{})
	svc.timeProvider = &fakeClock{now: now}
	return svc
}

func TestListOpenDatesStartsTomorrowAndSkipsClosedDays(t *testing.T) {
	// 2026-03-06 - пятница; следующие 7 дней: сб, вс, пн, вт, ср, чт, пт
	now := time.Date(2026, 3, 6, 10, 0, 0, 0, time.Local)
	svc := newTestService(t, 28, now)

	resp, err := svc.ListOpenDates(context.Background(), 7)
	require.NoError(t, err)

	require.Equal(t, 5, resp.Total)
	require.Equal(t, "2026-03-09", resp.Dates[0].Date) // понедельник, выходные пропущены
	require.Equal(t, 1, resp.Dates[0].DayOfWeek)
	require.Equal(t, "2026-03-13", resp.Dates[4].Date)

	for _, d := range resp.Dates {
		oh, err := domain.DefaultWeeklySchedule().ForDay(d.DayOfWeek)
		require.NoError(t, err)
		require.True(t, oh.IsOpen, "date %s is closed", d.Date)
	}
}

func TestListOpenDatesDefaultHorizon(t *testing.T) {
	now := time.Date(2026, 3, 6, 10, 0, 0, 0, time.Local)
	svc := newTestService(t, 28, now)

	resp, err := svc.ListOpenDates(context.Background(), 0)
	require.NoError(t, err)

	// 28 календарных дней = ровно 4 недели по 5 открытых дней
	require.Equal(t, 20, resp.Total)
}

func TestListOpenDatesClampsHorizon(t *testing.T) {
	now := time.Date(2026, 3, 6, 10, 0, 0, 0, time.Local)
	svc := newTestService(t, 28, now)

	resp, err := svc.ListOpenDates(context.Background(), 100000)
	require.NoError(t, err)

	// Не больше года вперед
	require.LessOrEqual(t, resp.Total, maxHorizonDays)
}

func TestIsDateOpen(t *testing.T) {
	now := time.Date(2026, 3, 6, 10, 0, 0, 0, time.Local)
	svc := newTestService(t, 28, now)

	open, err := svc.IsDateOpen(context.Background(), "2026-03-09")
	require.NoError(t, err)
	require.True(t, open)

	open, err = svc.IsDateOpen(context.Background(), "2026-03-08")
	require.NoError(t, err)
	require.False(t, open)

	_, err = svc.IsDateOpen(context.Background(), "bad-date")
	require.ErrorIs(t, err, ErrInvalidInput)
}
