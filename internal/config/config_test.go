package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termindesk/appointment-service/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[auth]
employee_token = "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.HTTPPort)
	require.Equal(t, "file", cfg.Storage.Driver)
	require.Equal(t, "./data", cfg.Storage.File.Dir)
	require.Equal(t, 30, cfg.Booking.SlotDurationMinutes)
	require.Equal(t, 28, cfg.Booking.HorizonDays)
	require.Equal(t, "secret", cfg.Auth.EmployeeToken)
}

func TestLoadRejectsUnknownStorageDriver(t *testing.T) {
	path := writeConfig(t, `
[storage]
driver = "cassandra"
`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, ErrReadConfig)
}

func TestLoadRejectsInvalidBookingValues(t *testing.T) {
	path := writeConfig(t, `
[booking]
slot_duration_minutes = 0
`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWeeklyScheduleOverlaysConfiguredDays(t *testing.T) {
	path := writeConfig(t, `
[[schedule.days]]
day_of_week = 6
is_open = true
morning_start = "10:00"
morning_end = "12:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	schedule, err := cfg.WeeklySchedule()
	require.NoError(t, err)

	// Суббота открыта по переопределению
	saturday, err := schedule.ForDay(6)
	require.NoError(t, err)
	require.True(t, saturday.IsOpen)
	require.Equal(t, types.TimeString("10:00"), *saturday.MorningStart)

	// Остальные дни из расписания по умолчанию
	monday, err := schedule.ForDay(1)
	require.NoError(t, err)
	require.True(t, monday.IsOpen)
	require.Equal(t, types.TimeString("08:00"), *monday.MorningStart)

	sunday, err := schedule.ForDay(0)
	require.NoError(t, err)
	require.False(t, sunday.IsOpen)
}

func TestWeeklyScheduleRejectsBadTime(t *testing.T) {
	path := writeConfig(t, `
[[schedule.days]]
day_of_week = 1
is_open = true
morning_start = "8:00"
morning_end = "12:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.WeeklySchedule()
	require.ErrorIs(t, err, ErrInvalidConfig)
}
