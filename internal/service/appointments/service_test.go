package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/termindesk/appointment-service/internal/domain"
	appointmentRepo "github.com/termindesk/appointment-service/internal/infra/storage/appointment"
	blockRepo "github.com/termindesk/appointment-service/internal/infra/storage/block"
	"github.com/termindesk/appointment-service/internal/infra/storage/store"
	"github.com/termindesk/appointment-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// failSaveStore хранилище, у которого не работает запись
type failSaveStore struct{}

func (failSaveStore) Load(_ context.Context, _ string) ([]byte, error) {
	return nil, store.ErrNotFound
}

func (failSaveStore) Save(_ context.Context, _ string, _ []byte) error {
	return errors.New("disk full")
}

type memStore struct{}

func (memStore) Load(_ context.Context, _ string) ([]byte, error) {
	return nil, store.ErrNotFound
}

func (memStore) Save(_ context.Context, _ string, _ []byte) error {
	return nil
}

func newTestService(t *testing.T, st appointmentRepo.Store) (*Service, *appointmentRepo.Repository, *blockRepo.Repository) {
	t.Helper()
	appts := appointmentRepo.NewRepository(context.Background(), st, nopLogger{})
	blocks := blockRepo.NewRepository(context.Background(), memStore{}, nopLogger{})
	return NewService(appts, blocks, nopLogger{}), appts, blocks
}

func appt(id, date string, slot types.TimeString, secret string) domain.Appointment {
	return domain.Appointment{
		ID:         id,
		Date:       date,
		Time:       slot,
		Name:       "Max Mustermann",
		Email:      "max@example.com",
		SecretCode: secret,
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	svc, appts, _ := newTestService(t, memStore{})
	require.NoError(t, appts.Add(context.Background(), appt("TV-1", "2026-03-09", "09:00", "")))

	resp, err := svc.Cancel(context.Background(), "TV-1")
	require.NoError(t, err)
	require.True(t, resp.Cancelled)

	// Повторная отмена и отмена несуществующего кода - no-op, не ошибка
	resp, err = svc.Cancel(context.Background(), "TV-1")
	require.NoError(t, err)
	require.False(t, resp.Cancelled)

	resp, err = svc.Cancel(context.Background(), "TV-UNKNOWN")
	require.NoError(t, err)
	require.False(t, resp.Cancelled)
}

func TestCancelSucceedsWhenSaveFails(t *testing.T) {
	svc, appts, _ := newTestService(t, failSaveStore{})

	err := appts.Add(context.Background(), appt("TV-1", "2026-03-09", "09:00", ""))
	require.ErrorIs(t, err, appointmentRepo.ErrSaveFailed)

	// Ошибка записи в хранилище не мешает отмене
	resp, err := svc.Cancel(context.Background(), "TV-1")
	require.NoError(t, err)
	require.True(t, resp.Cancelled)

	_, err = appts.GetByID(context.Background(), "TV-1")
	require.ErrorIs(t, err, appointmentRepo.ErrAppointmentNotFound)
}

func TestCancelRequiresID(t *testing.T) {
	svc, _, _ := newTestService(t, memStore{})

	_, err := svc.Cancel(context.Background(), "  ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLookupBySecretCode(t *testing.T) {
	svc, appts, _ := newTestService(t, memStore{})
	require.NoError(t, appts.Add(context.Background(), appt("TV-1", "2026-03-10", "09:00", "Geheim42")))
	require.NoError(t, appts.Add(context.Background(), appt("TV-2", "2026-03-09", "13:00", "geheim42")))
	require.NoError(t, appts.Add(context.Background(), appt("TV-3", "2026-03-09", "08:00", "anders")))

	resp, err := svc.Lookup(context.Background(), "GEHEIM42")
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	require.Equal(t, "TV-2", resp.Appointments[0].ID)
	require.Equal(t, "TV-1", resp.Appointments[1].ID)

	// Код подтверждения тоже находит запись
	resp, err = svc.Lookup(context.Background(), "tv-3")
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	require.Equal(t, "TV-3", resp.Appointments[0].ID)

	// Неизвестный код - пустой список, не ошибка
	resp, err = svc.Lookup(context.Background(), "niemand")
	require.NoError(t, err)
	require.Zero(t, resp.Total)

	_, err = svc.Lookup(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	svc, appts, _ := newTestService(t, memStore{})
	require.NoError(t, appts.Add(context.Background(), appt("TV-1", "2026-03-09", "09:00", "")))

	resp, err := svc.GetByID(context.Background(), "TV-1")
	require.NoError(t, err)
	require.Equal(t, "TV-1", resp.ID)
	require.Equal(t, "2026-03-09", resp.Date)

	_, err = svc.GetByID(context.Background(), "TV-MISSING")
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetDayScheduleCombinesAppointmentsAndBlocks(t *testing.T) {
	svc, appts, blocks := newTestService(t, memStore{})
	require.NoError(t, appts.Add(context.Background(), appt("TV-1", "2026-03-09", "09:00", "")))
	require.NoError(t, appts.Add(context.Background(), appt("TV-2", "2026-03-09", "08:00", "")))
	require.NoError(t, blocks.Add(context.Background(), domain.BlockedSlot{
		ID:   "b1",
		Date: "2026-03-09",
		Time: "13:00",
	}))

	resp, err := svc.GetDaySchedule(context.Background(), "2026-03-09")
	require.NoError(t, err)
	require.Equal(t, "2026-03-09", resp.Date)
	require.Len(t, resp.Appointments, 2)
	require.Equal(t, "TV-2", resp.Appointments[0].ID) // отсортировано по времени
	require.Len(t, resp.BlockedSlots, 1)

	_, err = svc.GetDaySchedule(context.Background(), "bad-date")
	require.ErrorIs(t, err, ErrInvalidInput)
}
