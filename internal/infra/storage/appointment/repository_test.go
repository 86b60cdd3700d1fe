package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/termindesk/appointment-service/internal/domain"
	"github.com/termindesk/appointment-service/internal/infra/storage/store"
	"github.com/termindesk/appointment-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeStore управляемое key-value хранилище для тестов
type fakeStore struct {
	data    map[string][]byte
	loadErr error
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (s *fakeStore) Load(_ context.Context, key string) ([]byte, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	data, ok := s.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return data, nil
}

func (s *fakeStore) Save(_ context.Context, key string, data []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data[key] = data
	return nil
}

func appt(id, date string, slot types.TimeString) domain.Appointment {
	return domain.Appointment{
		ID:        id,
		Date:      date,
		Time:      slot,
		Name:      "Max Mustermann",
		Email:     "max@example.com",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewRepositoryStartsEmptyWithoutStoredData(t *testing.T) {
	r := NewRepository(context.Background(), newFakeStore(), nopLogger{})
	require.Zero(t, r.Len())
}

func TestNewRepositoryFailOpenOnLoadError(t *testing.T) {
	st := newFakeStore()
	st.loadErr = errors.New("connection refused")

	r := NewRepository(context.Background(), st, nopLogger{})
	require.Zero(t, r.Len())

	// Леджер остаётся рабочим
	require.NoError(t, r.Add(context.Background(), appt("TV-1", "2026-03-09", "09:00")))
}

func TestNewRepositoryFailOpenOnCorruptData(t *testing.T) {
	st := newFakeStore()
	st.data[store.KeyAppointments] = []byte("{not json")

	r := NewRepository(context.Background(), st, nopLogger{})
	require.Zero(t, r.Len())
}

func TestNewRepositoryLoadsStoredCollection(t *testing.T) {
	records := []domain.Appointment{
		appt("TV-1", "2026-03-09", "09:00"),
		appt("TV-2", "2026-03-10", "13:30"),
	}
	data, err := json.Marshal(records)
	require.NoError(t, err)

	st := newFakeStore()
	st.data[store.KeyAppointments] = data

	r := NewRepository(context.Background(), st, nopLogger{})
	require.Equal(t, 2, r.Len())

	got, err := r.GetByID(context.Background(), "TV-2")
	require.NoError(t, err)
	require.Equal(t, types.TimeString("13:30"), got.Time)
}

func TestAddPersistsAndRejectsDuplicates(t *testing.T) {
	st := newFakeStore()
	r := NewRepository(context.Background(), st, nopLogger{})

	require.NoError(t, r.Add(context.Background(), appt("TV-1", "2026-03-09", "09:00")))
	require.ErrorIs(t, r.Add(context.Background(), appt("TV-1", "2026-03-09", "09:30")), ErrDuplicateID)

	// Коллекция записана в хранилище
	var stored []domain.Appointment
	require.NoError(t, json.Unmarshal(st.data[store.KeyAppointments], &stored))
	require.Len(t, stored, 1)
}

func TestAddKeepsMemoryOnSaveFailure(t *testing.T) {
	st := newFakeStore()
	st.saveErr = errors.New("disk full")

	r := NewRepository(context.Background(), st, nopLogger{})

	err := r.Add(context.Background(), appt("TV-1", "2026-03-09", "09:00"))
	require.ErrorIs(t, err, ErrSaveFailed)

	// Состояние в памяти остаётся источником истины
	got, err := r.GetByID(context.Background(), "TV-1")
	require.NoError(t, err)
	require.Equal(t, "TV-1", got.ID)
	require.Equal(t, 1, r.Len())
}

func TestRemoveIsIdempotent(t *testing.T) {
	r := NewRepository(context.Background(), newFakeStore(), nopLogger{})
	require.NoError(t, r.Add(context.Background(), appt("TV-1", "2026-03-09", "09:00")))

	removed, err := r.Remove(context.Background(), "TV-1")
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = r.Remove(context.Background(), "TV-1")
	require.NoError(t, err)
	require.False(t, removed)

	_, err = r.GetByID(context.Background(), "TV-1")
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetByDateSortedByTime(t *testing.T) {
	r := NewRepository(context.Background(), newFakeStore(), nopLogger{})
	require.NoError(t, r.Add(context.Background(), appt("TV-1", "2026-03-09", "13:30")))
	require.NoError(t, r.Add(context.Background(), appt("TV-2", "2026-03-09", "08:00")))
	require.NoError(t, r.Add(context.Background(), appt("TV-3", "2026-03-09", "09:30")))
	require.NoError(t, r.Add(context.Background(), appt("TV-4", "2026-03-10", "08:00")))

	got, err := r.GetByDate(context.Background(), "2026-03-09")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, types.TimeString("08:00"), got[0].Time)
	require.Equal(t, types.TimeString("09:30"), got[1].Time)
	require.Equal(t, types.TimeString("13:30"), got[2].Time)
}

func TestGetBySecretCodeCaseInsensitiveAndSorted(t *testing.T) {
	r := NewRepository(context.Background(), newFakeStore(), nopLogger{})

	a1 := appt("TV-1", "2026-03-10", "09:00")
	a1.SecretCode = "Geheim42"
	a2 := appt("TV-2", "2026-03-09", "13:00")
	a2.SecretCode = "GEHEIM42"
	a3 := appt("TV-3", "2026-03-09", "08:00")
	a3.SecretCode = "anders"

	for _, a := range []domain.Appointment{a1, a2, a3} {
		require.NoError(t, r.Add(context.Background(), a))
	}

	got, err := r.GetBySecretCode(context.Background(), "geheim42")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "TV-2", got[0].ID) // раньше по дате+времени
	require.Equal(t, "TV-1", got[1].ID)
}

func TestCountByDateTime(t *testing.T) {
	r := NewRepository(context.Background(), newFakeStore(), nopLogger{})
	require.NoError(t, r.Add(context.Background(), appt("TV-1", "2026-03-09", "09:00")))
	require.NoError(t, r.Add(context.Background(), appt("TV-2", "2026-03-09", "09:00")))
	require.NoError(t, r.Add(context.Background(), appt("TV-3", "2026-03-09", "09:30")))

	count, err := r.CountByDateTime(context.Background(), "2026-03-09", "09:00")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, err = r.CountByDateTime(context.Background(), "2026-03-10", "09:00")
	require.NoError(t, err)
	require.Zero(t, count)
}
