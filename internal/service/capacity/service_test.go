package capacity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termindesk/appointment-service/internal/domain"
	capacityRepo "github.com/termindesk/appointment-service/internal/infra/storage/capacity"
	"github.com/termindesk/appointment-service/internal/infra/storage/store"
	"github.com/termindesk/appointment-service/internal/service/capacity/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type memStore struct{}

func (memStore) Load(_ context.Context, _ string) ([]byte, error) {
	return nil, store.ErrNotFound
}

func (memStore) Save(_ context.Context, _ string, _ []byte) error {
	return nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo := capacityRepo.NewRepository(context.Background(), memStore{}, nopLogger{})
	return NewService(repo, nopLogger{})
}

func TestGetReturnsFullWeek(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Capacities, 7)

	for day, entry := range resp.Capacities {
		require.Equal(t, day, entry.DayOfWeek)
		require.Equal(t, domain.DefaultSlotsPerTime, entry.SlotsPerTime)
	}
}

func TestUpdateAppliesOverride(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Update(context.Background(), &models.UpdateCapacityRequest{
		DayOfWeek:    5,
		SlotsPerTime: 4,
	})
	require.NoError(t, err)
	require.Len(t, resp.Capacities, 7)
	require.Equal(t, 4, resp.Capacities[5].SlotsPerTime)

	// Остальные дни не затронуты
	require.Equal(t, domain.DefaultSlotsPerTime, resp.Capacities[1].SlotsPerTime)
}

func TestUpdateRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		req  models.UpdateCapacityRequest
	}{
		{name: "zero capacity", req: models.UpdateCapacityRequest{DayOfWeek: 1, SlotsPerTime: 0}},
		{name: "negative capacity", req: models.UpdateCapacityRequest{DayOfWeek: 1, SlotsPerTime: -3}},
		{name: "capacity above maximum", req: models.UpdateCapacityRequest{DayOfWeek: 1, SlotsPerTime: domain.MaxSlotsPerTime + 1}},
		{name: "day below range", req: models.UpdateCapacityRequest{DayOfWeek: -1, SlotsPerTime: 10}},
		{name: "day above range", req: models.UpdateCapacityRequest{DayOfWeek: 7, SlotsPerTime: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			_, err := svc.Update(context.Background(), &tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
