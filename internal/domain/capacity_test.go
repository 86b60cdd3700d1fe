package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlotCapacityValidate(t *testing.T) {
	tests := []struct {
		name     string
		capacity SlotCapacity
		wantErr  error
	}{
		{name: "valid", capacity: SlotCapacity{DayOfWeek: 1, SlotsPerTime: 10}},
		{name: "minimum", capacity: SlotCapacity{DayOfWeek: 0, SlotsPerTime: MinSlotsPerTime}},
		{name: "maximum", capacity: SlotCapacity{DayOfWeek: 6, SlotsPerTime: MaxSlotsPerTime}},
		{name: "zero slots", capacity: SlotCapacity{DayOfWeek: 1, SlotsPerTime: 0}, wantErr: ErrInvalidSlotsPerTime},
		{name: "negative slots", capacity: SlotCapacity{DayOfWeek: 1, SlotsPerTime: -5}, wantErr: ErrInvalidSlotsPerTime},
		{name: "too many slots", capacity: SlotCapacity{DayOfWeek: 1, SlotsPerTime: MaxSlotsPerTime + 1}, wantErr: ErrInvalidSlotsPerTime},
		{name: "day out of range", capacity: SlotCapacity{DayOfWeek: 7, SlotsPerTime: 10}, wantErr: ErrInvalidDayOfWeek},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.capacity.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSlotCapacityConfigFallsBackToDefault(t *testing.T) {
	config := SlotCapacityConfig{{DayOfWeek: 1, SlotsPerTime: 3}}

	require.Equal(t, 3, config.SlotsPerTimeFor(1))
	require.Equal(t, DefaultSlotsPerTime, config.SlotsPerTimeFor(2))
}

func TestSlotCapacityConfigWithUpdated(t *testing.T) {
	config := DefaultSlotCapacityConfig()

	updated := config.WithUpdated(SlotCapacity{DayOfWeek: 5, SlotsPerTime: 4})
	require.Len(t, updated, 7)
	require.Equal(t, 4, updated.SlotsPerTimeFor(5))

	// Исходная конфигурация не изменилась
	require.Equal(t, DefaultSlotsPerTime, config.SlotsPerTimeFor(5))

	// Обновление отсутствующего дня добавляет запись
	appended := SlotCapacityConfig{}.WithUpdated(SlotCapacity{DayOfWeek: 2, SlotsPerTime: 8})
	require.Len(t, appended, 1)
	require.Equal(t, 8, appended.SlotsPerTimeFor(2))
}

func TestAppointmentMatchesSecretCode(t *testing.T) {
	a := Appointment{SecretCode: "Geheim42"}

	require.True(t, a.MatchesSecretCode("geheim42"))
	require.True(t, a.MatchesSecretCode("GEHEIM42"))
	require.False(t, a.MatchesSecretCode("geheim43"))

	// Пустой код не матчится даже на пустую строку
	empty := Appointment{}
	require.False(t, empty.MatchesSecretCode(""))
}
