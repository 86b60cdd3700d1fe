package create_appointment

import (
	"errors"

	"github.com/termindesk/appointment-service/internal/domain"
	"github.com/termindesk/appointment-service/pkg/types"
)

// generateSlotLabels разворачивает рабочие часы дня в список меток слотов.
// Та же сетка, что и в расчёте доступности: интервалы в фиксированном
// порядке, шаг slotDuration, метка эмитится пока текущее время строго
// меньше конца интервала.
func generateSlotLabels(oh domain.OpeningHours, slotDuration int) ([]types.TimeString, error) {
	labels := make([]types.TimeString, 0)
	seen := make(map[types.TimeString]struct{})

	for _, interval := range oh.Intervals() {
		current := interval.Start

		for current.IsBefore(interval.End) {
			if _, dup := seen[current]; !dup {
				labels = append(labels, current)
				seen[current] = struct{}{}
			}

			next, err := current.AddMinutes(slotDuration)
			if errors.Is(err, types.ErrTimeOutOfRange) {
				break
			}
			if err != nil {
				return nil, err
			}
			current = next
		}
	}

	return labels, nil
}

// containsLabel проверяет, что метка входит в сетку слотов
func containsLabel(labels []types.TimeString, t types.TimeString) bool {
	for _, label := range labels {
		if label == t {
			return true
		}
	}
	return false
}
