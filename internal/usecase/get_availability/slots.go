package get_availability

import (
	"errors"

	"github.com/termindesk/appointment-service/internal/domain"
	"github.com/termindesk/appointment-service/pkg/types"
)

// generateSlotLabels разворачивает рабочие часы дня в упорядоченный список
// меток слотов. Интервалы обходятся в фиксированном порядке (утро, затем
// день); внутри интервала метки идут от начала с шагом slotDuration, пока
// текущее время строго меньше конца интервала. Переполнение минут
// нормализуется в часы внутри TimeString.AddMinutes.
//
// Для закрытого дня или дня без интервалов возвращается пустой список.
// Функция чистая и детерминированная.
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
				// Шаг вышел за пределы суток - интервал исчерпан
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

// buildTimeSlots собирает view доступности по меткам слотов:
// booked - количество записей на метку, blocked - наличие блокировки,
// available - 0 для заблокированного слота, иначе max(0, capacity - booked).
func buildTimeSlots(
	labels []types.TimeString,
	capacity int,
	appointments []domain.Appointment,
	blocks []domain.BlockedSlot,
) []domain.TimeSlot {
	bookedCount := make(map[types.TimeString]int, len(labels))
	for _, a := range appointments {
		bookedCount[a.Time]++
	}

	blockedSet := make(map[types.TimeString]struct{}, len(blocks))
	for _, b := range blocks {
		blockedSet[b.Time] = struct{}{}
	}

	slots := make([]domain.TimeSlot, len(labels))
	for i, label := range labels {
		booked := bookedCount[label]
		_, blocked := blockedSet[label]

		available := 0
		if !blocked {
			// Если вместимость уменьшили ниже текущего числа записей,
			// доступность упирается в 0 - существующие записи не отменяются
			available = capacity - booked
			if available < 0 {
				available = 0
			}
		}

		slots[i] = domain.TimeSlot{
			Time:      label,
			Available: available,
			Booked:    booked,
			Blocked:   blocked,
		}
	}

	return slots
}
