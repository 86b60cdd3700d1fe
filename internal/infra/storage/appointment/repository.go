package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/termindesk/appointment-service/internal/domain"
	"github.com/termindesk/appointment-service/internal/infra/storage/store"
	"github.com/termindesk/appointment-service/pkg/types"
)

// Repository леджер записей на приём: источник истины в памяти,
// каждое изменение пишется насквозь в key-value хранилище.
type Repository struct {
	mu           sync.RWMutex
	store        Store
	logger       Logger
	appointments map[string]domain.Appointment // по ID
}

// NewRepository создает леджер и загружает коллекцию из хранилища.
// Отсутствующие или повреждённые данные деградируют до пустой коллекции -
// загрузка никогда не фатальна (fail-open).
func NewRepository(ctx context.Context, st Store, logger Logger) *Repository {
	r := &Repository{
		store:        st,
		logger:       logger,
		appointments: make(map[string]domain.Appointment),
	}

	data, err := st.Load(ctx, store.KeyAppointments)
	switch {
	case errors.Is(err, store.ErrNotFound):
		logger.Info("appointment ledger: no stored collection, starting empty")
		return r
	case err != nil:
		logger.Warn("appointment ledger: load failed, starting empty: %v", err)
		return r
	}

	var records []domain.Appointment
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("appointment ledger: corrupt collection, starting empty: %v", err)
		return r
	}

	for _, a := range records {
		r.appointments[a.ID] = a
	}
	logger.Info("appointment ledger: loaded %d appointments", len(records))

	return r
}

// Add добавляет запись в леджер.
// Доступность слота здесь НЕ проверяется - за проверку отвечает
// бронирующий usecase, который держит свой мьютекс вокруг
// проверки и коммита.
func (r *Repository) Add(ctx context.Context, a domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.appointments[a.ID]; exists {
		return ErrDuplicateID
	}

	r.appointments[a.ID] = a
	return r.persist(ctx)
}

// Remove удаляет запись по идентификатору.
// Отсутствие записи не является ошибкой (идемпотентная отмена).
// Возвращает признак того, была ли запись удалена.
func (r *Repository) Remove(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.appointments[id]; !exists {
		return false, nil
	}

	delete(r.appointments, id)
	return true, r.persist(ctx)
}

// GetByID возвращает запись по идентификатору
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.appointments[id]
	if !exists {
		return nil, ErrAppointmentNotFound
	}
	return &a, nil
}

// GetByDate возвращает записи на дату, отсортированные по времени слота.
// Формат HH:MM фиксированной ширины, поэтому достаточно
// лексикографической сортировки.
func (r *Repository) GetByDate(_ context.Context, date string) ([]domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Appointment, 0)
	for _, a := range r.appointments {
		if a.Date == date {
			result = append(result, a)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Time.IsBefore(result[j].Time)
	})

	return result, nil
}

// GetBySecretCode возвращает записи с совпадающим секретным кодом
// (без учёта регистра), отсортированные по дате и времени
func (r *Repository) GetBySecretCode(_ context.Context, code string) ([]domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Appointment, 0)
	for _, a := range r.appointments {
		if a.MatchesSecretCode(code) {
			result = append(result, a)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].SortKey() < result[j].SortKey()
	})

	return result, nil
}

// CountByDateTime возвращает количество записей на конкретный слот
func (r *Repository) CountByDateTime(_ context.Context, date string, slot types.TimeString) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, a := range r.appointments {
		if a.Date == date && a.Time == slot {
			count++
		}
	}
	return count, nil
}

// Len возвращает общее количество записей в леджере
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.appointments)
}

// persist сохраняет леджер в хранилище. Вызывается под мьютексом.
// Ошибка сохранения не откатывает состояние в памяти.
func (r *Repository) persist(ctx context.Context) error {
	records := make([]domain.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		records = append(records, a)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].SortKey() < records[j].SortKey()
	})

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrSaveFailed, err)
	}

	if err := r.store.Save(ctx, store.KeyAppointments, data); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	return nil
}
