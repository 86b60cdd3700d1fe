package block

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

// Repository леджер заблокированных слотов: источник истины в памяти,
// каждое изменение пишется насквозь в key-value хранилище.
type Repository struct {
	mu     sync.RWMutex
	store  Store
	logger Logger
	blocks map[string]domain.BlockedSlot // по ID
}

// NewRepository создает леджер и загружает коллекцию из хранилища
// (fail-open: проблемы загрузки деградируют до пустой коллекции)
func NewRepository(ctx context.Context, st Store, logger Logger) *Repository {
	r := &Repository{
		store:  st,
		logger: logger,
		blocks: make(map[string]domain.BlockedSlot),
	}

	data, err := st.Load(ctx, store.KeyBlockedSlots)
	switch {
	case errors.Is(err, store.ErrNotFound):
		logger.Info("block ledger: no stored collection, starting empty")
		return r
	case err != nil:
		logger.Warn("block ledger: load failed, starting empty: %v", err)
		return r
	}

	var records []domain.BlockedSlot
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("block ledger: corrupt collection, starting empty: %v", err)
		return r
	}

	for _, b := range records {
		r.blocks[b.ID] = b
	}
	logger.Info("block ledger: loaded %d blocked slots", len(records))

	return r
}

// Add добавляет блокировку.
// Существующие записи на этом слоте не проверяются и не отменяются -
// блокировка лишь останавливает дальнейшую выдачу доступности.
func (r *Repository) Add(ctx context.Context, b domain.BlockedSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.blocks[b.ID]; exists {
		return ErrDuplicateID
	}

	r.blocks[b.ID] = b
	return r.persist(ctx)
}

// Remove удаляет блокировку по идентификатору.
// Отсутствие блокировки не является ошибкой (идемпотентная разблокировка).
func (r *Repository) Remove(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.blocks[id]; !exists {
		return false, nil
	}

	delete(r.blocks, id)
	return true, r.persist(ctx)
}

// GetByDate возвращает блокировки на дату, отсортированные по времени слота
func (r *Repository) GetByDate(_ context.Context, date string) ([]domain.BlockedSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.BlockedSlot, 0)
	for _, b := range r.blocks {
		if b.Date == date {
			result = append(result, b)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Time.IsBefore(result[j].Time)
	})

	return result, nil
}

// IsBlocked проверяет, заблокирован ли конкретный слот
func (r *Repository) IsBlocked(_ context.Context, date string, slot types.TimeString) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.blocks {
		if b.Date == date && b.Time == slot {
			return true, nil
		}
	}
	return false, nil
}

// persist сохраняет леджер в хранилище. Вызывается под мьютексом.
func (r *Repository) persist(ctx context.Context) error {
	records := make([]domain.BlockedSlot, 0, len(r.blocks))
	for _, b := range r.blocks {
		records = append(records, b)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date+string(records[i].Time) < records[j].Date+string(records[j].Time)
	})

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrSaveFailed, err)
	}

	if err := r.store.Save(ctx, store.KeyBlockedSlots, data); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	return nil
}
