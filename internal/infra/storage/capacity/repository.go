package capacity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/termindesk/appointment-service/internal/domain"
	"github.com/termindesk/appointment-service/internal/infra/storage/store"
)

// Repository персистентная конфигурация вместимости слотов по дням недели.
// Значения по умолчанию применяются для дней без переопределения.
type Repository struct {
	mu     sync.RWMutex
	store  Store
	logger Logger
	config domain.SlotCapacityConfig
}

// NewRepository создает репозиторий и загружает конфигурацию из хранилища
// (fail-open: проблемы загрузки деградируют до конфигурации по умолчанию)
func NewRepository(ctx context.Context, st Store, logger Logger) *Repository {
	r := &Repository{
		store:  st,
		logger: logger,
		config: domain.DefaultSlotCapacityConfig(),
	}

	data, err := st.Load(ctx, store.KeySlotCapacity)
	switch {
	case errors.Is(err, store.ErrNotFound):
		logger.Info("capacity config: no stored config, using defaults")
		return r
	case err != nil:
		logger.Warn("capacity config: load failed, using defaults: %v", err)
		return r
	}

	var config domain.SlotCapacityConfig
	if err := json.Unmarshal(data, &config); err != nil {
		logger.Warn("capacity config: corrupt config, using defaults: %v", err)
		return r
	}

	// Отбрасываем некорректные записи вместо отказа от всей конфигурации
	valid := make(domain.SlotCapacityConfig, 0, len(config))
	for _, entry := range config {
		if err := entry.Validate(); err != nil {
			logger.Warn("capacity config: dropping invalid entry (day=%d, slots=%d): %v",
				entry.DayOfWeek, entry.SlotsPerTime, err)
			continue
		}
		valid = append(valid, entry)
	}

	if len(valid) > 0 {
		r.config = valid
	}
	logger.Info("capacity config: loaded %d overrides", len(valid))

	return r
}

// Get возвращает копию текущей конфигурации
func (r *Repository) Get(_ context.Context) (domain.SlotCapacityConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	config := make(domain.SlotCapacityConfig, len(r.config))
	copy(config, r.config)
	return config, nil
}

// SlotsPerTimeFor возвращает вместимость слота для дня недели
func (r *Repository) SlotsPerTimeFor(_ context.Context, dayOfWeek int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.config.SlotsPerTimeFor(dayOfWeek), nil
}

// Update заменяет вместимость для одного дня недели.
// Валидацию значения выполняет вызывающий сервис.
func (r *Repository) Update(ctx context.Context, capacity domain.SlotCapacity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.config = r.config.WithUpdated(capacity)

	data, err := json.Marshal(r.config)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrSaveFailed, err)
	}

	if err := r.store.Save(ctx, store.KeySlotCapacity, data); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	return nil
}
