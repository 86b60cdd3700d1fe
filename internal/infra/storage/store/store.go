package store

import (
	"context"
	"errors"
)

// Ключи персистентных коллекций
const (
	KeyAppointments = "appointments"
	KeyBlockedSlots = "blocked_slots"
	KeySlotCapacity = "slot_capacity"
)

var (
	// ErrNotFound возвращается, когда ключ отсутствует в хранилище
	ErrNotFound = errors.New("store: key not found")

	// ErrUnavailable возвращается, когда хранилище недоступно
	ErrUnavailable = errors.New("store: storage unavailable")
)

// Store контракт key-value хранилища коллекций.
// Значения - сериализованные JSON-коллекции; формат знает только
// вызывающий репозиторий. Load обязан возвращать ErrNotFound для
// отсутствующего ключа, чтобы репозитории могли отличить "пусто"
// от "недоступно".
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
