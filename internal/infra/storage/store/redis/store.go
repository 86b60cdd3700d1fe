package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/termindesk/appointment-service/internal/infra/storage/store"
)

// Префикс ключей сервиса в Redis
const keyPrefix = "appointment-service:"

// Store key-value хранилище коллекций поверх Redis
type Store struct {
	client *redis.Client
}

// New создает Redis хранилище и проверяет соединение
func New(ctx context.Context, client *redis.Client) (*Store, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: ping: %v", store.ErrUnavailable, err)
	}
	return &Store{client: client}, nil
}

// Load читает коллекцию по ключу
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load %s: %v", store.ErrUnavailable, key, err)
	}
	return data, nil
}

// Save записывает коллекцию по ключу (без TTL - коллекции живут вечно)
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, keyPrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: Save %s: %v", store.ErrUnavailable, key, err)
	}
	return nil
}
