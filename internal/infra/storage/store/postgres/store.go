package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/termindesk/appointment-service/internal/infra/storage/store"
	"github.com/termindesk/appointment-service/pkg/psqlbuilder"
)

// Store key-value хранилище коллекций поверх PostgreSQL:
// одна таблица collections(key TEXT PRIMARY KEY, data JSONB).
type Store struct {
	db *sql.DB
}

// New создает PostgreSQL хранилище и гарантирует наличие таблицы
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// ensureSchema создает таблицу коллекций, если её ещё нет
func (s *Store) ensureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS collections (
			key        TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%w: ensure schema: %v", store.ErrUnavailable, err)
	}
	return nil
}

// Load читает коллекцию по ключу
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psqlbuilder.Select("data").
		From("collections").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", store.ErrUnavailable, err)
	}

	var data []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - execute query: %v", store.ErrUnavailable, err)
	}

	return data, nil
}

// Save записывает коллекцию по ключу (upsert)
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	query, args, err := psqlbuilder.Insert("collections").
		Columns("key", "data").
		Values(key, data).
		Suffix("ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", store.ErrUnavailable, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", store.ErrUnavailable, err)
	}

	return nil
}
