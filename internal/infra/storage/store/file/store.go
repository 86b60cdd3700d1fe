package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/termindesk/appointment-service/internal/infra/storage/store"
)

// Store файловое key-value хранилище: одна коллекция - один JSON файл.
// Запись атомарная (временный файл + rename), чтобы сбой на середине
// записи не оставил коллекцию в полуразрушенном состоянии.
type Store struct {
	dir string
}

// New создает файловое хранилище в указанной директории
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create dir %s: %v", store.ErrUnavailable, dir, err)
	}
	return &Store{dir: dir}, nil
}

// Load читает коллекцию из файла <dir>/<key>.json
func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", store.ErrUnavailable, key, err)
	}
	return data, nil
}

// Save атомарно записывает коллекцию в файл <dir>/<key>.json
func (s *Store) Save(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp for %s: %v", store.ErrUnavailable, key, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", store.ErrUnavailable, key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close %s: %v", store.ErrUnavailable, key, err)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename %s: %v", store.ErrUnavailable, key, err)
	}

	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
