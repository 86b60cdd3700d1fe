package capacity

import "errors"

var (
	// ErrSaveFailed возвращается, когда не удалось сохранить конфигурацию.
	// Состояние в памяти остаётся авторитетным; вызывающий трактует как warning.
	ErrSaveFailed = errors.New("capacity.repository: failed to persist config")
)
