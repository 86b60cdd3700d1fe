package block

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("block.repository: blocked slot not found")

	// ErrDuplicateID возвращается при коллизии идентификатора блокировки
	ErrDuplicateID = errors.New("block.repository: duplicate block id")

	// ErrSaveFailed возвращается, когда не удалось сохранить леджер в хранилище.
	// Состояние в памяти остаётся авторитетным; вызывающий трактует как warning.
	ErrSaveFailed = errors.New("block.repository: failed to persist ledger")
)
