package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrDuplicateID возвращается при коллизии идентификатора записи
	ErrDuplicateID = errors.New("appointment.repository: duplicate appointment id")

	// ErrSaveFailed возвращается, когда не удалось сохранить леджер в хранилище.
	// Состояние в памяти при этом остаётся корректным и авторитетным -
	// вызывающий обязан трактовать эту ошибку как warning, а не как отказ операции.
	ErrSaveFailed = errors.New("appointment.repository: failed to persist ledger")
)
