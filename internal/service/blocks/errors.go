package blocks

import "errors"

var (
	// ErrClosedDay возвращается при попытке заблокировать слот закрытого дня
	ErrClosedDay = errors.New("day is closed, nothing to block")

	// ErrAlreadyBlocked возвращается, когда слот уже заблокирован
	ErrAlreadyBlocked = errors.New("slot is already blocked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
