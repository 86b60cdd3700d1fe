package create_appointment

import "errors"

var (
	// ErrClosedDay возвращается при попытке записи на закрытый день
	ErrClosedDay = errors.New("create_appointment: day is closed for booking")

	// ErrInvalidTimeSlot возвращается, когда метка времени не входит
	// в сгенерированную сетку слотов этого дня
	ErrInvalidTimeSlot = errors.New("create_appointment: time is not a valid slot for this day")

	// ErrSlotBlocked возвращается, когда слот заблокирован сотрудником
	ErrSlotBlocked = errors.New("create_appointment: slot is blocked")

	// ErrSlotNotAvailable возвращается, когда все места слота заняты
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
