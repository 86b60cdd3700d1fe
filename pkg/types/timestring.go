package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of 24h range")
)

// TimeString время суток в формате "HH:MM" (24-часовой формат, с ведущими нулями)
// Используется для слотов и рабочих часов. Формат фиксированной ширины,
// поэтому лексикографическое сравнение совпадает с хронологическим.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку "HH:MM" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат "HH:MM" (00:00 - 23:59)
func (t TimeString) Validate() error {
	_, _, err := t.parts()
	return err
}

// parts разбирает часы и минуты
func (t TimeString) parts() (hour, minute int, err error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, 0, ErrInvalidTimeString
	}

	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hour, &minute); err != nil {
		return 0, 0, ErrInvalidTimeString
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidTimeString
	}

	return hour, minute, nil
}

// AddMinutes возвращает время, сдвинутое на minutes вперед.
// Переполнение минут переносится в часы (65 минут -> +1 час 5 минут).
// Если результат выходит за пределы суток, возвращает ErrTimeOutOfRange.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	hour, minute, err := t.parts()
	if err != nil {
		return "", err
	}

	minute += minutes
	hour += minute / 60
	minute = minute % 60

	if hour > 23 {
		return "", ErrTimeOutOfRange
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// IsBefore проверяет, что t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter проверяет, что t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
