package domain

import (
	"errors"
	"fmt"
)

// Базовые виды ошибок ядра. Транспорт сопоставляет их со статусами ответа.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Уточнённые виды; errors.Is находит и их базовый вид.
var (
	ErrMissingFields    = fmt.Errorf("%w: all fields must be filled", ErrInvalidInput)
	ErrInvalidDayOfWeek = fmt.Errorf("%w: day of week is incorrect", ErrInvalidInput)
	ErrInvalidTimeRange = fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	ErrAlreadyExists    = fmt.Errorf("%w: already exists", ErrConflict)
	ErrTimeBusy         = fmt.Errorf("%w: this time in this hall is busy", ErrConflict)
)

// NotFoundError — сущность (или ссылка на неё) отсутствует в хранилище.
type NotFoundError struct {
	Entity Entity
	ID     int64
}

// NewNotFound — конструктор NotFoundError.
func NewNotFound(entity Entity, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found. ID: %d", e.Entity, e.ID)
}

// Is — NotFoundError соответствует ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
