package ports

import "context"

// EntityValidator — проверка полноты и формата полей сущности.
// Возвращает ошибки вида domain.ErrInvalidInput.
type EntityValidator interface {
	Validate(ctx context.Context, entity any) error
}
