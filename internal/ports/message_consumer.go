package ports

import "context"

// MessageConsumer — фоновый потребитель сообщений (импорт расписания).
// Run блокируется до отмены контекста или фатальной ошибки.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
