package ports

import "context"

// Logger — логгер сервисов и транспорта. Поля из ctx (request_id, source)
// добавляет реализация, поэтому ctx передаётся в каждый вызов.
type Logger interface {
	Debugf(ctx context.Context, format string, args ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
