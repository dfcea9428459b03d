package logger

import (
	"context"

	"github.com/Gunvolt24/dance_center/internal/ports"
	"github.com/Gunvolt24/dance_center/pkg/ctxmeta"
	"go.uber.org/zap"
)

// Проверка, что ZapLogger удовлетворяет интерфейсу ports.Logger.
var _ ports.Logger = (*ZapLogger)(nil)

// ZapLogger — реализация ports.Logger поверх zap.SugaredLogger.
// Если в контексте есть request_id, он добавляется полем к записи.
type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

// NewZapLogger — production-конфигурация (JSON) либо development (консоль, debug-уровень).
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	loggerWrap := &ZapLogger{
		base:   logger,
		sugar:  logger.Sugar(),
		isProd: isProd,
	}

	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// NewNop — логгер, который ничего не пишет (для тестов и CLI).
func NewNop() *ZapLogger {
	l := zap.NewNop()
	return &ZapLogger{base: l, sugar: l.Sugar()}
}

// with — поля из контекста: request_id и точка входа.
func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	var fields []any
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		fields = append(fields, "request_id", rid)
	}
	if src, ok := ctxmeta.SourceFromContext(ctx); ok {
		fields = append(fields, "source", src)
	}
	if len(fields) == 0 {
		return z.sugar
	}
	return z.sugar.With(fields...)
}

func (z *ZapLogger) Debugf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Debugf(format, args...)
}
func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
