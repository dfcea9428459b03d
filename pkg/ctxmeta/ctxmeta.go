// Пакет ctxmeta — метаданные запроса в context.Context:
// request_id, точка входа (HTTP или импорт из Kafka), trace/span.
// HTTP-слой, консьюмер и логгер зависят от него, но не друг от друга.
package ctxmeta

import (
	"context"
	"fmt"
)

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
	KeySource    ctxKey = "source"
)

// Точки входа, из которых приходят операции над сущностями.
const (
	SourceHTTP  = "http"
	SourceKafka = "kafka"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, KeyRequestID)
}

// WithSource помечает контекст точкой входа.
func WithSource(ctx context.Context, source string) context.Context {
	if ctx == nil || source == "" {
		return ctx
	}
	return context.WithValue(ctx, KeySource, source)
}

func SourceFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, KeySource)
}

// ForMessage — контекст обработки сообщения импорта: источник kafka
// и request_id вида "kafka-<partition>-<offset>".
func ForMessage(ctx context.Context, partition int, offset int64) context.Context {
	ctx = WithSource(ctx, SourceKafka)
	return WithRequestID(ctx, fmt.Sprintf("kafka-%d-%d", partition, offset))
}

func stringValue(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
