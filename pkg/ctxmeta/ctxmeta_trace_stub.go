//go:build !otel || gopls

package ctxmeta

import "context"

// TraceFromContext — без тега otel идентификаторов трассировки нет.
func TraceFromContext(context.Context) (traceID, spanID string, ok bool) { return "", "", false }
