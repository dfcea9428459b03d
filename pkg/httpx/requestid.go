package httpx

import (
	"strings"

	"github.com/Gunvolt24/dance_center/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	maxRequestIDLen = 128
)

// RequestIDMiddleware принимает X-Request-ID клиента (до 128 символов) или генерирует UUID.
// Значение попадает в контекст запроса (вместе с source=http) и в ответный заголовок.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.New().String()
		}
		c.Header(HeaderRequestID, requestID)

		ctx := ctxmeta.WithRequestID(c.Request.Context(), requestID)
		ctx = ctxmeta.WithSource(ctx, ctxmeta.SourceHTTP)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
