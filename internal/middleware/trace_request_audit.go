package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recharge-order-api/internal/dto"
	"recharge-order-api/internal/logger"
)

// TraceAuditMiddleware 为每个请求生成 trace_id 并落审计日志
func TraceAuditMiddleware(requestType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		ctx := &dto.AuditContextPayload{
			TraceID:     traceID,
			RequestType: requestType,
			RequestBody: string(bodyBytes),
			IP:          c.ClientIP(),
			UserAgent:   c.GetHeader("User-Agent"),
			StartTime:   time.Now(),
		}
		c.Set("audit_ctx", ctx)
		c.Set("trace_id", traceID)
		c.Writer.Header().Set("X-Trace-ID", traceID)

		c.Next()

		ctx.LatencyMs = time.Since(ctx.StartTime).Milliseconds()
		logger.WriteRequestLog(ctx)
	}
}
