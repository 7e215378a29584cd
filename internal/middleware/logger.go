package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestID    = "request_id"
)

// RequestLogger assigns a request id, echoes it in X-Request-ID and logs
// one line per request. Errors recorded with c.Error are logged with their
// stack so the client-facing message can stay generic.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(CtxRequestID, requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if uid := UserID(c); uid != 0 {
			attrs = append(attrs, slog.Int64("user_id", uid), slog.String("role", Role(c)))
		}

		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		for _, e := range c.Errors {
			attrs = append(attrs, slog.String("error", e.Error()))
			if status >= http.StatusInternalServerError {
				attrs = append(attrs, slog.Any("stack", errs.ExtractStackLines(e.Err, 20)))
			}
		}

		log.LogAttrs(c.Request.Context(), level, "request", attrs...)
	}
}

// Recovery turns a panic into a 500 error body and logs the stack.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error("panic recovered",
					slog.String("request_id", c.GetString(CtxRequestID)),
					slog.String("path", c.Request.URL.Path),
					slog.String("panic", fmt.Sprint(recovered)),
					slog.String("stack", string(debug.Stack())),
				)
				response.Abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
			}
		}()
		c.Next()
	}
}
