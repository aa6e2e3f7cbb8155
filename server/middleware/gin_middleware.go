package middleware

import (
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GinRequestIDMiddleware добавляет уникальный request ID к каждому запросу в Gin
func GinRequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Генерируем или получаем request ID из заголовка
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		// Добавляем request ID в контекст Gin
		c.Set("request_id", reqID)

		// Добавляем request ID в контекст HTTP
		ctx := SetRequestID(c.Request.Context(), reqID)
		c.Request = c.Request.WithContext(ctx)

		// Добавляем request ID в заголовок ответа
		c.Header("X-Request-ID", reqID)

		c.Next()
	}
}

// GetRequestIDFromGin извлекает request ID из Gin context
func GetRequestIDFromGin(c *gin.Context) string {
	if c == nil {
		return ""
	}

	reqID, exists := c.Get("request_id")
	if !exists {
		return ""
	}

	if id, ok := reqID.(string); ok {
		return id
	}

	return ""
}

// GinCORSMiddleware добавляет CORS заголовки в Gin
func GinCORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// GinGzipMiddleware включает сжатие ответов
func GinGzipMiddleware() gin.HandlerFunc {
	return gzip.Gzip(gzip.BestSpeed)
}

// GinLoggerMiddleware логирует запросы через slog
func GinLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status_code", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
			"request_id", GetRequestIDFromGin(c),
		}
		if err := c.Errors.Last(); err != nil {
			attrs = append(attrs, "error", err.Error())
		}

		slog.Info("HTTP request", attrs...)
	}
}

// GinRecoveryMiddleware обрабатывает паники в Gin
func GinRecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				reqID := GetRequestIDFromGin(c)
				stackTrace := debug.Stack()

				slog.Error("Panic recovered",
					"panic", err,
					"stack", string(stackTrace),
					"request_id", reqID,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)

				c.JSON(500, gin.H{
					"error":      true,
					"message":    "Internal server error",
					"request_id": reqID,
				})

				c.Abort()
			}
		}()

		c.Next()
	}
}
