package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"geocoder/server/middleware"
)

// ErrorResponse структура JSON-ошибки API
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// SendJSONResponse отправляет JSON ответ через Gin context
func SendJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendJSONError отправляет JSON ошибку через Gin context и логирует её
func SendJSONError(c *gin.Context, statusCode int, message string) {
	reqID := middleware.GetRequestIDFromGin(c)

	// Логируем ошибку
	slog.Error("Gin HTTP error",
		"error", message,
		"status_code", statusCode,
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	c.JSON(statusCode, ErrorResponse{
		Error:   true,
		Message: message,
	})
}

// ValidateMethod проверяет HTTP метод и возвращает ошибку если не совпадает
func ValidateMethod(c *gin.Context, allowedMethod string) bool {
	if c.Request.Method != allowedMethod {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
			Error:   true,
			Message: "Method not allowed",
		})
		return false
	}
	return true
}
