package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HandleHealthGin обработчик проверки работоспособности
// @Summary Проверка работоспособности
// @Description Возвращает состояние сервиса и размер загруженного справочника
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse "Состояние сервиса"
// @Router /api/health [get]
func (h *GeocodeHandler) HandleHealthGin(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, HealthResponse{
		Status:    "ok",
		Buildings: len(h.ranker.Records()),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
