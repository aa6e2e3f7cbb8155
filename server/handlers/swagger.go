package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"geocoder/docs"
)

// RegisterSwaggerRoutes регистрирует маршруты Swagger в Gin роутере
func RegisterSwaggerRoutes(router *gin.Engine, port string) {
	// Устанавливаем информацию о Swagger из сгенерированной документации
	docs.SwaggerInfo.Host = "localhost:" + port
	docs.SwaggerInfo.BasePath = "/api"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Регистрируем Swagger UI с использованием сгенерированной документации
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}
