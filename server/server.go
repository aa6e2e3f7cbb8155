package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"geocoder/geocode"
	"geocoder/internal/config"
	"geocoder/server/handlers"
	"geocoder/server/middleware"
)

// Server HTTP сервер геокодирования
type Server struct {
	config     *config.Config
	ranker     *geocode.Ranker
	httpServer *http.Server
}

// NewServer создает сервер над готовым Ranker
func NewServer(cfg *config.Config, ranker *geocode.Ranker) *Server {
	return &Server{
		config: cfg,
		ranker: ranker,
	}
}

// buildRouter собирает Gin роутер с middleware и маршрутами API
func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.GinRecoveryMiddleware())
	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())

	rl := middleware.NewRateLimiter(s.config.RateLimitPerSec, s.config.RateLimitBurst)
	router.Use(middleware.GinRateLimitMiddleware(rl))

	h := handlers.NewGeocodeHandler(s.ranker, s.config)

	api := router.Group("/api")
	{
		api.GET("/health", h.HandleHealthGin)

		geocodeGroup := api.Group("/geocode")
		{
			geocodeGroup.GET("/basic", h.HandleGeocodeBasicGin)
			geocodeGroup.GET("/improved", h.HandleGeocodeImprovedGin)
			geocodeGroup.POST("/batch", h.HandleGeocodeBatchGin)
		}
	}

	handlers.RegisterSwaggerRoutes(router, s.config.Port)

	return router
}

// Start запускает HTTP сервер; блокируется до остановки
func (s *Server) Start() error {
	router := s.buildRouter()

	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // Пакетное геокодирование больших файлов
		IdleTimeout:  120 * time.Second,
	}

	Logger.Info("Starting HTTP server", "addr", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}

	return nil
}

// Shutdown останавливает сервер, дожидаясь активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	Logger.Info("Shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	Logger.Info("HTTP server stopped")
	return nil
}
