package server

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"geocoder/server/middleware"
)

var (
	// Logger глобальный структурированный логгер
	Logger *slog.Logger
)

func init() {
	// Инициализируем структурированный логгер в формате JSON
	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true, // Добавляем информацию об источнике (файл, строка)
	}

	// Используем JSON handler для структурированного логирования
	Logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// SetLogLevel перенастраивает логгер на указанный уровень
func SetLogLevel(level string) {
	var lvl slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		lvl = slog.LevelDebug
	case "WARN":
		lvl = slog.LevelWarn
	case "ERROR":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: true,
	}
	Logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// LogError логирует ошибку с контекстом из запроса
func LogError(ctx context.Context, err error, msg string, attrs ...any) {
	reqID := middleware.GetRequestID(ctx)

	attrs = append(attrs, "error", err, "request_id", reqID)

	Logger.Error(msg, attrs...)
}

// LogWarn логирует предупреждение
func LogWarn(ctx context.Context, msg string, attrs ...any) {
	reqID := middleware.GetRequestID(ctx)
	attrs = append(attrs, "request_id", reqID)
	Logger.Warn(msg, attrs...)
}

// LogInfo логирует информационное сообщение
func LogInfo(ctx context.Context, msg string, attrs ...any) {
	reqID := middleware.GetRequestID(ctx)
	attrs = append(attrs, "request_id", reqID)
	Logger.Info(msg, attrs...)
}

// LogDebug логирует отладочное сообщение
func LogDebug(ctx context.Context, msg string, attrs ...any) {
	reqID := middleware.GetRequestID(ctx)
	attrs = append(attrs, "request_id", reqID)
	Logger.Debug(msg, attrs...)
}

// LogDuration логирует продолжительность выполнения операции
func LogDuration(ctx context.Context, operation string, duration time.Duration, attrs ...any) {
	reqID := middleware.GetRequestID(ctx)
	attrs = append(attrs, "request_id", reqID, "duration_ms", duration.Milliseconds())
	Logger.Info(operation+" completed", attrs...)
}
