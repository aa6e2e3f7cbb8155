package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"geocoder/geocode"
)

// Config конфигурация сервера геокодирования
type Config struct {
	// Сервер
	Port string `json:"port"`

	// База данных
	DatabasePath string `json:"database_path"`

	// Connection pooling
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`

	// Ограничения API
	DefaultLimit    int     `json:"default_limit"`     // результатов по умолчанию
	MaxLimit        int     `json:"max_limit"`         // максимум результатов в запросе
	MaxBatchRows    int     `json:"max_batch_rows"`    // максимум строк в пакетном файле
	RateLimitPerSec float64 `json:"rate_limit_per_sec"`
	RateLimitBurst  int     `json:"rate_limit_burst"`

	// Логирование
	LogLevel string `json:"log_level"`

	// Параметры скоринга
	Scoring geocode.Config `json:"scoring"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	config := &Config{
		// Сервер
		Port: getEnv("SERVER_PORT", "8000"),

		// База данных
		DatabasePath: getEnv("DATABASE_PATH", "buildings.db"),

		// Connection pooling
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		// Ограничения API
		DefaultLimit:    getEnvInt("GEOCODE_DEFAULT_LIMIT", 10),
		MaxLimit:        getEnvInt("GEOCODE_MAX_LIMIT", 50),
		MaxBatchRows:    getEnvInt("GEOCODE_MAX_BATCH_ROWS", 10000),
		RateLimitPerSec: getEnvFloat("RATE_LIMIT_PER_SEC", 20),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 40),

		// Логирование
		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		// Параметры скоринга
		Scoring: loadScoringConfig(),
	}

	// Валидация
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// loadScoringConfig загружает параметры скоринга из переменных окружения
func loadScoringConfig() geocode.Config {
	cfg := geocode.DefaultConfig()
	cfg.MinStreetScore = getEnvFloat("SCORING_MIN_STREET_SCORE", cfg.MinStreetScore)
	cfg.TopK = getEnvInt("SCORING_TOP_K", cfg.TopK)
	cfg.Beta = getEnvFloat("SCORING_BETA", cfg.Beta)
	return cfg
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat получает переменную окружения как float64 или возвращает значение по умолчанию
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как Duration или возвращает значение по умолчанию
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
