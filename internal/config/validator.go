package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"geocoder/geocode"
)

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	// Валидация пути к базе данных
	if c.DatabasePath == "" {
		errors = append(errors, "database path is required")
	}

	// Валидация connection pooling
	if c.MaxOpenConns < 1 {
		errors = append(errors, "max open connections must be at least 1")
	}
	if c.MaxIdleConns < 1 {
		errors = append(errors, "max idle connections must be at least 1")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		errors = append(errors, "max idle connections cannot be greater than max open connections")
	}
	if c.ConnMaxLifetime < time.Second {
		errors = append(errors, "connection max lifetime must be at least 1 second")
	}

	// Валидация ограничений API
	if c.DefaultLimit < 1 {
		errors = append(errors, "default limit must be at least 1")
	}
	if c.MaxLimit < c.DefaultLimit {
		errors = append(errors, "max limit cannot be less than default limit")
	}
	if c.MaxBatchRows < 1 {
		errors = append(errors, "max batch rows must be at least 1")
	}
	if c.RateLimitPerSec <= 0 {
		errors = append(errors, "rate limit per second must be positive")
	}
	if c.RateLimitBurst < 1 {
		errors = append(errors, "rate limit burst must be at least 1")
	}

	// Валидация уровня логирования
	validLogLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	if c.LogLevel != "" {
		valid := false
		logLevelUpper := strings.ToUpper(c.LogLevel)
		for _, level := range validLogLevels {
			if logLevelUpper == level {
				valid = true
				break
			}
		}
		if !valid {
			errors = append(errors, fmt.Sprintf("invalid log level: %s (valid: %s)",
				c.LogLevel, strings.Join(validLogLevels, ", ")))
		}
	}

	// Валидация параметров скоринга
	if err := c.Scoring.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("scoring config: %v", err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// GetDefaults возвращает конфигурацию со значениями по умолчанию
func GetDefaults() *Config {
	return &Config{
		Port:            "8000",
		DatabasePath:    "buildings.db",
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		DefaultLimit:    10,
		MaxLimit:        50,
		MaxBatchRows:    10000,
		RateLimitPerSec: 20,
		RateLimitBurst:  40,
		LogLevel:        "INFO",
		Scoring:         geocode.DefaultConfig(),
	}
}
