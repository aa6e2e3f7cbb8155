// @title Geocoder API
// @version 1.0
// @description Сервис геокодирования адресов Москвы. Нормализация адресов, нечеткий поиск улиц, сравнение номеров домов.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8000
// @BasePath /api
// @schemes http https

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"geocoder/database"
	"geocoder/geocode"
	"geocoder/internal/config"
	"geocoder/server"
)

func main() {
	log.Println("Запуск сервера геокодирования...")

	// Загружаем конфигурацию
	log.Println("[1/5] Загрузка конфигурации...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("✗ Ошибка загрузки конфигурации: %v", err)
		log.Fatalf("Не удалось загрузить конфигурацию из переменных окружения")
	}
	server.SetLogLevel(cfg.LogLevel)
	log.Printf("✓ Конфигурация загружена. Порт: %s", cfg.Port)

	// Открываем базу данных справочника
	log.Println("[2/5] Инициализация базы данных зданий...")
	dbConfig := database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}
	db, err := database.NewBuildingsDBWithConfig(cfg.DatabasePath, dbConfig)
	if err != nil {
		log.Printf("✗ Ошибка открытия базы данных: %v", err)
		log.Fatalf("Не удалось инициализировать базу данных по пути: %s", cfg.DatabasePath)
	}
	defer db.Close()
	log.Printf("✓ БД инициализирована: %s", cfg.DatabasePath)

	// Загружаем справочник в память
	log.Println("[3/5] Загрузка справочника зданий...")
	records, err := db.LoadBuildings()
	if err != nil {
		log.Printf("✗ Ошибка загрузки справочника: %v", err)
		log.Fatalf("Не удалось загрузить справочник зданий")
	}
	if len(records) == 0 {
		log.Fatalf("Справочник зданий пуст. Загрузите данные командой import-buildings")
	}
	log.Printf("✓ Справочник загружен: %d записей", len(records))

	// Создаем ядро сопоставления
	log.Println("[4/5] Инициализация геокодера...")
	ranker, err := geocode.NewRanker(cfg.Scoring, records, nil)
	if err != nil {
		log.Printf("✗ Ошибка создания геокодера: %v", err)
		log.Fatalf("Не удалось инициализировать геокодер")
	}
	log.Printf("✓ Геокодер инициализирован")

	// Запускаем HTTP сервер
	log.Println("[5/5] Запуск HTTP сервера...")
	srv := server.NewServer(cfg, ranker)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("✗ Ошибка запуска сервера: %v", err)
		}
	}()

	log.Printf("✓ Сервер запущен на порту %s", cfg.Port)
	log.Printf("API доступно по адресу: http://localhost:%s/api", cfg.Port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)
	log.Println("Для остановки нажмите Ctrl+C")

	// Ожидаем сигнал завершения
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Получен сигнал завершения, останавливаем сервер...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
