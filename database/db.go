package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DBConfig настройки пула соединений SQLite
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// BuildingsDB обертка для работы с базой данных зданий
type BuildingsDB struct {
	conn *sql.DB
}

// NewBuildingsDB создает новое подключение к базе данных зданий
func NewBuildingsDB(dbPath string) (*BuildingsDB, error) {
	return NewBuildingsDBWithConfig(dbPath, DBConfig{})
}

// NewBuildingsDBWithConfig создает новое подключение к базе данных зданий
// с настройками пула соединений
func NewBuildingsDBWithConfig(dbPath string, config DBConfig) (*BuildingsDB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open buildings database: %w", err)
	}

	// Настройка connection pooling
	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else {
		conn.SetMaxOpenConns(25)
	}

	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(5)
	}

	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	// Проверяем подключение
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping buildings database: %w", err)
	}

	// SQLite по умолчанию использует UTF-8, но явно указываем это
	if _, err := conn.Exec("PRAGMA encoding = 'UTF-8'"); err != nil {
		// Это не критично, но логируем
		log.Printf("Warning: failed to set UTF-8 encoding: %v", err)
	}

	db := &BuildingsDB{conn: conn}

	// Инициализируем схему
	if err := InitBuildingsSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize buildings schema: %w", err)
	}

	return db, nil
}

// Close закрывает подключение к базе данных зданий
func (db *BuildingsDB) Close() error {
	return db.conn.Close()
}

// GetDB возвращает указатель на sql.DB для прямого доступа
func (db *BuildingsDB) GetDB() *sql.DB {
	return db.conn
}
