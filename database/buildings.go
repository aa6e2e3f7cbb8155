package database

import (
	"database/sql"
	"fmt"

	"geocoder/geocode"
)

// InitBuildingsSchema initializes the buildings database schema
func InitBuildingsSchema(db *sql.DB) error {
	schema := `
	-- Справочная таблица зданий (OSM)
	CREATE TABLE IF NOT EXISTS buildings (
		id INTEGER PRIMARY KEY,
		osm_id TEXT,                             -- Идентификатор объекта OSM
		city TEXT NOT NULL,                      -- Город как в источнике
		street TEXT NOT NULL,                    -- Улица как в источнике
		house_number TEXT NOT NULL,              -- Номер дома как в источнике
		lon REAL NOT NULL,                       -- Долгота
		lat REAL NOT NULL,                       -- Широта
		city_norm TEXT NOT NULL,                 -- Нормализованный город
		street_norm TEXT NOT NULL,               -- Нормализованная улица
		number_norm TEXT NOT NULL,               -- Нормализованный номер дома
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Indexes for performance optimization
	CREATE INDEX IF NOT EXISTS idx_buildings_osm_id ON buildings(osm_id);
	CREATE INDEX IF NOT EXISTS idx_buildings_street_norm ON buildings(street_norm);
	CREATE INDEX IF NOT EXISTS idx_buildings_full_norm ON buildings(city_norm, street_norm, number_norm);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create buildings schema: %w", err)
	}

	return nil
}

// InsertBuildings вставляет записи справочника одной транзакцией.
// Нормализованные поля записей должны быть заполнены (см. geocode.NormalizeRecord).
func (db *BuildingsDB) InsertBuildings(records []geocode.ReferenceRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO buildings (osm_id, city, street, house_number, lon, lat, city_norm, street_norm, number_norm)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(r.OSMID, r.City, r.Street, r.HouseNumber, r.Lon, r.Lat,
			r.CityNorm, r.StreetNorm, r.NumberNorm)
		if err != nil {
			return fmt.Errorf("failed to insert building %s %s: %w", r.Street, r.HouseNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit buildings insert: %w", err)
	}

	return nil
}

// LoadBuildings загружает всю справочную таблицу в порядке вставки.
// Разобранный номер дома восстанавливается из исходного значения.
func (db *BuildingsDB) LoadBuildings() ([]geocode.ReferenceRecord, error) {
	rows, err := db.conn.Query(`
		SELECT osm_id, city, street, house_number, lon, lat, city_norm, street_norm, number_norm
		FROM buildings
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query buildings: %w", err)
	}
	defer rows.Close()

	var records []geocode.ReferenceRecord
	for rows.Next() {
		var r geocode.ReferenceRecord
		var osmID sql.NullString
		if err := rows.Scan(&osmID, &r.City, &r.Street, &r.HouseNumber, &r.Lon, &r.Lat,
			&r.CityNorm, &r.StreetNorm, &r.NumberNorm); err != nil {
			return nil, fmt.Errorf("failed to scan building row: %w", err)
		}
		if osmID.Valid {
			r.OSMID = osmID.String
		}
		// Нормализованные строки хранятся в базе, разбор номера дешевле
		// повторить, чем сериализовать
		r = geocode.NormalizeRecord(r)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate buildings: %w", err)
	}

	return records, nil
}

// CountBuildings возвращает количество записей в справочнике
func (db *BuildingsDB) CountBuildings() (int, error) {
	var count int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM buildings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count buildings: %w", err)
	}
	return count, nil
}

// ClearBuildings удаляет все записи справочника (перед повторным импортом)
func (db *BuildingsDB) ClearBuildings() error {
	if _, err := db.conn.Exec(`DELETE FROM buildings`); err != nil {
		return fmt.Errorf("failed to clear buildings: %w", err)
	}
	return nil
}
