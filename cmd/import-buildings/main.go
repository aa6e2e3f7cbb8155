// Команда import-buildings загружает справочник зданий из CSV или Excel
// файла в базу данных SQLite.
package main

import (
	"flag"
	"log"
	"path/filepath"
	"strings"

	"geocoder/database"
	"geocoder/geocode"
	"geocoder/importer"
)

func main() {
	var (
		inputPath = flag.String("input", "", "путь к CSV или XLSX файлу со справочником")
		dbPath    = flag.String("db", "buildings.db", "путь к базе данных SQLite")
		replace   = flag.Bool("replace", false, "очистить таблицу перед импортом")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatalf("Укажите файл справочника: -input <file.csv|file.xlsx>")
	}

	log.Printf("Импорт справочника из %s в %s", *inputPath, *dbPath)

	var records []geocode.ReferenceRecord
	var err error

	switch strings.ToLower(filepath.Ext(*inputPath)) {
	case ".csv":
		records, err = importer.ParseBuildingsCSV(*inputPath)
	case ".xlsx":
		records, err = importer.ParseBuildingsXLSX(*inputPath)
	default:
		log.Fatalf("Неподдерживаемый формат файла: %s (ожидается .csv или .xlsx)", *inputPath)
	}
	if err != nil {
		log.Fatalf("✗ Ошибка чтения справочника: %v", err)
	}
	log.Printf("✓ Прочитано %d записей", len(records))

	db, err := database.NewBuildingsDB(*dbPath)
	if err != nil {
		log.Fatalf("✗ Ошибка открытия базы данных: %v", err)
	}
	defer db.Close()

	if *replace {
		if err := db.ClearBuildings(); err != nil {
			log.Fatalf("✗ Ошибка очистки таблицы: %v", err)
		}
		log.Printf("✓ Таблица очищена")
	}

	if err := db.InsertBuildings(records); err != nil {
		log.Fatalf("✗ Ошибка записи справочника: %v", err)
	}

	count, err := db.CountBuildings()
	if err != nil {
		log.Fatalf("✗ Ошибка подсчета записей: %v", err)
	}

	log.Printf("✓ Импорт завершен. Записей в базе: %d", count)
}
