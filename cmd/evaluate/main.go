// Команда evaluate оценивает качество геокодирования: записи справочника
// прогоняются как запросы, считается доля верных ответов в топе.
package main

import (
	"flag"
	"log"
	"math/rand"

	"geocoder/database"
	"geocoder/geocode"
)

func main() {
	var (
		dbPath = flag.String("db", "buildings.db", "путь к базе данных SQLite")
		sample = flag.Int("sample", 1000, "размер выборки (0 — вся таблица)")
		topK   = flag.Int("k", 10, "размер топа для acc@k")
		seed   = flag.Int64("seed", 42, "зерно генератора выборки")
	)
	flag.Parse()

	db, err := database.NewBuildingsDB(*dbPath)
	if err != nil {
		log.Fatalf("✗ Ошибка открытия базы данных: %v", err)
	}
	defer db.Close()

	records, err := db.LoadBuildings()
	if err != nil {
		log.Fatalf("✗ Ошибка загрузки справочника: %v", err)
	}
	log.Printf("✓ Справочник загружен: %d записей", len(records))

	ranker, err := geocode.NewRanker(geocode.DefaultConfig(), records, nil)
	if err != nil {
		log.Fatalf("✗ Ошибка создания геокодера: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	picked := ranker.Sample(*sample, rng)
	log.Printf("Оценка на выборке из %d записей (k=%d)...", len(picked), *topK)

	result := ranker.Evaluate(picked, *topK)
	log.Printf("✓ %s", result)
}
