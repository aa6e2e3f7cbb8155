package geocode

import (
	"testing"
)

// testRecords небольшой справочник для тестов сопоставления
func testRecords(t *testing.T) []ReferenceRecord {
	t.Helper()

	rows := []struct {
		osmID  string
		city   string
		street string
		number string
	}{
		{"1", "Москва", "ул Тверская", "12"},
		{"2", "Москва", "ул Тверская", "12к1"},
		{"3", "Москва", "ул Тверская", "13"},
		{"4", "Москва", "ул Тверская", "20"},
		{"5", "Москва", "Стремянный пер", "14 с1"},
		{"6", "Москва", "Ленинский пр-т", "30"},
		{"7", "Химки", "ул Тверская", "12"},
	}

	records := make([]ReferenceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, NormalizeRecord(ReferenceRecord{
			OSMID:       row.osmID,
			City:        row.city,
			Street:      row.street,
			HouseNumber: row.number,
			Lon:         37.6,
			Lat:         55.7,
		}))
	}
	return records
}

func newTestRanker(t *testing.T, sim SimilarityFunc) *Ranker {
	t.Helper()

	r, err := NewRanker(DefaultConfig(), testRecords(t), sim)
	if err != nil {
		t.Fatalf("NewRanker() failed: %v", err)
	}
	return r
}

// TestNewRanker_Errors проверяет ошибки создания Ranker
func TestNewRanker_Errors(t *testing.T) {
	if _, err := NewRanker(DefaultConfig(), nil, nil); err == nil {
		t.Error("Expected error for empty reference table")
	}

	cfg := DefaultConfig()
	cfg.Beta = 0
	if _, err := NewRanker(cfg, testRecords(t), nil); err == nil {
		t.Error("Expected error for invalid config")
	}
}

// TestMatchBasic проверяет точный фильтр по нормализованным колонкам
func TestMatchBasic(t *testing.T) {
	r := newTestRanker(t, nil)

	// Разные написания одного адреса сводятся к одной записи
	queries := []string{
		"Москва, ул Тверская, 12к1",
		"г. Москва, Тверская ул, 12 корп 1",
	}
	for _, query := range queries {
		results := r.MatchBasic(query, 5)
		if len(results) != 1 {
			t.Errorf("MatchBasic(%q) returned %d results, expected 1", query, len(results))
			continue
		}
		if results[0].Record.OSMID != "2" {
			t.Errorf("MatchBasic(%q) found OSMID %s, expected 2", query, results[0].Record.OSMID)
		}
		if results[0].FinalScore != 1.0 {
			t.Errorf("MatchBasic(%q) score = %g, expected 1.0", query, results[0].FinalScore)
		}
	}

	if results := r.MatchBasic("Москва, Несуществующая улица, 1", 5); len(results) != 0 {
		t.Errorf("MatchBasic expected miss for unknown address, got %d results", len(results))
	}
}

// TestMatchBasic_PartialComponents проверяет, что пустые компоненты
// запроса не участвуют в фильтре
func TestMatchBasic_PartialComponents(t *testing.T) {
	r := newTestRanker(t, nil)

	// Без номера — все дома на улице в порядке таблицы
	results := r.MatchBasic("Москва, ул Тверская", 10)
	if len(results) != 4 {
		t.Fatalf("Expected 4 records on street, got %d", len(results))
	}
	for i, expected := range []string{"1", "2", "3", "4"} {
		if results[i].Record.OSMID != expected {
			t.Errorf("Result %d OSMID = %s, expected %s (table order)", i, results[i].Record.OSMID, expected)
		}
	}

	// Без города — записи из обоих городов
	results = r.MatchBasic(", ул Тверская, 12", 10)
	if len(results) != 2 {
		t.Fatalf("Expected 2 records without city filter, got %d", len(results))
	}
	if results[0].Record.OSMID != "1" || results[1].Record.OSMID != "7" {
		t.Errorf("Unexpected OSMIDs: %s, %s", results[0].Record.OSMID, results[1].Record.OSMID)
	}

	// Ограничение размера результата
	results = r.MatchBasic("Москва, ул Тверская", 2)
	if len(results) != 2 {
		t.Errorf("Expected 2 results with limit=2, got %d", len(results))
	}
}

// TestRank_SelfMatch проверяет, что запись справочника находит сама себя
// с итоговой оценкой ровно 1.0
func TestRank_SelfMatch(t *testing.T) {
	r := newTestRanker(t, nil)

	results := r.Rank("Москва, Стремянный переулок 14 с1", 5)
	if len(results) == 0 {
		t.Fatal("Expected results for self-match query")
	}
	if results[0].Record.OSMID != "5" {
		t.Errorf("Top result OSMID = %s, expected 5", results[0].Record.OSMID)
	}
	if results[0].FinalScore != 1.0 {
		t.Errorf("Top score = %g, expected exactly 1.0", results[0].FinalScore)
	}
}

// TestRank_NumberOrdering проверяет убывание оценки с ростом дистанции номера
func TestRank_NumberOrdering(t *testing.T) {
	r := newTestRanker(t, nil)

	results := r.Rank("Москва, Тверская улица 12", 10)
	if len(results) < 3 {
		t.Fatalf("Expected at least 3 results, got %d", len(results))
	}

	// Дом 12 точнее дома 13, дом 13 точнее дома 20
	if results[0].Record.OSMID != "1" {
		t.Errorf("Top result OSMID = %s, expected 1 (дом 12)", results[0].Record.OSMID)
	}
	for i := 1; i < len(results); i++ {
		if results[i].FinalScore > results[i-1].FinalScore {
			t.Errorf("Results not sorted: score[%d]=%g > score[%d]=%g",
				i, results[i].FinalScore, i-1, results[i-1].FinalScore)
		}
	}

	pos := func(osmID string) int {
		for i, res := range results {
			if res.Record.OSMID == osmID {
				return i
			}
		}
		return -1
	}
	if p13, p20 := pos("3"), pos("4"); p13 == -1 || p20 == -1 || p13 > p20 {
		t.Errorf("Expected дом 13 (pos %d) ranked above дом 20 (pos %d)", p13, p20)
	}
}

// TestRank_CityFilter проверяет фильтрацию по городу запроса
func TestRank_CityFilter(t *testing.T) {
	r := newTestRanker(t, nil)

	// Город не указан — по умолчанию Москва, запись из Химок не попадает
	results := r.Rank("Тверская улица 12", 20)
	for _, res := range results {
		if res.Record.OSMID == "7" {
			t.Error("Expected record from Химки to be filtered out for default city")
		}
	}
}

// TestRank_NoStreetMatches проверяет пустой результат, когда ни одна улица
// не проходит порог похожести
func TestRank_NoStreetMatches(t *testing.T) {
	r := newTestRanker(t, nil)

	results := r.Rank("Москва, жжжжжжжжж цццццццц 1", 10)
	if len(results) != 0 {
		t.Errorf("Expected no results for gibberish street, got %d", len(results))
	}
}

// TestRank_Limit проверяет ограничение размера результата
func TestRank_Limit(t *testing.T) {
	r := newTestRanker(t, nil)

	results := r.Rank("Москва, Тверская улица 12", 2)
	if len(results) != 2 {
		t.Errorf("Expected 2 results with limit=2, got %d", len(results))
	}
}

// TestRank_TieBreakTableOrder проверяет, что при равных оценках порядок
// определяется позицией в справочной таблице
func TestRank_TieBreakTableOrder(t *testing.T) {
	records := []ReferenceRecord{
		NormalizeRecord(ReferenceRecord{OSMID: "a", City: "Москва", Street: "Первая улица", HouseNumber: "1"}),
		NormalizeRecord(ReferenceRecord{OSMID: "b", City: "Москва", Street: "Вторая улица", HouseNumber: "1"}),
		NormalizeRecord(ReferenceRecord{OSMID: "c", City: "Москва", Street: "Третья улица", HouseNumber: "1"}),
	}

	// Все улицы одинаково похожи — оценки совпадают
	constSim := func(a, b string) int { return 80 }
	r, err := NewRanker(DefaultConfig(), records, constSim)
	if err != nil {
		t.Fatalf("NewRanker() failed: %v", err)
	}

	results := r.Rank("Москва, Какая-то улица 1", 10)
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for i, expected := range []string{"a", "b", "c"} {
		if results[i].Record.OSMID != expected {
			t.Errorf("Result %d OSMID = %s, expected %s (table order)", i, results[i].Record.OSMID, expected)
		}
	}
}

// TestRank_QueryWithoutStreet проверяет запрос без улицы: все улицы
// участвуют с нейтральной похожестью
func TestRank_QueryWithoutStreet(t *testing.T) {
	r := newTestRanker(t, nil)

	results := r.Rank("Москва, 12", 20)
	if len(results) == 0 {
		t.Fatal("Expected results for query without street")
	}
	for _, res := range results {
		if res.StreetSim != 0.5 {
			t.Errorf("Expected neutral street similarity 0.5, got %g", res.StreetSim)
		}
	}
	// Лучший кандидат — дом 12 без корпуса
	if results[0].Record.OSMID != "1" {
		t.Errorf("Top result OSMID = %s, expected 1", results[0].Record.OSMID)
	}
}

// TestGeocode_Strategy проверяет стратегию "сначала точно, потом фуззи"
func TestGeocode_Strategy(t *testing.T) {
	r := newTestRanker(t, nil)

	// Точное совпадение возвращается одним результатом
	results := r.Geocode("Москва, ул Тверская, 12к1", 10, false)
	if len(results) != 1 {
		t.Fatalf("Expected single exact result, got %d", len(results))
	}
	if results[0].FinalScore != 1.0 {
		t.Errorf("Exact result score = %g, expected 1.0", results[0].FinalScore)
	}

	// В режиме debug всегда работает фуззи-конвейер
	results = r.Geocode("Москва, ул Тверская, 12к1", 10, true)
	if len(results) < 2 {
		t.Errorf("Expected multiple fuzzy results in debug mode, got %d", len(results))
	}

	// Опечатка не находится точным поиском, но находится фуззи
	results = r.Geocode("Москва, Тверскя улица 12", 10, false)
	if len(results) == 0 {
		t.Fatal("Expected fuzzy fallback results for misspelled street")
	}
	if results[0].Record.OSMID != "1" {
		t.Errorf("Fuzzy top OSMID = %s, expected 1", results[0].Record.OSMID)
	}
}

// TestEvaluate проверяет оценку качества на самих записях справочника
func TestEvaluate(t *testing.T) {
	r := newTestRanker(t, nil)

	// Запись из Химок в выборку не берем: город вне покрытия
	sample := testRecords(t)[:6]
	result := r.Evaluate(sample, 5)

	if result.Total != len(sample) {
		t.Errorf("Total = %d, expected %d", result.Total, len(sample))
	}
	if result.Top1 != len(sample) {
		t.Errorf("Top1 = %d, expected %d (self queries must match)", result.Top1, len(sample))
	}
	if result.Accuracy1() != 1.0 {
		t.Errorf("Accuracy1 = %g, expected 1.0", result.Accuracy1())
	}
	if result.MeanScore != 1.0 {
		t.Errorf("MeanScore = %g, expected 1.0", result.MeanScore)
	}
}
