package geocode

import (
	"errors"
	"sort"
	"strings"

	"geocoder/normalization"
)

// defaultCity город по умолчанию, когда запрос его не содержит
const defaultCity = "москва"

// streetSimWithoutStreet похожесть улицы, когда улица в запросе не указана:
// кандидаты не отбрасываются, но и не получают преимущества
const streetSimWithoutStreet = 0.5

// Ranker сопоставляет адресные запросы со справочной таблицей.
//
// Справочник загружается один раз при создании и далее только читается,
// поэтому Ranker безопасен для конкурентного использования из обработчиков.
type Ranker struct {
	cfg Config
	sim SimilarityFunc

	records    []ReferenceRecord
	vocabulary []string         // уникальные улицы в порядке появления в таблице
	byStreet   map[string][]int // нормализованная улица -> индексы записей
}

// NormalizeRecord заполняет нормализованные поля записи справочника.
// Вызывается при загрузке таблицы; ядро сопоставления работает только
// с уже нормализованными записями.
func NormalizeRecord(r ReferenceRecord) ReferenceRecord {
	r.CityNorm = normalization.NormalizeCity(r.City)
	r.StreetNorm = normalization.NormalizeStreet(r.Street)
	r.NumberNorm = normalization.NormalizeNumber(r.HouseNumber)
	r.Number = normalization.ParseHouseNumber(r.HouseNumber)
	return r
}

// NewRanker создаёт Ranker над справочной таблицей.
// Записи должны быть нормализованы (см. NormalizeRecord).
// Если sim == nil, используется DefaultSimilarity.
func NewRanker(cfg Config, records []ReferenceRecord, sim SimilarityFunc) (*Ranker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("reference table is empty")
	}
	if sim == nil {
		sim = DefaultSimilarity
	}

	r := &Ranker{
		cfg:      cfg,
		sim:      sim,
		records:  records,
		byStreet: make(map[string][]int),
	}

	for i, rec := range records {
		if _, seen := r.byStreet[rec.StreetNorm]; !seen {
			r.vocabulary = append(r.vocabulary, rec.StreetNorm)
		}
		r.byStreet[rec.StreetNorm] = append(r.byStreet[rec.StreetNorm], i)
	}

	return r, nil
}

// Records возвращает справочную таблицу (для оценки качества)
func (r *Ranker) Records() []ReferenceRecord {
	return r.records
}

// MatchBasic выполняет "базовое" геокодирование: точный фильтр по
// нормализованным колонкам справочника.
//
// Запрос разбирается строго по запятым на (город, улица, номер); пустой
// компонент не участвует в фильтре. Все совпадения получают оценку 1.0
// и возвращаются в порядке справочной таблицы, не более limit штук
// (limit <= 0 — без ограничения).
func (r *Ranker) MatchBasic(query string, limit int) []ScoredResult {
	parts := strings.Split(query, ",")
	var city, street, number string
	if len(parts) > 0 {
		city = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		street = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		number = strings.TrimSpace(parts[2])
	}

	cityNorm := normalization.NormalizeCity(city)
	streetNorm := normalization.NormalizeStreet(street)
	numberNorm := normalization.NormalizeNumber(number)

	// Улица известна — достаточно пройти только её записи
	indexes := r.byStreet[streetNorm]
	if streetNorm == "" {
		indexes = nil
		for i := range r.records {
			indexes = append(indexes, i)
		}
	}

	var results []ScoredResult
	for _, i := range indexes {
		rec := r.records[i]
		if cityNorm != "" && rec.CityNorm != cityNorm {
			continue
		}
		if numberNorm != "" && rec.NumberNorm != numberNorm {
			continue
		}

		results = append(results, ScoredResult{
			MatchCandidate: MatchCandidate{
				Record:      rec,
				StreetSim:   1.0,
				NumberScore: 1.0,
			},
			NumberDistance: 0,
			FinalScore:     1.0,
		})
		if limit > 0 && len(results) == limit {
			break
		}
	}
	return results
}

// Rank выполняет фуззи-сопоставление запроса со справочником.
//
// Конвейер: разбор запроса -> нормализация -> фуззи-поиск улиц по словарю ->
// дистанция номеров домов для записей на улицах-кандидатах -> взвешенная
// итоговая оценка. Результаты отсортированы по убыванию FinalScore;
// при равных оценках сохраняется порядок справочной таблицы.
// limit <= 0 означает "без ограничения".
func (r *Ranker) Rank(query string, limit int) []ScoredResult {
	city, street, number := ParseAddress(query)

	cityNorm := normalization.NormalizeCity(city)
	if cityNorm == "" {
		cityNorm = defaultCity
	}
	streetNorm := normalization.NormalizeStreet(street)
	parsed := normalization.ParseHouseNumber(number)
	queryHasNumber := !parsed.Empty()

	// Похожесть по каждой улице-кандидату
	streetSims := make(map[string]float64)
	if streetNorm == "" {
		for _, s := range r.vocabulary {
			streetSims[s] = streetSimWithoutStreet
		}
	} else {
		matches := MatchStreets(streetNorm, r.vocabulary, r.cfg.TopK, r.cfg.MinStreetScore, r.sim)
		if len(matches) == 0 {
			return nil
		}
		for _, m := range matches {
			streetSims[m.Street] = m.Score / 100.0
		}
	}

	// Обход в порядке таблицы, чтобы сортировка по оценке была
	// детерминированной при равных значениях
	results := make([]ScoredResult, 0, 64)
	for i, rec := range r.records {
		streetSim, ok := streetSims[rec.StreetNorm]
		if !ok {
			continue
		}
		if rec.CityNorm != "" && rec.CityNorm != cityNorm {
			continue
		}

		dist := NumberDistance(parsed, rec.Number)
		numberScore := ScoreFromDistance(dist, r.cfg.Beta)
		final := r.cfg.CombineScore(streetSim, numberScore, queryHasNumber)

		results = append(results, ScoredResult{
			MatchCandidate: MatchCandidate{
				Record:      r.records[i],
				StreetSim:   streetSim,
				NumberScore: numberScore,
			},
			NumberDistance: dist,
			FinalScore:     final,
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].FinalScore > results[b].FinalScore
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Geocode выполняет геокодирование по стратегии "сначала точно, потом фуззи".
//
// Базовый точный фильтр сохраняет результат там, где он и так хорош; фуззи
// включается только когда точный поиск ничего не нашёл. В отладочном режиме
// фуззи-конвейер выполняется всегда, чтобы были видны промежуточные оценки.
func (r *Ranker) Geocode(query string, limit int, debug bool) []ScoredResult {
	if !debug {
		if basic := r.MatchBasic(query, limit); len(basic) > 0 {
			return basic
		}
	}
	return r.Rank(query, limit)
}
