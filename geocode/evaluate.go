package geocode

import (
	"fmt"
	"math/rand"

	"geocoder/normalization"
)

// EvalResult итоги прогона оценки качества на выборке справочника
type EvalResult struct {
	Total     int     // размер выборки
	Top1      int     // верный адрес на первом месте
	TopK      int     // верный адрес среди первых K
	MeanScore float64 // средняя итоговая оценка первого кандидата
}

// Accuracy1 доля запросов с верным адресом на первом месте
func (e EvalResult) Accuracy1() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Top1) / float64(e.Total)
}

// AccuracyK доля запросов с верным адресом в топ-K
func (e EvalResult) AccuracyK() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.TopK) / float64(e.Total)
}

func (e EvalResult) String() string {
	return fmt.Sprintf("total=%d acc@1=%.3f acc@k=%.3f mean=%.3f",
		e.Total, e.Accuracy1(), e.AccuracyK(), e.MeanScore)
}

// Sample выбирает n случайных записей справочника для оценки качества.
// При n <= 0 или n >= размера таблицы возвращается вся таблица.
func (r *Ranker) Sample(n int, rng *rand.Rand) []ReferenceRecord {
	if n <= 0 || n >= len(r.records) {
		return r.records
	}
	idx := rng.Perm(len(r.records))[:n]
	sample := make([]ReferenceRecord, 0, n)
	for _, i := range idx {
		sample = append(sample, r.records[i])
	}
	return sample
}

// Evaluate прогоняет записи выборки как запросы через фуззи-геокодер
// и считает, как часто исходная запись оказывается в топе результатов.
// Запись считается найденной по совпадению OSMID, а при его отсутствии —
// по полному нормализованному адресу.
func (r *Ranker) Evaluate(sample []ReferenceRecord, k int) EvalResult {
	if k < 1 {
		k = 1
	}

	var res EvalResult
	var scoreSum float64

	for _, rec := range sample {
		query := rec.City + ", " + rec.Street + " " + rec.HouseNumber
		results := r.Rank(query, k)
		if len(results) == 0 {
			res.Total++
			continue
		}

		res.Total++
		scoreSum += results[0].FinalScore

		for pos, cand := range results {
			if !sameRecord(rec, cand.Record) {
				continue
			}
			if pos == 0 {
				res.Top1++
			}
			res.TopK++
			break
		}
	}

	if res.Total > 0 {
		res.MeanScore = scoreSum / float64(res.Total)
	}
	return res
}

func sameRecord(a, b ReferenceRecord) bool {
	if a.OSMID != "" && b.OSMID != "" {
		return a.OSMID == b.OSMID
	}
	return normalization.BuildFullNorm(a.CityNorm, a.StreetNorm, a.NumberNorm) ==
		normalization.BuildFullNorm(b.CityNorm, b.StreetNorm, b.NumberNorm)
}
