package geocode

import (
	"math"

	"geocoder/normalization"
)

// Штрафы дистанции между номерами домов.
//
// Штрафы несимметричны: качественный компонент (корпус, строение, литера),
// указанный в запросе, но отсутствующий у кандидата — сильный сигнал
// несовпадения, обратная ситуация почти безобидна. Пользователи редко
// выдумывают корпуса и строения. Порядок штрафов менять нельзя —
// он напрямую определяет итоговое ранжирование.
const (
	// Основной номер
	PenaltyBaseAdjacent = 5.0  // |diff| == 1, соседние дома
	PenaltyBaseOffset   = 10.0 // |diff| > 1, фиксированная часть
	PenaltyBasePerUnit  = 5.0  // |diff| > 1, за каждую единицу разницы

	// Корпус
	PenaltyCorpusPerUnit = 5.0  // оба указаны
	PenaltyCorpusMissing = 30.0 // в запросе есть, у кандидата нет
	PenaltyCorpusExtra   = 5.0  // у кандидата есть, в запросе нет

	// Строение
	PenaltyBuildingPerUnit = 3.0
	PenaltyBuildingMissing = 20.0
	PenaltyBuildingExtra   = 3.0

	// Литера
	PenaltyLetterDiff    = 2.0
	PenaltyLetterMissing = 10.0
	PenaltyLetterExtra   = 1.0
)

// NumberDistance вычисляет числовую дистанцию между номерами домов.
//
// 0 означает точное совпадение всех указанных в запросе компонентов.
// Отсутствие основного номера с любой из сторон не штрафуется:
// запрос без номера дома не должен проигрывать на этой оси.
func NumberDistance(q, c normalization.ParsedHouseNumber) float64 {
	distance := 0.0

	// Основной номер — самый важный
	if q.Base != nil && c.Base != nil {
		diff := absInt(*q.Base - *c.Base)
		switch {
		case diff == 0:
			// Полное совпадение
		case diff == 1:
			distance += PenaltyBaseAdjacent
		default:
			distance += PenaltyBaseOffset + PenaltyBasePerUnit*float64(diff)
		}
	}

	// Корпус
	switch {
	case q.Corpus != nil && c.Corpus != nil:
		distance += PenaltyCorpusPerUnit * float64(absInt(*q.Corpus-*c.Corpus))
	case q.Corpus != nil:
		distance += PenaltyCorpusMissing
	case c.Corpus != nil:
		distance += PenaltyCorpusExtra
	}

	// Строение
	switch {
	case q.Building != nil && c.Building != nil:
		distance += PenaltyBuildingPerUnit * float64(absInt(*q.Building-*c.Building))
	case q.Building != nil:
		distance += PenaltyBuildingMissing
	case c.Building != nil:
		distance += PenaltyBuildingExtra
	}

	// Литера
	switch {
	case q.Letter != "" && c.Letter != "":
		if q.Letter != c.Letter {
			distance += PenaltyLetterDiff
		}
	case q.Letter != "":
		distance += PenaltyLetterMissing
	case c.Letter != "":
		distance += PenaltyLetterExtra
	}

	return distance
}

// ScoreFromDistance преобразует дистанцию в оценку номера дома.
//
// Ровно 1.0 только при нулевой дистанции — на этом значении завязан
// бонус за точное совпадение в CombineScore. Для distance > 0 оценка
// строго убывает: exp(-distance/beta) ∈ (0, 1).
func ScoreFromDistance(distance, beta float64) float64 {
	if distance == 0 {
		return 1.0
	}
	return math.Exp(-distance / beta)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
