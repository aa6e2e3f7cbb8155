package geocode

import "geocoder/normalization"

// ReferenceRecord одна запись справочной таблицы адресов.
//
// Загружается один раз на старте и далее только читается; координаты и
// идентификаторы — сквозные атрибуты, ядро их не интерпретирует.
type ReferenceRecord struct {
	OSMID       string
	City        string
	Street      string
	HouseNumber string
	Lon         float64
	Lat         float64

	// Нормализованные поля; заполняются при загрузке
	CityNorm   string
	StreetNorm string
	NumberNorm string

	// Предразобранный номер дома
	Number normalization.ParsedHouseNumber
}

// MatchCandidate запись справочника с вычисленными для конкретного запроса
// оценками похожести улицы и номера дома
type MatchCandidate struct {
	Record      ReferenceRecord
	StreetSim   float64 // похожесть улицы, 0..1
	NumberScore float64 // оценка номера дома, 0..1
}

// ScoredResult кандидат с итоговой оценкой; результаты всегда отдаются
// по убыванию FinalScore
type ScoredResult struct {
	MatchCandidate
	NumberDistance float64 // дистанция между номерами домов (для отладки)
	FinalScore     float64 // итоговая оценка, 0..1
}

// StreetMatch улица из словаря с похожестью на запрошенную, 0..100
type StreetMatch struct {
	Street string
	Score  float64
}
