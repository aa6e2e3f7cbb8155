package geocode

// CombineScore сводит похожесть улицы и оценку номера дома в итоговую оценку.
//
// Выбор весов зависит от того, указан ли номер дома в запросе: при
// указанном номере он важнее (0.2/0.8), без номера веса чуть смещаются
// к улице (0.25/0.75). Если улица совпала почти точно
// (street_sim >= ExactMatchStreetSim) и номер совпал точно
// (number_score == 1.0, строгое равенство из ветки нулевой дистанции),
// итоговая оценка принудительно 1.0.
//
// Чистая функция без побочных эффектов.
func (c Config) CombineScore(streetSim, numberScore float64, queryHasNumber bool) float64 {
	streetWeight := c.StreetWeight
	numberWeight := c.NumberWeight
	if queryHasNumber {
		streetWeight = c.StreetWeightWithNumber
		numberWeight = c.NumberWeightWithNumber
	}

	score := streetWeight*streetSim + numberWeight*numberScore

	// Бонус за точное совпадение: сравнение именно с литералом 1.0,
	// который даёт только ветка нулевой дистанции
	if streetSim >= ExactMatchStreetSim && numberScore == 1.0 {
		score = 1.0
	}

	return score
}
