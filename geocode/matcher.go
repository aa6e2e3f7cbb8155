package geocode

import "sort"

// MatchStreets ищет в словаре улицы, похожие на запрошенную.
//
// Возвращает до topK пар (улица, похожесть 0..100) по убыванию похожести;
// улицы с похожестью ниже minScore*100 отбрасываются целиком и до
// сравнения номеров домов не доходят. При равной похожести порядок
// определяется позицией улицы в словаре — результат детерминирован.
func MatchStreets(query string, vocabulary []string, topK int, minScore float64, sim SimilarityFunc) []StreetMatch {
	if query == "" || len(vocabulary) == 0 || topK < 1 {
		return nil
	}

	threshold := minScore * 100

	matches := make([]StreetMatch, 0, topK)
	for _, street := range vocabulary {
		score := float64(sim(query, street))
		if score < threshold {
			continue
		}
		matches = append(matches, StreetMatch{Street: street, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}
