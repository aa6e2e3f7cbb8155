package geocode

import fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

// SimilarityFunc сравнивает две нормализованные строки и возвращает
// похожесть 0..100. Функция должна быть коммутативной и давать 100
// только для совпадающих после нормализации строк.
type SimilarityFunc func(a, b string) int

// DefaultSimilarity похожесть строк по умолчанию — quick ratio.
//
// UQRatio — юникодный вариант, кириллица при очистке не отбрасывается.
func DefaultSimilarity(a, b string) int {
	return fuzzy.UQRatio(a, b)
}
