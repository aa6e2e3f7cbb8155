package geocode

import "fmt"

// Параметры скоринга по умолчанию. Все "магические" значения формулы
// вынесены в именованные константы и переопределяются через Config.
const (
	// DefaultMinStreetScore минимальная похожесть улицы (0..1);
	// улицы ниже порога не участвуют в сравнении номеров домов
	DefaultMinStreetScore = 0.6

	// DefaultTopK максимум улиц-кандидатов из фуззи-поиска
	DefaultTopK = 15

	// DefaultBeta коэффициент экспоненциального убывания оценки номера:
	// number_score = exp(-distance/beta)
	DefaultBeta = 3.0

	// Веса улицы и номера, когда номер дома в запросе не указан
	DefaultStreetWeight = 0.25
	DefaultNumberWeight = 0.75

	// Веса улицы и номера, когда номер дома в запросе указан
	DefaultStreetWeightWithNumber = 0.2
	DefaultNumberWeightWithNumber = 0.8

	// ExactMatchStreetSim порог похожести улицы, при котором точное
	// совпадение номера (number_score == 1.0) даёт итоговую оценку 1.0
	ExactMatchStreetSim = 0.95
)

// Config параметры скоринга геокодера.
//
// Передаётся в Ranker при создании, а не через глобальное состояние,
// чтобы скоринг оставался чистым и тестировался с другими наборами.
type Config struct {
	MinStreetScore float64 // порог похожести улицы, 0..1
	TopK           int     // максимум улиц-кандидатов
	Beta           float64 // коэффициент убывания оценки номера

	StreetWeight float64 // вес улицы без номера в запросе
	NumberWeight float64 // вес номера без номера в запросе

	StreetWeightWithNumber float64 // вес улицы при указанном номере
	NumberWeightWithNumber float64 // вес номера при указанном номере
}

// DefaultConfig возвращает конфигурацию скоринга по умолчанию
func DefaultConfig() Config {
	return Config{
		MinStreetScore:         DefaultMinStreetScore,
		TopK:                   DefaultTopK,
		Beta:                   DefaultBeta,
		StreetWeight:           DefaultStreetWeight,
		NumberWeight:           DefaultNumberWeight,
		StreetWeightWithNumber: DefaultStreetWeightWithNumber,
		NumberWeightWithNumber: DefaultNumberWeightWithNumber,
	}
}

// Validate проверяет корректность параметров скоринга.
// Ошибки конфигурации — это ошибки старта, а не обработки запроса.
func (c Config) Validate() error {
	if c.Beta <= 0 {
		return fmt.Errorf("beta must be positive, got %g", c.Beta)
	}
	if c.MinStreetScore < 0 || c.MinStreetScore > 1 {
		return fmt.Errorf("min street score must be in [0,1], got %g", c.MinStreetScore)
	}
	if c.TopK < 1 {
		return fmt.Errorf("top k must be at least 1, got %d", c.TopK)
	}
	if err := validateWeights("street/number weights", c.StreetWeight, c.NumberWeight); err != nil {
		return err
	}
	return validateWeights("street/number weights with number", c.StreetWeightWithNumber, c.NumberWeightWithNumber)
}

func validateWeights(name string, street, number float64) error {
	if street < 0 || street > 1 || number < 0 || number > 1 {
		return fmt.Errorf("%s must be in [0,1], got %g/%g", name, street, number)
	}
	const eps = 1e-9
	if diff := street + number - 1.0; diff > eps || diff < -eps {
		return fmt.Errorf("%s must sum to 1.0, got %g", name, street+number)
	}
	return nil
}
