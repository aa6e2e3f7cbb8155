package geocode

import (
	"math"
	"testing"

	"geocoder/normalization"
)

func parsed(t *testing.T, token string) normalization.ParsedHouseNumber {
	t.Helper()
	return normalization.ParseHouseNumber(token)
}

// TestNumberDistance_ExactMatch проверяет нулевую дистанцию при полном совпадении
func TestNumberDistance_ExactMatch(t *testing.T) {
	tokens := []string{"12", "12 к1", "14 с1", "7а", "50 к1 с15"}
	for _, token := range tokens {
		p := parsed(t, token)
		if d := NumberDistance(p, p); d != 0 {
			t.Errorf("NumberDistance(%q, %q) = %g, expected 0", token, token, d)
		}
	}
}

// TestNumberDistance_Base проверяет штрафы за разницу основного номера
func TestNumberDistance_Base(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		cand     string
		expected float64
	}{
		{"соседние дома", "12", "13", PenaltyBaseAdjacent},
		{"разница 2", "12", "14", PenaltyBaseOffset + 2*PenaltyBasePerUnit},
		{"разница 10", "12", "22", PenaltyBaseOffset + 10*PenaltyBasePerUnit},
		{"симметрия по основному номеру", "14", "12", PenaltyBaseOffset + 2*PenaltyBasePerUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NumberDistance(parsed(t, tt.query), parsed(t, tt.cand))
			if d != tt.expected {
				t.Errorf("NumberDistance(%q, %q) = %g, expected %g", tt.query, tt.cand, d, tt.expected)
			}
		})
	}
}

// TestNumberDistance_MissingBase проверяет, что отсутствующий основной
// номер с любой стороны не штрафуется
func TestNumberDistance_MissingBase(t *testing.T) {
	empty := normalization.ParsedHouseNumber{}

	if d := NumberDistance(empty, parsed(t, "12")); d != 0 {
		t.Errorf("NumberDistance(empty, 12) = %g, expected 0", d)
	}
	if d := NumberDistance(parsed(t, "12"), empty); d != 0 {
		t.Errorf("NumberDistance(12, empty) = %g, expected 0", d)
	}
	if d := NumberDistance(empty, empty); d != 0 {
		t.Errorf("NumberDistance(empty, empty) = %g, expected 0", d)
	}
}

// TestNumberDistance_Asymmetry проверяет несимметричность качественных штрафов:
// компонент, указанный в запросе и отсутствующий у кандидата, штрафуется
// сильнее обратной ситуации
func TestNumberDistance_Asymmetry(t *testing.T) {
	tests := []struct {
		name            string
		query           string
		cand            string
		expectedForward float64
	}{
		{"корпус в запросе, нет у кандидата", "12 к1", "12", PenaltyCorpusMissing},
		{"корпус у кандидата, нет в запросе", "12", "12 к1", PenaltyCorpusExtra},
		{"строение в запросе, нет у кандидата", "14 с1", "14", PenaltyBuildingMissing},
		{"строение у кандидата, нет в запросе", "14", "14 с1", PenaltyBuildingExtra},
		{"литера в запросе, нет у кандидата", "7а", "7", PenaltyLetterMissing},
		{"литера у кандидата, нет в запросе", "7", "7а", PenaltyLetterExtra},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NumberDistance(parsed(t, tt.query), parsed(t, tt.cand))
			if d != tt.expectedForward {
				t.Errorf("NumberDistance(%q, %q) = %g, expected %g", tt.query, tt.cand, d, tt.expectedForward)
			}
		})
	}
}

// TestNumberDistance_ComponentDiffs проверяет штрафы при указанных с обеих
// сторон компонентах
func TestNumberDistance_ComponentDiffs(t *testing.T) {
	tests := []struct {
		query    string
		cand     string
		expected float64
	}{
		{"12 к1", "12 к3", 2 * PenaltyCorpusPerUnit},
		{"14 с1", "14 с2", 1 * PenaltyBuildingPerUnit},
		{"7а", "7б", PenaltyLetterDiff},
		{"7а", "7а", 0},
	}

	for _, tt := range tests {
		d := NumberDistance(parsed(t, tt.query), parsed(t, tt.cand))
		if d != tt.expected {
			t.Errorf("NumberDistance(%q, %q) = %g, expected %g", tt.query, tt.cand, d, tt.expected)
		}
	}
}

// TestNumberDistance_Additive проверяет аддитивность штрафов по компонентам
func TestNumberDistance_Additive(t *testing.T) {
	// Соседний дом + пропавший корпус + лишнее строение
	d := NumberDistance(parsed(t, "12 к1"), parsed(t, "13 с2"))
	expected := PenaltyBaseAdjacent + PenaltyCorpusMissing + PenaltyBuildingExtra
	if d != expected {
		t.Errorf("NumberDistance = %g, expected %g", d, expected)
	}
}

// TestScoreFromDistance проверяет преобразование дистанции в оценку
func TestScoreFromDistance(t *testing.T) {
	// Ровно 1.0 только при нулевой дистанции
	if s := ScoreFromDistance(0, DefaultBeta); s != 1.0 {
		t.Errorf("ScoreFromDistance(0) = %g, expected exactly 1.0", s)
	}

	// distance == beta -> exp(-1)
	s := ScoreFromDistance(3, 3)
	if math.Abs(s-math.Exp(-1)) > 1e-12 {
		t.Errorf("ScoreFromDistance(3, 3) = %g, expected %g", s, math.Exp(-1))
	}

	// Строгое убывание
	prev := 1.0
	for _, d := range []float64{0.5, 1, 5, 30, 100} {
		s := ScoreFromDistance(d, DefaultBeta)
		if s <= 0 || s >= prev {
			t.Errorf("ScoreFromDistance(%g) = %g, expected in (0, %g)", d, s, prev)
		}
		prev = s
	}
}
