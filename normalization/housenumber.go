package normalization

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedHouseNumber разобранный номер дома.
//
// Отсутствующий компонент (nil / пустая строка) означает "не указан" и
// отличается от нулевого значения. Значение не меняется после создания.
type ParsedHouseNumber struct {
	Base     *int   // основной номер, например 12
	Corpus   *int   // корпус (к1, 12/1)
	Building *int   // строение (с1)
	Letter   string // литера (одна строчная кириллическая буква), "" если нет
}

// Empty сообщает, что номер дома не содержит ни одного компонента
func (p ParsedHouseNumber) Empty() bool {
	return p.Base == nil && p.Corpus == nil && p.Building == nil && p.Letter == ""
}

var (
	reBaseNum     = regexp.MustCompile(`^(\d+)`)
	reCorpusNum   = regexp.MustCompile(`к\s*(\d+)`)
	reBuildingNum = regexp.MustCompile(`с\s*(\d+)`)
	reLetterNum   = regexp.MustCompile(`(\d+)\s*([а-яё]+)`)
)

// letterExclusions маркеры корпуса/строения, которые нельзя принять за литеру
var letterExclusions = map[string]bool{
	"к": true, "с": true, "корпус": true, "строение": true,
}

// ParseHouseNumber разбирает строку номера дома на компоненты.
//
// Принимает как сырой токен ("12к1", "25/19", "14 с1"), так и уже
// нормализованный. Разбор тотальный: нераспознанные хвосты игнорируются,
// пустая или нечисловая строка даёт номер со всеми отсутствующими полями.
func ParseHouseNumber(token string) ParsedHouseNumber {
	norm := NormalizeNumber(token)
	if norm == "" {
		return ParsedHouseNumber{}
	}

	var parsed ParsedHouseNumber

	if m := reBaseNum.FindStringSubmatch(norm); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			parsed.Base = &v
		}
	}

	if m := reCorpusNum.FindStringSubmatch(norm); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			parsed.Corpus = &v
		}
	}

	if m := reBuildingNum.FindStringSubmatch(norm); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			parsed.Building = &v
		}
	}

	// Литера: одна буква сразу после числа, не маркер к/с
	if m := reLetterNum.FindStringSubmatch(norm); m != nil {
		letter := m[2]
		if !letterExclusions[letter] && len([]rune(letter)) == 1 {
			parsed.Letter = strings.ToLower(letter)
		}
	}

	return parsed
}
