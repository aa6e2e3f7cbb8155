package normalization

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// streetTypeMap словарь нормализации типов улиц (ФИАС-подобный).
// Сокращения приводятся к полным словам: ул → улица, пр-т → проспект и т.д.
var streetTypeMap = map[string]string{
	// улица
	"ул":     "улица",
	"улица":  "улица",
	"у":      "улица",
	// проспект
	"пр-т":     "проспект",
	"просп":    "проспект",
	"проспект": "проспект",
	"пр":       "проспект", // может быть проезд, но приоритет проспекту
	// проезд
	"пр-д":   "проезд",
	"проезд": "проезд",
	// переулок
	"пер":      "переулок",
	"переулок": "переулок",
	// бульвар
	"бул":     "бульвар",
	"бульвар": "бульвар",
	// шоссе
	"ш":     "шоссе",
	"шос":   "шоссе",
	"шоссе": "шоссе",
	// набережная
	"наб":        "набережная",
	"набережная": "набережная",
	// площадь
	"пл":      "площадь",
	"площадь": "площадь",
	// аллея
	"ал":    "аллея",
	"аллея": "аллея",
	// тупик
	"туп":   "тупик",
	"тупик": "тупик",
}

// adjectiveMap словарь нормализации прилагательных в названиях улиц
var adjectiveMap = map[string]string{
	"б":        "большая",
	"бол":      "большая",
	"больш":    "большая",
	"большая":  "большая",
	"большой":  "большая",
	"большое":  "большая",
	"м":        "малая",
	"мал":      "малая",
	"малая":    "малая",
	"малый":    "малая",
	"малое":    "малая",
	"нов":      "новая",
	"новая":    "новая",
	"новый":    "новая",
	"новое":    "новая",
	"стар":     "старая",
	"ст":       "старая",
	"старая":   "старая",
	"старый":   "старая",
	"старое":   "старая",
}

// streetTypesLower типы улиц, которые в отображаемом адресе пишутся со строчной буквы
var streetTypesLower = map[string]bool{
	"улица": true, "проспект": true, "проезд": true, "переулок": true,
	"бульвар": true, "шоссе": true, "набережная": true, "площадь": true,
	"аллея": true, "тупик": true,
}

var (
	rePunct      = regexp.MustCompile(`[.,;]`)
	reSpaces     = regexp.MustCompile(`\s+`)
	reCityPrefix = regexp.MustCompile(`^г\s*`)
	reCityWord   = regexp.MustCompile(`^город\s+`)

	reDots         = regexp.MustCompile(`\.`)
	reCorpusShort  = regexp.MustCompile(`(\d+)\s*к\s*(\d+)`)
	reCorpusAbbr   = regexp.MustCompile(`(\d+)\s*корп\s*(\d+)`)
	reCorpusFull   = regexp.MustCompile(`(\d+)\s*корпус\s*(\d+)`)
	reBuildShort   = regexp.MustCompile(`(\d+)\s*с\s*(\d+)`)
	reBuildAbbr    = regexp.MustCompile(`(\d+)\s*стр\s*(\d+)`)
	reBuildFull    = regexp.MustCompile(`(\d+)\s*строение\s*(\d+)`)
	reSlashCorpus  = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)
	reCorpusDisp   = regexp.MustCompile(`(\d+)\s*к\s*(\d+)`)
	reBuildingDisp = regexp.MustCompile(`(\d+)\s*с\s*(\d+)`)
)

// latinLookalikes заменяет латинские буквы, визуально совпадающие с кириллицей.
// В номерах домов часто набирают "12k1" или "14c1" латиницей.
var latinLookalikes = strings.NewReplacer(
	"a", "а", "b", "в", "c", "с", "e", "е", "h", "н", "k", "к",
	"m", "м", "o", "о", "p", "р", "t", "т", "x", "х", "y", "у",
)

// NormalizeCity нормализует название города.
//
// Нижний регистр, без префиксов г./город, без знаков препинания.
// Любая строка, содержащая "москва" или "moscow", сворачивается в "москва".
func NormalizeCity(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(strings.TrimSpace(s))
	s = rePunct.ReplaceAllString(s, "")
	s = reCityWord.ReplaceAllString(s, "")
	s = reCityPrefix.ReplaceAllString(s, "")
	s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))

	if strings.Contains(s, "moscow") || strings.Contains(s, "москва") {
		return "москва"
	}

	return s
}

// NormalizeStreet нормализует название улицы.
//
// Формат результата: "<прилагательное> <ядро названия> <тип улицы>",
// например "большая серпуховская улица". Тип улицы разворачивается
// из сокращения; если тип не указан, подставляется "улица".
func NormalizeStreet(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(strings.TrimSpace(s))
	s = rePunct.ReplaceAllString(s, "")
	s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))

	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return ""
	}

	var core []string
	streetType := ""
	adjective := ""

	for _, token := range tokens {
		if full, ok := streetTypeMap[token]; ok {
			streetType = full
			continue
		}
		if full, ok := adjectiveMap[token]; ok {
			adjective = full
			continue
		}
		core = append(core, token)
	}

	var parts []string
	if adjective != "" {
		parts = append(parts, adjective)
	}
	parts = append(parts, core...)

	switch {
	case streetType != "":
		parts = append(parts, streetType)
	case len(parts) > 0:
		// Тип не указан — подставляем самый частый
		parts = append(parts, "улица")
	}

	if len(parts) == 0 {
		return s
	}
	return strings.Join(parts, " ")
}

// NormalizeNumber приводит номер дома к каноничному виду "<номер> к<N> с<N>".
//
// Примеры: "12к1", "12 корп. 1" → "12 к1"; "12 стр 2" → "12 с2";
// "12/1" → "12 к1" (дробь трактуется как корпус); "12А" → "12а".
// Латинские буквы-двойники (c, k, ...) заменяются на кириллицу.
func NormalizeNumber(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(strings.TrimSpace(s))
	s = latinLookalikes.Replace(s)
	s = reDots.ReplaceAllString(s, "")

	// Порядок важен: полные формы длиннее, но короткая "к"/"с" не
	// срабатывает внутри "корп"/"стр", т.к. требует цифру сразу после себя
	s = reCorpusShort.ReplaceAllString(s, "$1 к$2")
	s = reCorpusAbbr.ReplaceAllString(s, "$1 к$2")
	s = reCorpusFull.ReplaceAllString(s, "$1 к$2")

	s = reBuildShort.ReplaceAllString(s, "$1 с$2")
	s = reBuildAbbr.ReplaceAllString(s, "$1 с$2")
	s = reBuildFull.ReplaceAllString(s, "$1 с$2")

	// Дробь как корпус: "25/19" → "25 к19"
	s = reSlashCorpus.ReplaceAllString(s, "$1 к$2")

	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// FormatNumberForDisplay разворачивает сокращения номера дома в полные слова.
//
// "12 к1" → "12 корпус 1", "50 к1 с15" → "50 корпус 1 строение 15".
func FormatNumberForDisplay(normNumber string) string {
	if normNumber == "" {
		return ""
	}

	s := reCorpusDisp.ReplaceAllString(normNumber, "$1 корпус $2")
	s = reBuildingDisp.ReplaceAllString(s, "$1 строение $2")

	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// BuildFullNorm строит полный нормализованный адрес для внутреннего сравнения.
//
// Формат: нижний регистр, разделитель пробел, например
// "москва тверская улица 12 к1".
func BuildFullNorm(city, street, number string) string {
	parts := make([]string, 0, 3)
	if city != "" {
		parts = append(parts, city)
	}
	if street != "" {
		parts = append(parts, street)
	}
	if number != "" {
		parts = append(parts, number)
	}
	return strings.Join(parts, " ")
}

// FormatAddress строит отображаемый адрес в требуемом формате:
// "Москва, Стремянный переулок, 14 строение 1".
//
// Город и название улицы с заглавной буквы, тип улицы со строчной,
// сокращения к/с развёрнуты в "корпус"/"строение".
func FormatAddress(city, street, number string) string {
	// cases.Caser хранит внутреннее состояние, поэтому создаётся на каждый вызов
	ruTitle := cases.Title(language.Russian)

	parts := make([]string, 0, 3)

	if city != "" {
		parts = append(parts, ruTitle.String(city))
	}

	if street != "" {
		words := strings.Fields(street)
		formatted := make([]string, 0, len(words))
		for _, word := range words {
			if streetTypesLower[word] {
				formatted = append(formatted, word)
			} else {
				formatted = append(formatted, ruTitle.String(word))
			}
		}
		parts = append(parts, strings.Join(formatted, " "))
	}

	if number != "" {
		parts = append(parts, FormatNumberForDisplay(number))
	}

	return strings.Join(parts, ", ")
}
