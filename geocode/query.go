package geocode

import (
	"strings"
	"unicode"
)

// numberMarkers сокращения, продолжающие номер дома ("14 с 1", "12 корп 1")
var numberMarkers = map[string]bool{
	"с": true, "к": true, "корп": true, "стр": true,
	"корпус": true, "строение": true, "литер": true, "лит": true,
}

// maxNumberTokens ограничение длины номера дома в токенах
const maxNumberTokens = 4

// ParseAddress разбирает адресный запрос на сырые компоненты
// (город, улица, номер дома).
//
// Запрос делится по запятым; первая часть, содержащая "моск", считается
// городом. Номер дома выделяется с конца строки улицы: токены с цифрами
// плюс продолжающие их сокращения (с, к, корп, стр) и одиночные литеры.
// Номер может состоять из нескольких токенов: "14", "14 с1", "12 корп 1".
func ParseAddress(query string) (city, street, number string) {
	parts := strings.Split(query, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	remaining := parts
	if len(parts) > 0 && strings.Contains(strings.ToLower(parts[0]), "моск") {
		city = parts[0]
		remaining = parts[1:]
	}

	if len(remaining) == 0 {
		return city, "", ""
	}

	street, number = splitStreetAndNumber(remaining[0])

	// Вторая часть после запятой — как правило, номер дома
	if len(remaining) > 1 && remaining[1] != "" {
		if number != "" {
			number = number + " " + remaining[1]
		} else {
			number = remaining[1]
		}
	}

	return city, street, number
}

// splitStreetAndNumber отделяет номер дома от названия улицы,
// собирая токены номера с конца строки
func splitStreetAndNumber(streetPart string) (street, number string) {
	tokens := strings.Fields(streetPart)

	numberTokens := make([]string, 0, maxNumberTokens)
	numberStart := -1
	foundDigit := false

	for i := len(tokens) - 1; i >= 0 && len(numberTokens) < maxNumberTokens; i-- {
		token := tokens[i]
		lower := strings.ToLower(token)

		isNumberPart := false
		switch {
		case strings.ContainsAny(token, "0123456789"):
			isNumberPart = true
			foundDigit = true
			numberStart = i
		case foundDigit && numberMarkers[lower]:
			isNumberPart = true
		case foundDigit && isSingleLetter(lower):
			isNumberPart = true
		}

		if isNumberPart {
			numberTokens = append([]string{token}, numberTokens...)
			continue
		}
		if foundDigit {
			// Номер уже собран, дальше идёт название улицы
			break
		}
	}

	if numberStart < 0 {
		return streetPart, ""
	}
	return strings.Join(tokens[:numberStart], " "), strings.Join(numberTokens, " ")
}

func isSingleLetter(s string) bool {
	runes := []rune(s)
	return len(runes) == 1 && unicode.IsLetter(runes[0])
}
