package importer

import (
	"fmt"
	"strconv"
	"strings"

	"geocoder/geocode"
)

// defaultCity подставляется, когда колонки города в файле нет
const defaultCity = "Москва"

// buildingColumns индексы колонок справочника зданий; -1 означает отсутствие
type buildingColumns struct {
	osmID       int
	city        int
	street      int
	houseNumber int
	lon         int
	lat         int
}

// Варианты названий колонок в выгрузках OSM и ручных файлах
var columnAliases = map[string][]string{
	"osm_id":       {"osm_id", "osmid", "id"},
	"city":         {"city", "город"},
	"street":       {"street", "улица"},
	"house_number": {"housenumber", "house_number", "number", "номер дома", "дом"},
	"lon":          {"lon", "longitude", "долгота"},
	"lat":          {"lat", "latitude", "широта"},
}

// findBuildingColumns определяет индексы колонок по строке заголовков
func findBuildingColumns(headers []string) (buildingColumns, error) {
	headerMap := make(map[string]int)
	for i, header := range headers {
		headerMap[strings.TrimSpace(strings.ToLower(header))] = i
	}

	find := func(key string) int {
		for _, alias := range columnAliases[key] {
			if idx, ok := headerMap[alias]; ok {
				return idx
			}
		}
		return -1
	}

	cols := buildingColumns{
		osmID:       find("osm_id"),
		city:        find("city"),
		street:      find("street"),
		houseNumber: find("house_number"),
		lon:         find("lon"),
		lat:         find("lat"),
	}

	// Без улицы, номера и координат справочник бесполезен
	if cols.street == -1 {
		return cols, fmt.Errorf("required column 'street' not found in headers")
	}
	if cols.houseNumber == -1 {
		return cols, fmt.Errorf("required column 'housenumber' not found in headers")
	}
	if cols.lon == -1 || cols.lat == -1 {
		return cols, fmt.Errorf("required columns 'lon'/'lat' not found in headers")
	}

	return cols, nil
}

// cell безопасно извлекает значение колонки из строки файла
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// rowToRecord собирает запись справочника из строки файла.
// Возвращает false, если строка непригодна (нет улицы или координат).
func (c buildingColumns) rowToRecord(row []string) (geocode.ReferenceRecord, bool) {
	r := geocode.ReferenceRecord{
		OSMID:       cell(row, c.osmID),
		City:        cell(row, c.city),
		Street:      cell(row, c.street),
		HouseNumber: cell(row, c.houseNumber),
	}
	if r.City == "" {
		r.City = defaultCity
	}
	if r.Street == "" || r.HouseNumber == "" {
		return r, false
	}

	// В ручных выгрузках встречается запятая как десятичный разделитель
	lon, err := strconv.ParseFloat(strings.ReplaceAll(cell(row, c.lon), ",", "."), 64)
	if err != nil {
		return r, false
	}
	lat, err := strconv.ParseFloat(strings.ReplaceAll(cell(row, c.lat), ",", "."), 64)
	if err != nil {
		return r, false
	}
	r.Lon = lon
	r.Lat = lat

	return geocode.NormalizeRecord(r), true
}
