package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"geocoder/geocode"
)

// ParseBuildingsCSV читает справочник зданий из CSV-файла.
//
// Файл может быть в UTF-8 или windows-1251 (выгрузки из 1С и Excel),
// с разделителем запятая или точка с запятой. Строки с непригодными
// координатами пропускаются с предупреждением в лог.
func ParseBuildingsCSV(filePath string) ([]geocode.ReferenceRecord, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	data, err = decodeToUTF8(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	cols, err := findBuildingColumns(headers)
	if err != nil {
		return nil, err
	}

	var records []geocode.ReferenceRecord
	skipped := 0
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", line+1, err)
		}
		line++

		record, ok := cols.rowToRecord(row)
		if !ok {
			skipped++
			continue
		}
		records = append(records, record)
	}

	if skipped > 0 {
		log.Printf("Skipped %d rows with missing address or invalid coordinates", skipped)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no valid building records found in CSV file")
	}

	return records, nil
}

// decodeToUTF8 приводит содержимое файла к UTF-8.
// Невалидный UTF-8 трактуется как windows-1251.
func decodeToUTF8(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		// Убираем BOM, если файл сохранён из Excel
		return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}), nil
	}

	decoded, _, err := transform.Bytes(charmap.Windows1251.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode windows-1251 content: %w", err)
	}
	return decoded, nil
}

// detectDelimiter выбирает разделитель по первой строке файла
func detectDelimiter(data []byte) rune {
	firstLine := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		firstLine = data[:idx]
	}
	if bytes.Count(firstLine, []byte{';'}) > bytes.Count(firstLine, []byte{','}) {
		return ';'
	}
	return ','
}
