package importer

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"geocoder/geocode"
)

// ParseBuildingsXLSX читает справочник зданий из Excel-файла.
// Используется первый лист; структура колонок та же, что и у CSV.
func ParseBuildingsXLSX(filePath string) ([]geocode.ReferenceRecord, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// Получаем имя первого листа
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("file is too short, expected at least header row and one data row")
	}

	cols, err := findBuildingColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var records []geocode.ReferenceRecord
	skipped := 0

	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
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
		return nil, fmt.Errorf("no valid building records found in Excel file")
	}

	return records, nil
}

// isEmptyRow проверяет, что все ячейки строки пусты
func isEmptyRow(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
