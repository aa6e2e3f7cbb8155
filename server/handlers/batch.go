package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"geocoder/normalization"
	apperrors "geocoder/server/errors"
)

// batchResultHeaders колонки результирующего файла пакетного геокодирования
var batchResultHeaders = []string{
	"address", "normalized_address", "lon", "lat", "score",
}

// HandleGeocodeBatchGin обработчик пакетного геокодирования из Excel-файла
// @Summary Пакетное геокодирование из Excel-файла
// @Description Принимает xlsx-файл с адресами в первой колонке и возвращает xlsx с лучшим кандидатом для каждого адреса
// @Tags geocode
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param file formData file true "Excel-файл с адресами"
// @Success 200 {file} file "Результат геокодирования"
// @Failure 400 {object} ErrorResponse "Неверный запрос"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/geocode/batch [post]
func (h *GeocodeHandler) HandleGeocodeBatchGin(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErr := apperrors.NewValidationError("файл не передан", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" {
		appErr := apperrors.NewValidationError("поддерживаются только файлы .xlsx", nil)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := apperrors.NewInternalError("не удалось открыть файл", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		appErr := apperrors.NewValidationError("не удалось прочитать Excel-файл", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		appErr := apperrors.NewValidationError("в файле нет листов", nil)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		appErr := apperrors.NewInternalError("не удалось прочитать строки файла", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	// Адреса берутся из первой колонки; строка заголовка пропускается,
	// если не похожа на адрес
	addresses := extractAddresses(rows)
	if len(addresses) == 0 {
		appErr := apperrors.NewValidationError("в файле не найдено адресов", nil)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}
	if len(addresses) > h.cfg.MaxBatchRows {
		appErr := apperrors.NewValidationError(
			fmt.Sprintf("слишком много строк: %d (максимум %d)", len(addresses), h.cfg.MaxBatchRows), nil)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	out := excelize.NewFile()
	defer out.Close()

	outSheet := out.GetSheetName(0)
	for col, header := range batchResultHeaders {
		cellName, _ := excelize.CoordinatesToCellName(col+1, 1)
		out.SetCellValue(outSheet, cellName, header)
	}

	for i, address := range addresses {
		rowIdx := i + 2
		out.SetCellValue(outSheet, fmt.Sprintf("A%d", rowIdx), address)

		results := h.ranker.Geocode(address, 1, false)
		if len(results) == 0 {
			continue
		}

		best := results[0]
		out.SetCellValue(outSheet, fmt.Sprintf("B%d", rowIdx),
			normalization.FormatAddress(best.Record.CityNorm, best.Record.StreetNorm, best.Record.NumberNorm))
		out.SetCellValue(outSheet, fmt.Sprintf("C%d", rowIdx), best.Record.Lon)
		out.SetCellValue(outSheet, fmt.Sprintf("D%d", rowIdx), best.Record.Lat)
		out.SetCellValue(outSheet, fmt.Sprintf("E%d", rowIdx), roundScore(best.FinalScore))
	}

	filename := fmt.Sprintf("geocoded_%s.xlsx", time.Now().Format("2006-01-02_15-04-05"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Status(http.StatusOK)

	if err := out.Write(c.Writer); err != nil {
		// Заголовки уже отправлены, остается только залогировать
		_ = c.Error(err)
	}
}

// extractAddresses собирает адреса из первой колонки, пропуская пустые
// строки и строку заголовка
func extractAddresses(rows [][]string) []string {
	var addresses []string
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		value := strings.TrimSpace(row[0])
		if value == "" {
			continue
		}
		// Заголовок вида "address"/"адрес" в первой строке
		if i == 0 {
			lower := strings.ToLower(value)
			if lower == "address" || lower == "адрес" || lower == "query" {
				continue
			}
		}
		addresses = append(addresses, value)
	}
	return addresses
}
