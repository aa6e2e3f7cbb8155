package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"geocoder/geocode"
	"geocoder/internal/config"
)

// setupTestHandler создает обработчик над маленьким справочником
func setupTestHandler(t *testing.T) (*GeocodeHandler, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rows := []struct {
		osmID  string
		street string
		number string
	}{
		{"1", "ул Тверская", "12"},
		{"2", "ул Тверская", "12к1"},
		{"3", "Стремянный пер", "14 с1"},
	}

	records := make([]geocode.ReferenceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, geocode.NormalizeRecord(geocode.ReferenceRecord{
			OSMID:       row.osmID,
			City:        "Москва",
			Street:      row.street,
			HouseNumber: row.number,
			Lon:         37.6,
			Lat:         55.7,
		}))
	}

	ranker, err := geocode.NewRanker(geocode.DefaultConfig(), records, nil)
	require.NoError(t, err)

	cfg := config.GetDefaults()
	h := NewGeocodeHandler(ranker, cfg)

	router := gin.New()
	router.GET("/api/health", h.HandleHealthGin)
	router.GET("/api/geocode/basic", h.HandleGeocodeBasicGin)
	router.GET("/api/geocode/improved", h.HandleGeocodeImprovedGin)
	router.POST("/api/geocode/batch", h.HandleGeocodeBatchGin)

	return h, router
}

func doRequest(t *testing.T, router *gin.Engine, method, url string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestHandleHealth проверяет ответ health check
func TestHandleHealth(t *testing.T) {
	_, router := setupTestHandler(t)

	w := doRequest(t, router, "GET", "/api/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 3, resp.Buildings)
	assert.NotEmpty(t, resp.Timestamp)
}

// TestHandleGeocodeBasic проверяет точное геокодирование через API
func TestHandleGeocodeBasic(t *testing.T) {
	_, router := setupTestHandler(t)

	w := doRequest(t, router, "GET", "/api/geocode/basic?address=Москва,+ул+Тверская,+12к1")
	require.Equal(t, http.StatusOK, w.Code)

	var resp GeocodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Objects, 1)

	obj := resp.Objects[0]
	assert.Equal(t, 1.0, obj.Score)
	assert.Equal(t, "Москва, Тверская улица, 12 корпус 1", obj.NormalizedAddress)
	assert.Equal(t, "Москва", obj.Locality)

	// Неизвестный адрес — пустой список, не ошибка
	w = doRequest(t, router, "GET", "/api/geocode/basic?address=Москва,+Неизвестная+улица+1")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Objects)
}

// TestHandleGeocodeBasic_MissingAddress проверяет валидацию параметра address
func TestHandleGeocodeBasic_MissingAddress(t *testing.T) {
	_, router := setupTestHandler(t)

	w := doRequest(t, router, "GET", "/api/geocode/basic")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
}

// TestHandleGeocodeImproved проверяет фуззи-геокодирование через API
func TestHandleGeocodeImproved(t *testing.T) {
	_, router := setupTestHandler(t)

	// Опечатка в названии улицы
	w := doRequest(t, router, "GET", "/api/geocode/improved?address=Москва,+Тверскя+улица+12")
	require.Equal(t, http.StatusOK, w.Code)

	var resp GeocodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Objects)
	assert.Equal(t, "Москва, Тверскя улица 12", resp.SearchedAddress)

	// Лучший кандидат — дом 12 без корпуса
	assert.Equal(t, "12", resp.Objects[0].Number)
	assert.Equal(t, 1.0, resp.Objects[0].Score)
	assert.Nil(t, resp.Objects[0].Debug)
	assert.Nil(t, resp.Objects[0].ScoreDecomposition)
	assert.Nil(t, resp.ParsedQuery)
}

// TestHandleGeocodeImproved_Debug проверяет декомпозицию оценок
func TestHandleGeocodeImproved_Debug(t *testing.T) {
	_, router := setupTestHandler(t)

	w := doRequest(t, router, "GET", "/api/geocode/improved?address=Москва,+Тверская+улица+12&debug=true")
	require.Equal(t, http.StatusOK, w.Code)

	var resp GeocodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Objects)

	top := resp.Objects[0]
	require.NotNil(t, top.ScoreDecomposition)
	assert.Equal(t, 1.0, top.ScoreDecomposition.StreetSim)
	assert.Equal(t, 1.0, top.ScoreDecomposition.NumberScore)
	assert.Equal(t, 1.0, top.ScoreDecomposition.FinalScore)

	require.NotNil(t, top.Debug)
	assert.Equal(t, "тверская улица", top.Debug.StreetNorm)
	assert.Equal(t, "12", top.Debug.NumberNorm)
	require.NotNil(t, top.Debug.BaseNum)
	assert.Equal(t, 12, *top.Debug.BaseNum)
	assert.Equal(t, 0.0, top.Debug.DistanceOnNumberAxis)

	// Разбор запроса возвращается на верхнем уровне ответа
	require.NotNil(t, resp.ParsedQuery)
	assert.Equal(t, "москва", resp.ParsedQuery.CityNorm)
	assert.Equal(t, "тверская улица", resp.ParsedQuery.StreetNorm)
	assert.Equal(t, "12", resp.ParsedQuery.NumberNorm)
	require.NotNil(t, resp.ParsedQuery.NumberParsed.Base)
	assert.Equal(t, 12, *resp.ParsedQuery.NumberParsed.Base)

	// В debug-режиме возвращаются и неточные кандидаты
	assert.Greater(t, len(resp.Objects), 1)
}

// TestHandleGeocodeImproved_Limit проверяет валидацию и ограничение limit
func TestHandleGeocodeImproved_Limit(t *testing.T) {
	_, router := setupTestHandler(t)

	w := doRequest(t, router, "GET", "/api/geocode/improved?address=Тверская+улица+12&debug=true&limit=1")
	require.Equal(t, http.StatusOK, w.Code)

	var resp GeocodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Objects, 1)

	w = doRequest(t, router, "GET", "/api/geocode/improved?address=Тверская&limit=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, "GET", "/api/geocode/improved?address=Тверская&limit=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleGeocodeBatch проверяет пакетное геокодирование из Excel-файла
func TestHandleGeocodeBatch(t *testing.T) {
	_, router := setupTestHandler(t)

	// Готовим входной файл
	in := excelize.NewFile()
	sheet := in.GetSheetName(0)
	require.NoError(t, in.SetCellValue(sheet, "A1", "address"))
	require.NoError(t, in.SetCellValue(sheet, "A2", "Москва, ул Тверская 12"))
	require.NoError(t, in.SetCellValue(sheet, "A3", "Москва, Стремянный переулок 14 с1"))

	var fileBuf bytes.Buffer
	require.NoError(t, in.Write(&fileBuf))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "addresses.xlsx")
	require.NoError(t, err)
	_, err = part.Write(fileBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest("POST", "/api/geocode/batch", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Разбираем результат
	out, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer out.Close()

	rows, err := out.GetRows(out.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "address", rows[0][0])
	assert.Equal(t, "Москва, ул Тверская 12", rows[1][0])
	assert.Equal(t, "Москва, Тверская улица, 12", rows[1][1])
	assert.Equal(t, "Москва, Стремянный переулок, 14 строение 1", rows[2][1])
}

// TestHandleGeocodeBatch_Validation проверяет валидацию входного файла
func TestHandleGeocodeBatch_Validation(t *testing.T) {
	_, router := setupTestHandler(t)

	// Без файла
	w := doRequest(t, router, "POST", "/api/geocode/batch")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Неверное расширение
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "addresses.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("address\nтест\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest("POST", "/api/geocode/batch", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
