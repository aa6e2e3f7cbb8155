package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"geocoder/geocode"
	"geocoder/internal/config"
	"geocoder/normalization"
	apperrors "geocoder/server/errors"
	"geocoder/server/middleware"
)

// GeocodeObject найденный адрес в ответе API
type GeocodeObject struct {
	Locality          string  `json:"locality"`
	Street            string  `json:"street"`
	Number            string  `json:"number"`
	NormalizedAddress string  `json:"normalized_address"`
	Lon               float64 `json:"lon"`
	Lat               float64 `json:"lat"`
	Score             float64 `json:"score"`

	// Декомпозиция оценки; заполняется только в режиме debug
	ScoreDecomposition *ScoreDecomposition `json:"score_decomposition,omitempty"`
	Debug              *ObjectDebug        `json:"debug,omitempty"`
}

// ScoreDecomposition составляющие итоговой оценки кандидата
type ScoreDecomposition struct {
	StreetSim   float64 `json:"street_sim"`
	NumberScore float64 `json:"number_score"`
	FinalScore  float64 `json:"final_score"`
}

// ObjectDebug отладочные данные кандидата
type ObjectDebug struct {
	StreetNorm           string  `json:"street_norm"`
	NumberNorm           string  `json:"number_norm"`
	BaseNum              *int    `json:"base_num"`
	DistanceOnNumberAxis float64 `json:"distance_on_number_axis"`
}

// ParsedNumber разобранный номер дома запроса (для режима debug)
type ParsedNumber struct {
	Base     *int   `json:"base"`
	Corpus   *int   `json:"corp"`
	Building *int   `json:"stroenie"`
	Letter   string `json:"litera"`
}

// ParsedQuery разбор запроса на компоненты (для режима debug)
type ParsedQuery struct {
	RawCity      string       `json:"raw_city"`
	RawStreet    string       `json:"raw_street"`
	RawNumber    string       `json:"raw_number"`
	CityNorm     string       `json:"city_norm"`
	StreetNorm   string       `json:"street_norm"`
	NumberNorm   string       `json:"number_norm"`
	NumberParsed ParsedNumber `json:"number_parsed"`
}

// GeocodeResponse структура ответа геокодирования
type GeocodeResponse struct {
	SearchedAddress string          `json:"searched_address"`
	Objects         []GeocodeObject `json:"objects"`
	ParsedQuery     *ParsedQuery    `json:"parsed_query,omitempty"`
}

// HealthResponse структура ответа проверки работоспособности
type HealthResponse struct {
	Status    string `json:"status"`
	Buildings int    `json:"buildings"`
	Timestamp string `json:"timestamp"`
}

// GeocodeHandler обработчики запросов геокодирования
type GeocodeHandler struct {
	ranker *geocode.Ranker
	cfg    *config.Config
}

// NewGeocodeHandler создает обработчик над готовым Ranker
func NewGeocodeHandler(ranker *geocode.Ranker, cfg *config.Config) *GeocodeHandler {
	return &GeocodeHandler{ranker: ranker, cfg: cfg}
}

// parseLimit читает и ограничивает параметр limit
func (h *GeocodeHandler) parseLimit(c *gin.Context) (int, bool) {
	limit := h.cfg.DefaultLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			appErr := apperrors.NewValidationError("неверный формат limit", err)
			SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
			return 0, false
		}
		if parsed > h.cfg.MaxLimit {
			parsed = h.cfg.MaxLimit
		}
		limit = parsed
	}
	return limit, true
}

// HandleGeocodeBasicGin обработчик базового геокодирования
// @Summary Базовое геокодирование адреса
// @Description Точный фильтр по нормализованным колонкам справочника; запрос разбирается по запятым на город, улицу и номер
// @Tags geocode
// @Produce json
// @Param address query string true "Адрес для поиска"
// @Param limit query int false "Максимум результатов"
// @Success 200 {object} GeocodeResponse "Результат геокодирования"
// @Failure 400 {object} ErrorResponse "Неверный запрос"
// @Router /api/geocode/basic [get]
func (h *GeocodeHandler) HandleGeocodeBasicGin(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		appErr := apperrors.NewValidationError("параметр address обязателен", nil)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	limit, ok := h.parseLimit(c)
	if !ok {
		return
	}

	results := h.ranker.MatchBasic(address, limit)

	response := GeocodeResponse{
		SearchedAddress: address,
		Objects:         make([]GeocodeObject, 0, len(results)),
	}
	for _, r := range results {
		response.Objects = append(response.Objects, toGeocodeObject(r, false))
	}

	SendJSONResponse(c, http.StatusOK, response)
}

// HandleGeocodeImprovedGin обработчик фуззи-геокодирования
// @Summary Геокодирование адреса с нечетким поиском
// @Description Ищет адрес в справочнике: сначала точным фильтром, затем нечетким поиском улицы и сравнением номеров домов
// @Tags geocode
// @Produce json
// @Param address query string true "Адрес для поиска"
// @Param limit query int false "Максимум результатов"
// @Param debug query bool false "Вернуть декомпозицию оценок и разбор запроса"
// @Success 200 {object} GeocodeResponse "Результат геокодирования"
// @Failure 400 {object} ErrorResponse "Неверный запрос"
// @Router /api/geocode/improved [get]
func (h *GeocodeHandler) HandleGeocodeImprovedGin(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		appErr := apperrors.NewValidationError("параметр address обязателен", nil)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	limit, ok := h.parseLimit(c)
	if !ok {
		return
	}

	debug := c.Query("debug") == "true"

	start := time.Now()
	results := h.ranker.Geocode(address, limit, debug)

	response := GeocodeResponse{
		SearchedAddress: address,
		Objects:         make([]GeocodeObject, 0, len(results)),
	}
	for _, r := range results {
		response.Objects = append(response.Objects, toGeocodeObject(r, debug))
	}
	if debug {
		response.ParsedQuery = buildParsedQuery(address)
	}

	topScore := 0.0
	if len(results) > 0 {
		topScore = results[0].FinalScore
	}
	slog.Info("Geocode completed",
		"address", address,
		"found", len(results),
		"top_score", topScore,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", middleware.GetRequestIDFromGin(c),
	)

	SendJSONResponse(c, http.StatusOK, response)
}

// buildParsedQuery повторяет разбор запроса для отладочного ответа
func buildParsedQuery(address string) *ParsedQuery {
	city, street, number := geocode.ParseAddress(address)
	parsed := normalization.ParseHouseNumber(number)

	return &ParsedQuery{
		RawCity:    city,
		RawStreet:  street,
		RawNumber:  number,
		CityNorm:   normalization.NormalizeCity(city),
		StreetNorm: normalization.NormalizeStreet(street),
		NumberNorm: normalization.NormalizeNumber(number),
		NumberParsed: ParsedNumber{
			Base:     parsed.Base,
			Corpus:   parsed.Corpus,
			Building: parsed.Building,
			Letter:   parsed.Letter,
		},
	}
}

// toGeocodeObject преобразует результат сопоставления в объект ответа API
func toGeocodeObject(r geocode.ScoredResult, debug bool) GeocodeObject {
	obj := GeocodeObject{
		Locality:          r.Record.City,
		Street:            r.Record.Street,
		Number:            r.Record.HouseNumber,
		NormalizedAddress: normalization.FormatAddress(r.Record.CityNorm, r.Record.StreetNorm, r.Record.NumberNorm),
		Lon:               r.Record.Lon,
		Lat:               r.Record.Lat,
		Score:             roundScore(r.FinalScore),
	}
	if debug {
		obj.ScoreDecomposition = &ScoreDecomposition{
			StreetSim:   r.StreetSim,
			NumberScore: r.NumberScore,
			FinalScore:  roundScore(r.FinalScore),
		}
		obj.Debug = &ObjectDebug{
			StreetNorm:           r.Record.StreetNorm,
			NumberNorm:           r.Record.NumberNorm,
			BaseNum:              r.Record.Number.Base,
			DistanceOnNumberAxis: r.NumberDistance,
		}
	}
	return obj
}

// roundScore округляет оценку до четырех знаков для ответа API
func roundScore(score float64) float64 {
	return math.Round(score*10000) / 10000
}
