package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"cityscope/internal/apperror"
	"cityscope/internal/ports"
)

type WeatherHandler struct {
	Weather ports.WeatherProviderInterface
}

func NewWeatherHandler(weather ports.WeatherProviderInterface) *WeatherHandler {
	return &WeatherHandler{Weather: weather}
}

func (handler *WeatherHandler) Current(writer http.ResponseWriter, request *http.Request) {
	handler.serve(writer, request, "Current weather fetched",
		handler.Weather.CurrentByCity, handler.Weather.CurrentByCoords)
}

func (handler *WeatherHandler) Forecast(writer http.ResponseWriter, request *http.Request) {
	handler.serve(writer, request, "5-day forecast fetched",
		handler.Weather.ForecastByCity, handler.Weather.ForecastByCoords)
}

// Both weather routes take either a city name or a lat/lon pair, with the
// city taking precedence.
func (handler *WeatherHandler) serve(
	writer http.ResponseWriter,
	request *http.Request,
	successMessage string,
	byCity func(context.Context, string) (json.RawMessage, error),
	byCoords func(context.Context, float64, float64) (json.RawMessage, error),
) {
	query := request.URL.Query()

	if city := query.Get("city"); city != "" {
		data, err := byCity(request.Context(), city)
		if err != nil {
			sendError(writer, err)
			return
		}
		sendResponse(writer, http.StatusOK, successMessage, data)
		return
	}

	latStr := query.Get("lat")
	lonStr := query.Get("lon")
	if latStr == "" || lonStr == "" {
		sendError(writer, apperror.Validation("Provide either city name or valid lat and lon"))
		return
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		sendError(writer, apperror.Validation("Latitude and longitude must be valid numbers"))
		return
	}

	data, err := byCoords(request.Context(), lat, lon)
	if err != nil {
		sendError(writer, err)
		return
	}
	sendResponse(writer, http.StatusOK, successMessage, data)
}
