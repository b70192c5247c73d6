package handler

import (
	"net/http"
	"strconv"

	"cityscope/internal/apperror"
	"cityscope/internal/ports"
)

type CityHandler struct {
	Cities ports.CityDirectoryInterface
}

func NewCityHandler(cities ports.CityDirectoryInterface) *CityHandler {
	return &CityHandler{Cities: cities}
}

func (handler *CityHandler) Search(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("query")
	if query == "" {
		sendError(writer, apperror.Validation("Query parameter is required"))
		return
	}

	cities, err := handler.Cities.SearchCities(request.Context(), query)
	if err != nil {
		sendError(writer, err)
		return
	}

	sendResponse(writer, http.StatusOK, "Cities fetched", cities)
}

func (handler *CityHandler) Nearby(writer http.ResponseWriter, request *http.Request) {
	lat, latErr := strconv.ParseFloat(request.URL.Query().Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(request.URL.Query().Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		sendError(writer, apperror.Validation("Latitude and longitude must be valid numbers"))
		return
	}

	city, err := handler.Cities.FindNearby(request.Context(), lat, lng)
	if err != nil {
		sendError(writer, err)
		return
	}
	if city == nil {
		sendError(writer, apperror.NotFound("No city found near the given coordinates"))
		return
	}

	sendResponse(writer, http.StatusOK, "City fetched", city)
}
