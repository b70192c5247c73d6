package handler

import (
	"net/http"
	"strconv"

	"cityscope/internal/apperror"
	"cityscope/internal/ports"
)

const defaultAttractionsRadius = 1000

// OtherHandler serves the remaining pass-through routes: tourist attractions
// and news headlines.
type OtherHandler struct {
	Attractions ports.AttractionsProviderInterface
	News        ports.NewsProviderInterface
}

func NewOtherHandler(attractions ports.AttractionsProviderInterface, news ports.NewsProviderInterface) *OtherHandler {
	return &OtherHandler{
		Attractions: attractions,
		News:        news,
	}
}

func (handler *OtherHandler) AttractionsNearby(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	lat, latErr := strconv.ParseFloat(query.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(query.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		sendError(writer, apperror.Validation("Invalid latitude or longitude"))
		return
	}

	radius := defaultAttractionsRadius
	if radiusStr := query.Get("radius"); radiusStr != "" {
		if parsed, err := strconv.Atoi(radiusStr); err == nil && parsed > 0 {
			radius = parsed
		}
	}

	data, err := handler.Attractions.AttractionsNearby(request.Context(), lat, lon, radius)
	if err != nil {
		sendError(writer, err)
		return
	}

	sendResponse(writer, http.StatusOK, "Nearby attractions fetched", data)
}

func (handler *OtherHandler) TopHeadlines(writer http.ResponseWriter, request *http.Request) {
	country := request.URL.Query().Get("country")
	if country == "" {
		country = "us"
	}

	data, err := handler.News.TopHeadlines(request.Context(), country)
	if err != nil {
		sendError(writer, err)
		return
	}

	sendResponse(writer, http.StatusOK, "News headlines fetched", data)
}
