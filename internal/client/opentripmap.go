package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"cityscope/config"
	"cityscope/internal/apperror"
)

type OpenTripMap struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenTripMap(cfg *config.ExternalConfig, httpClient *http.Client) *OpenTripMap {
	return &OpenTripMap{
		apiKey:     cfg.OpenTripMapAPIKey,
		baseURL:    cfg.OpenTripMapBaseURL,
		httpClient: httpClient,
	}
}

// AttractionsNearby lists tourist places within radius meters of the point.
func (o *OpenTripMap) AttractionsNearby(ctx context.Context, lat float64, lon float64, radius int) (json.RawMessage, error) {
	requestURL := fmt.Sprintf("%s/places/radius?radius=%d&lon=%g&lat=%g&apikey=%s",
		o.baseURL, radius, lon, lat, url.QueryEscape(o.apiKey))

	var payload json.RawMessage
	if err := getJSON(ctx, o.httpClient, requestURL, &payload); err != nil {
		if isTimeout(err) {
			return nil, apperror.UpstreamTimeout("OpenTripMap request timed out after 5 seconds")
		}
		return nil, apperror.Upstream("Failed to fetch nearby attractions", err)
	}

	return payload, nil
}
