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

type OpenWeather struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenWeather(cfg *config.ExternalConfig, httpClient *http.Client) *OpenWeather {
	return &OpenWeather{
		apiKey:     cfg.OpenWeatherAPIKey,
		baseURL:    cfg.OpenWeatherBaseURL,
		httpClient: httpClient,
	}
}

// The upstream payload is passed through untouched; the service adds no
// interpretation of OpenWeatherMap's schema.

func (o *OpenWeather) CurrentByCity(ctx context.Context, city string) (json.RawMessage, error) {
	requestURL := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		o.baseURL, url.QueryEscape(city), url.QueryEscape(o.apiKey))
	return o.fetch(ctx, requestURL, "Failed to fetch current weather")
}

func (o *OpenWeather) CurrentByCoords(ctx context.Context, lat float64, lon float64) (json.RawMessage, error) {
	requestURL := fmt.Sprintf("%s/weather?lat=%g&lon=%g&appid=%s&units=metric",
		o.baseURL, lat, lon, url.QueryEscape(o.apiKey))
	return o.fetch(ctx, requestURL, "Failed to fetch current weather")
}

func (o *OpenWeather) ForecastByCity(ctx context.Context, city string) (json.RawMessage, error) {
	requestURL := fmt.Sprintf("%s/forecast?q=%s&appid=%s&units=metric",
		o.baseURL, url.QueryEscape(city), url.QueryEscape(o.apiKey))
	return o.fetch(ctx, requestURL, "Failed to fetch 5-day forecast")
}

func (o *OpenWeather) ForecastByCoords(ctx context.Context, lat float64, lon float64) (json.RawMessage, error) {
	requestURL := fmt.Sprintf("%s/forecast?lat=%g&lon=%g&appid=%s&units=metric",
		o.baseURL, lat, lon, url.QueryEscape(o.apiKey))
	return o.fetch(ctx, requestURL, "Failed to fetch 5-day forecast")
}

func (o *OpenWeather) fetch(ctx context.Context, requestURL string, failureMessage string) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := getJSON(ctx, o.httpClient, requestURL, &payload); err != nil {
		if isTimeout(err) {
			return nil, apperror.UpstreamTimeout("OpenWeatherMap request timed out after 5 seconds")
		}
		return nil, apperror.Upstream(failureMessage, err)
	}
	return payload, nil
}
