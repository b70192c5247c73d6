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

type NewsAPI struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewNewsAPI(cfg *config.ExternalConfig, httpClient *http.Client) *NewsAPI {
	return &NewsAPI{
		apiKey:     cfg.NewsAPIKey,
		baseURL:    cfg.NewsBaseURL,
		httpClient: httpClient,
	}
}

// TopHeadlines returns the current headlines for a two-letter country code.
func (n *NewsAPI) TopHeadlines(ctx context.Context, country string) (json.RawMessage, error) {
	requestURL := fmt.Sprintf("%s/top-headlines?country=%s&apiKey=%s",
		n.baseURL, url.QueryEscape(country), url.QueryEscape(n.apiKey))

	var payload json.RawMessage
	if err := getJSON(ctx, n.httpClient, requestURL, &payload); err != nil {
		if isTimeout(err) {
			return nil, apperror.UpstreamTimeout("NewsAPI request timed out after 5 seconds")
		}
		return nil, apperror.Upstream("Failed to fetch news headlines", err)
	}

	return payload, nil
}
