package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cityscope/config"
	"cityscope/internal/apperror"
	"cityscope/internal/model"
)

type GeoNames struct {
	username   string
	baseURL    string
	httpClient *http.Client
}

func NewGeoNames(cfg *config.ExternalConfig, httpClient *http.Client) *GeoNames {
	return &GeoNames{
		username:   cfg.GeoNamesUsername,
		baseURL:    cfg.GeoNamesBaseURL,
		httpClient: httpClient,
	}
}

type geoNamesResponse struct {
	Geonames []struct {
		Name        string `json:"name"`
		CountryName string `json:"countryName"`
		AdminName1  string `json:"adminName1"`
		Lat         string `json:"lat"`
		Lng         string `json:"lng"`
	} `json:"geonames"`
}

// SearchCities looks up populated places matching the query, at most ten.
func (g *GeoNames) SearchCities(ctx context.Context, query string) ([]model.City, error) {
	requestURL := fmt.Sprintf("%s/searchJSON?q=%s&maxRows=10&username=%s&featureClass=P",
		g.baseURL, url.QueryEscape(query), url.QueryEscape(g.username))

	var payload geoNamesResponse
	if err := getJSON(ctx, g.httpClient, requestURL, &payload); err != nil {
		if isTimeout(err) {
			return nil, apperror.UpstreamTimeout("GeoNames API request timed out after 5 seconds")
		}
		return nil, apperror.Upstream("Failed to fetch cities from GeoNames", err)
	}

	cities := make([]model.City, 0, len(payload.Geonames))
	for _, geo := range payload.Geonames {
		cities = append(cities, model.City{
			Name:        geo.Name,
			CountryName: geo.CountryName,
			AdminName1:  geo.AdminName1,
			Lat:         geo.Lat,
			Lng:         geo.Lng,
		})
	}

	return cities, nil
}

// FindNearby returns the closest populated place, or nil when GeoNames knows
// nothing near the coordinates.
func (g *GeoNames) FindNearby(ctx context.Context, lat float64, lng float64) (*model.City, error) {
	requestURL := fmt.Sprintf("%s/findNearbyJSON?lat=%g&lng=%g&username=%s&featureClass=P&maxRows=1",
		g.baseURL, lat, lng, url.QueryEscape(g.username))

	var payload geoNamesResponse
	if err := getJSON(ctx, g.httpClient, requestURL, &payload); err != nil {
		if isTimeout(err) {
			return nil, apperror.UpstreamTimeout("GeoNames findNearby request timed out after 5 seconds")
		}
		return nil, apperror.Upstream("Failed to fetch city details by lat/lng", err)
	}

	if len(payload.Geonames) == 0 {
		return nil, nil
	}

	geo := payload.Geonames[0]
	return &model.City{
		Name:        geo.Name,
		CountryName: geo.CountryName,
		AdminName1:  geo.AdminName1,
		Lat:         geo.Lat,
		Lng:         geo.Lng,
	}, nil
}
