package service

import (
	"context"

	"cityscope/internal/apperror"
	"cityscope/internal/model"
	"cityscope/internal/ports"
)

type SavedCityService struct {
	Cities ports.SavedCityRepositoryInterface
}

func NewSavedCityService(cities ports.SavedCityRepositoryInterface) *SavedCityService {
	return &SavedCityService{Cities: cities}
}

// Add saves a city for the user, updating coordinates if it is already saved.
func (service *SavedCityService) Add(ctx context.Context, userID string, input model.SavedCityInput) (*model.SavedCity, error) {
	if input.Name == "" || input.CountryName == "" || input.Lat == nil || input.Lng == nil {
		return nil, apperror.Validation("Missing required fields")
	}

	city := &model.SavedCity{
		UserID:      userID,
		Name:        input.Name,
		CountryName: input.CountryName,
		AdminName1:  input.AdminName1,
		Lat:         *input.Lat,
		Lng:         *input.Lng,
	}

	return service.Cities.Upsert(ctx, city)
}

func (service *SavedCityService) Remove(ctx context.Context, userID string, cityID string) error {
	return service.Cities.Delete(ctx, userID, cityID)
}

func (service *SavedCityService) List(ctx context.Context, userID string, params model.PageParams) (*model.Page[model.SavedCity], error) {
	return service.Cities.ListByUser(ctx, userID, params.Normalize())
}
