package ports

import (
	"context"
	"encoding/json"
	"time"

	"cityscope/internal/model"
	"cityscope/internal/security"
)

type UserRepositoryInterface interface {
	Insert(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type SavedCityRepositoryInterface interface {
	Upsert(ctx context.Context, city *model.SavedCity) (*model.SavedCity, error)
	Delete(ctx context.Context, userID string, cityID string) error
	ListByUser(ctx context.Context, userID string, params model.PageParams) (*model.Page[model.SavedCity], error)
}

type TokenIssuerInterface interface {
	GeneratePair(userID string) (*model.TokensPair, error)
	Verify(tokenStr string, kind security.TokenKind) (string, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

type NotifierInterface interface {
	NotifyUserRegistered(userID string, username string) error
}

type AuthenticationServiceInterface interface {
	Register(ctx context.Context, input model.RegisterInput) error
	Login(ctx context.Context, input model.LoginInput) (*model.TokensPair, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Profile(ctx context.Context, userID string) (*model.UserProfile, error)
}

type SavedCityServiceInterface interface {
	Add(ctx context.Context, userID string, input model.SavedCityInput) (*model.SavedCity, error)
	Remove(ctx context.Context, userID string, cityID string) error
	List(ctx context.Context, userID string, params model.PageParams) (*model.Page[model.SavedCity], error)
}

type CityDirectoryInterface interface {
	SearchCities(ctx context.Context, query string) ([]model.City, error)
	FindNearby(ctx context.Context, lat float64, lng float64) (*model.City, error)
}

type WeatherProviderInterface interface {
	CurrentByCity(ctx context.Context, city string) (json.RawMessage, error)
	CurrentByCoords(ctx context.Context, lat float64, lon float64) (json.RawMessage, error)
	ForecastByCity(ctx context.Context, city string) (json.RawMessage, error)
	ForecastByCoords(ctx context.Context, lat float64, lon float64) (json.RawMessage, error)
}

type AttractionsProviderInterface interface {
	AttractionsNearby(ctx context.Context, lat float64, lon float64, radius int) (json.RawMessage, error)
}

type NewsProviderInterface interface {
	TopHeadlines(ctx context.Context, country string) (json.RawMessage, error)
}
