package repository

import (
	"context"
	"fmt"

	"cityscope/internal"
	"cityscope/internal/apperror"
	"cityscope/internal/model"

	"github.com/google/uuid"
)

type SavedCityRepository struct {
	*internal.Database
}

func NewSavedCityRepository(database *internal.Database) *SavedCityRepository {
	return &SavedCityRepository{database}
}

// Upsert inserts the city or, when the user already saved that
// (name, countryName) pair, refreshes its region and coordinates.
func (repository *SavedCityRepository) Upsert(ctx context.Context, city *model.SavedCity) (*model.SavedCity, error) {
	query := `INSERT INTO saved_cities (id, user_id, name, country_name, admin_name1, lat, lng)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (user_id, name, country_name) DO UPDATE
			  SET admin_name1 = EXCLUDED.admin_name1,
				  lat = EXCLUDED.lat,
				  lng = EXCLUDED.lng,
				  updated_at = now()
			  RETURNING id, user_id, name, country_name, admin_name1, lat, lng, created_at, updated_at`

	var saved model.SavedCity
	err := repository.DB.GetContext(ctx, &saved, query,
		uuid.New().String(), city.UserID, city.Name, city.CountryName, city.AdminName1, city.Lat, city.Lng,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert saved city: %w", err)
	}

	return &saved, nil
}

// Delete removes a saved city, scoped to its owner.
func (repository *SavedCityRepository) Delete(ctx context.Context, userID string, cityID string) error {
	query := `DELETE FROM saved_cities WHERE id = $1 AND user_id = $2`

	result, err := repository.DB.ExecContext(ctx, query, cityID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete saved city: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("City not found or not owned by user")
	}

	return nil
}

// ListByUser returns one page of the user's saved cities, newest first.
func (repository *SavedCityRepository) ListByUser(ctx context.Context, userID string, params model.PageParams) (*model.Page[model.SavedCity], error) {
	var total int64
	countQuery := `SELECT count(*) FROM saved_cities WHERE user_id = $1`
	if err := repository.DB.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, fmt.Errorf("failed to count saved cities: %w", err)
	}

	cities := []model.SavedCity{}
	query := `SELECT * FROM saved_cities
			  WHERE user_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`
	if err := repository.DB.SelectContext(ctx, &cities, query, userID, params.Limit, params.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list saved cities: %w", err)
	}

	return model.NewPage(cities, total, params), nil
}
