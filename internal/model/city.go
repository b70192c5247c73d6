package model

import "time"

// City is a place returned by the GeoNames API. Coordinates stay strings,
// exactly as GeoNames returns them.
type City struct {
	Name        string `json:"name"`
	CountryName string `json:"countryName"`
	AdminName1  string `json:"adminName1"`
	Lat         string `json:"lat"`
	Lng         string `json:"lng"`
}

// SavedCity is a city pinned by a user. A user can save a given
// (name, countryName) pair only once; saving it again updates coordinates.
type SavedCity struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	Name        string    `db:"name" json:"name"`
	CountryName string    `db:"country_name" json:"countryName"`
	AdminName1  string    `db:"admin_name1" json:"adminName1,omitempty"`
	Lat         float64   `db:"lat" json:"lat"`
	Lng         float64   `db:"lng" json:"lng"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// SavedCityInput carries the request body for saving a city. Lat and Lng are
// pointers so a missing coordinate can be told apart from zero.
type SavedCityInput struct {
	Name        string   `json:"name"`
	CountryName string   `json:"countryName"`
	AdminName1  string   `json:"adminName1"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}
