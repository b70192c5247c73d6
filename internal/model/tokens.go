package model

// TokensPair contains the access and refresh tokens handed to a client after
// login or rotation.
type TokensPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
