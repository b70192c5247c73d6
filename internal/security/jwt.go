package security

import (
	"fmt"
	"time"

	"cityscope/config"
	"cityscope/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenKind selects which secret and validity window a token is bound to.
// Access and refresh tokens are signed with distinct secrets, so one can
// never pass verification as the other.
type TokenKind int

const (
	TokenAccess TokenKind = iota
	TokenRefresh
)

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
}

func NewTokenManager(cfg *config.JWTConfig) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL(),
		refreshTTL:    cfg.RefreshTTL(),
		issuer:        cfg.Issuer,
	}
}

func (m *TokenManager) AccessTTL() time.Duration {
	return m.accessTTL
}

func (m *TokenManager) RefreshTTL() time.Duration {
	return m.refreshTTL
}

// GeneratePair issues a fresh access/refresh token pair bound to userID.
func (m *TokenManager) GeneratePair(userID string) (*model.TokensPair, error) {
	accessToken, err := m.Issue(userID, TokenAccess)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := m.Issue(userID, TokenRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (m *TokenManager) Issue(userID string, kind TokenKind) (string, error) {
	secret, ttl := m.secretAndTTL(kind)

	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := jwtToken.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature, algorithm and expiry of a token of the given kind
// and returns the user id embedded in it.
func (m *TokenManager) Verify(tokenStr string, kind TokenKind) (string, error) {
	secret, _ := m.secretAndTTL(kind)

	claims := &Claims{}
	jwtToken, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !jwtToken.Valid {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	return claims.UserID, nil
}

func (m *TokenManager) secretAndTTL(kind TokenKind) ([]byte, time.Duration) {
	if kind == TokenRefresh {
		return m.refreshSecret, m.refreshTTL
	}
	return m.accessSecret, m.accessTTL
}
