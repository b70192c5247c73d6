package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"cityscope/internal/apperror"
	"cityscope/internal/model"
	"cityscope/internal/ports"
	"cityscope/internal/security"
)

const handlerTimeout = 3 * time.Second

// AuthenticationHandler binds the session lifecycle to HTTP. Tokens travel
// as httpOnly cookies whose lifetimes mirror the token validity windows; the
// refresh endpoint also accepts a JSON body for clients that keep the refresh
// token themselves.
type AuthenticationHandler struct {
	Service       ports.AuthenticationServiceInterface
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	SecureCookies bool
}

func NewAuthenticationHandler(service ports.AuthenticationServiceInterface, accessTTL time.Duration, refreshTTL time.Duration, secureCookies bool) *AuthenticationHandler {
	return &AuthenticationHandler{
		Service:       service,
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
		SecureCookies: secureCookies,
	}
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (handler *AuthenticationHandler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), handlerTimeout)
	defer cancel()

	var input model.RegisterInput
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		sendError(writer, apperror.Validation("Invalid request body"))
		return
	}

	if err := handler.Service.Register(ctx, input); err != nil {
		sendError(writer, err)
		return
	}

	sendResponse(writer, http.StatusCreated, "User registered successfully", nil)
}

func (handler *AuthenticationHandler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), handlerTimeout)
	defer cancel()

	var input model.LoginInput
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		sendError(writer, apperror.Validation("Invalid request body"))
		return
	}

	tokens, err := handler.Service.Login(ctx, input)
	if err != nil {
		sendError(writer, err)
		return
	}

	handler.setAuthCookies(writer, tokens)
	sendResponse(writer, http.StatusOK, "Login successful", nil)
}

// Logout is stateless: there is no server-side session to destroy, only
// client-held cookies to expire.
func (handler *AuthenticationHandler) Logout(writer http.ResponseWriter, request *http.Request) {
	handler.clearAuthCookies(writer)
	sendResponse(writer, http.StatusOK, "Logged out successfully", nil)
}

func (handler *AuthenticationHandler) RefreshToken(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), handlerTimeout)
	defer cancel()

	refreshToken := ""
	if cookie, err := request.Cookie("refreshToken"); err == nil {
		refreshToken = cookie.Value
	} else if request.Body != nil {
		var body refreshTokenRequest
		if err := json.NewDecoder(request.Body).Decode(&body); err == nil {
			refreshToken = body.RefreshToken
		}
	}

	tokens, err := handler.Service.Refresh(ctx, refreshToken)
	if err != nil {
		sendError(writer, err)
		return
	}

	handler.setAuthCookies(writer, tokens)
	sendResponse(writer, http.StatusOK, "Token refreshed", nil)
}

func (handler *AuthenticationHandler) Profile(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), handlerTimeout)
	defer cancel()

	userID, ok := security.UserIDFromContext(ctx)
	if !ok {
		sendError(writer, apperror.Authentication("Unauthorized: Missing token"))
		return
	}

	profile, err := handler.Service.Profile(ctx, userID)
	if err != nil {
		sendError(writer, err)
		return
	}

	sendResponse(writer, http.StatusOK, "User profile fetched", profile)
}

func (handler *AuthenticationHandler) setAuthCookies(writer http.ResponseWriter, tokens *model.TokensPair) {
	http.SetCookie(writer, handler.authCookie("accessToken", tokens.AccessToken, int(handler.AccessTTL.Seconds())))
	http.SetCookie(writer, handler.authCookie("refreshToken", tokens.RefreshToken, int(handler.RefreshTTL.Seconds())))
}

func (handler *AuthenticationHandler) clearAuthCookies(writer http.ResponseWriter) {
	http.SetCookie(writer, handler.authCookie("accessToken", "", -1))
	http.SetCookie(writer, handler.authCookie("refreshToken", "", -1))
}

func (handler *AuthenticationHandler) authCookie(name string, value string, maxAge int) *http.Cookie {
	// Cross-site frontends need SameSite=None, which browsers only accept
	// over HTTPS; local development keeps Lax.
	sameSite := http.SameSiteLaxMode
	if handler.SecureCookies {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   handler.SecureCookies,
		SameSite: sameSite,
	}
}
