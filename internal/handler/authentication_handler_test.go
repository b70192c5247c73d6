package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cityscope/internal/apperror"
	"cityscope/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthenticationService struct {
	mock.Mock
}

func (m *MockAuthenticationService) Register(ctx context.Context, input model.RegisterInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockAuthenticationService) Login(ctx context.Context, input model.LoginInput) (*model.TokensPair, error) {
	args := m.Called(ctx, input)
	tokens, _ := args.Get(0).(*model.TokensPair)
	return tokens, args.Error(1)
}

func (m *MockAuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	args := m.Called(ctx, refreshToken)
	tokens, _ := args.Get(0).(*model.TokensPair)
	return tokens, args.Error(1)
}

func (m *MockAuthenticationService) Profile(ctx context.Context, userID string) (*model.UserProfile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*model.UserProfile)
	return profile, args.Error(1)
}

func newTestAuthenticationHandler(service *MockAuthenticationService) *AuthenticationHandler {
	return NewAuthenticationHandler(service, 15*time.Minute, 7*24*time.Hour, false)
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	var body envelope
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	return body
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestRegisterHandler_Created(t *testing.T) {
	mockService := new(MockAuthenticationService)
	handler := newTestAuthenticationHandler(mockService)

	mockService.On("Register", mock.Anything, mock.MatchedBy(func(input model.RegisterInput) bool {
		return input.Username == "jdoe" && input.Email == "j@x.com"
	})).Return(nil)

	request := httptest.NewRequest(http.MethodPost, "/api/users/register",
		strings.NewReader(`{"username":"jdoe","email":"j@x.com","password":"Pass1234"}`))
	recorder := httptest.NewRecorder()

	handler.Register(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	body := decodeEnvelope(t, recorder)
	assert.True(t, body.Status)
	assert.Equal(t, "User registered successfully", body.Message)
}

func TestRegisterHandler_InvalidBody(t *testing.T) {
	handler := newTestAuthenticationHandler(new(MockAuthenticationService))

	request := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()

	handler.Register(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeEnvelope(t, recorder)
	assert.False(t, body.Status)
	assert.Equal(t, "Invalid request body", body.Message)
}

func TestRegisterHandler_Conflict(t *testing.T) {
	mockService := new(MockAuthenticationService)
	handler := newTestAuthenticationHandler(mockService)

	mockService.On("Register", mock.Anything, mock.Anything).
		Return(apperror.Conflict("Email already registered"))

	request := httptest.NewRequest(http.MethodPost, "/api/users/register",
		strings.NewReader(`{"username":"jdoe","email":"j@x.com","password":"Pass1234"}`))
	recorder := httptest.NewRecorder()

	handler.Register(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Email already registered", decodeEnvelope(t, recorder).Message)
}

func TestLoginHandler_SetsAuthCookies(t *testing.T) {
	mockService := new(MockAuthenticationService)
	handler := newTestAuthenticationHandler(mockService)

	mockService.On("Login", mock.Anything, mock.Anything).
		Return(&model.TokensPair{AccessToken: "access-jwt", RefreshToken: "refresh-jwt"}, nil)

	request := httptest.NewRequest(http.MethodPost, "/api/users/login",
		strings.NewReader(`{"email":"j@x.com","password":"Pass1234"}`))
	recorder := httptest.NewRecorder()

	handler.Login(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Login successful", decodeEnvelope(t, recorder).Message)

	cookies := recorder.Result().Cookies()
	accessCookie := cookieByName(cookies, "accessToken")
	refreshCookie := cookieByName(cookies, "refreshToken")

	require.NotNil(t, accessCookie)
	require.NotNil(t, refreshCookie)
	assert.Equal(t, "access-jwt", accessCookie.Value)
	assert.Equal(t, "refresh-jwt", refreshCookie.Value)
	assert.True(t, accessCookie.HttpOnly)
	assert.True(t, refreshCookie.HttpOnly)
	assert.Equal(t, int((15 * time.Minute).Seconds()), accessCookie.MaxAge)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), refreshCookie.MaxAge)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	mockService := new(MockAuthenticationService)
	handler := newTestAuthenticationHandler(mockService)

	mockService.On("Login", mock.Anything, mock.Anything).
		Return(nil, apperror.Authentication("Invalid credentials"))

	request := httptest.NewRequest(http.MethodPost, "/api/users/login",
		strings.NewReader(`{"email":"j@x.com","password":"WrongPass1"}`))
	recorder := httptest.NewRecorder()

	handler.Login(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	body := decodeEnvelope(t, recorder)
	assert.False(t, body.Status)
	assert.Equal(t, "Invalid credentials", body.Message)
	assert.Nil(t, body.Data)
}

func TestLogoutHandler_ExpiresCookies(t *testing.T) {
	handler := newTestAuthenticationHandler(new(MockAuthenticationService))

	request := httptest.NewRequest(http.MethodPost, "/api/users/logout", nil)
	recorder := httptest.NewRecorder()

	handler.Logout(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	cookies := recorder.Result().Cookies()
	for _, name := range []string{"accessToken", "refreshToken"} {
		cookie := cookieByName(cookies, name)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}

func TestRefreshHandler_ReadsCookie(t *testing.T) {
	mockService := new(MockAuthenticationService)
	handler := newTestAuthenticationHandler(mockService)

	mockService.On("Refresh", mock.Anything, "old-refresh").
		Return(&model.TokensPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

	request := httptest.NewRequest(http.MethodPost, "/api/users/refresh-token", nil)
	request.AddCookie(&http.Cookie{Name: "refreshToken", Value: "old-refresh"})
	recorder := httptest.NewRecorder()

	handler.RefreshToken(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Token refreshed", decodeEnvelope(t, recorder).Message)

	refreshCookie := cookieByName(recorder.Result().Cookies(), "refreshToken")
	require.NotNil(t, refreshCookie)
	assert.Equal(t, "new-refresh", refreshCookie.Value)
}

func TestRefreshHandler_ReadsBodyWhenNoCookie(t *testing.T) {
	mockService := new(MockAuthenticationService)
	handler := newTestAuthenticationHandler(mockService)

	mockService.On("Refresh", mock.Anything, "body-refresh").
		Return(&model.TokensPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

	request := httptest.NewRequest(http.MethodPost, "/api/users/refresh-token",
		strings.NewReader(`{"refreshToken":"body-refresh"}`))
	recorder := httptest.NewRecorder()

	handler.RefreshToken(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	mockService.AssertExpectations(t)
}

func TestRefreshHandler_InvalidToken(t *testing.T) {
	mockService := new(MockAuthenticationService)
	handler := newTestAuthenticationHandler(mockService)

	mockService.On("Refresh", mock.Anything, mock.Anything).
		Return(nil, apperror.Forbidden("Invalid refresh token"))

	request := httptest.NewRequest(http.MethodPost, "/api/users/refresh-token", nil)
	request.AddCookie(&http.Cookie{Name: "refreshToken", Value: "stale"})
	recorder := httptest.NewRecorder()

	handler.RefreshToken(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, "Invalid refresh token", decodeEnvelope(t, recorder).Message)
}

func TestProfileHandler_RequiresAuthenticatedContext(t *testing.T) {
	handler := newTestAuthenticationHandler(new(MockAuthenticationService))

	request := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	recorder := httptest.NewRecorder()

	handler.Profile(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
