package security

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "userID"

// ContextWithUserID attaches an authenticated user id to the context.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the user id attached by JWTMiddleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// JWTMiddleware is the authentication gate: it accepts a Bearer access token
// in the Authorization header, falling back to the accessToken cookie, and
// attaches the verified user id to the request context.
func JWTMiddleware(manager *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			tokenStr := bearerToken(request)
			if tokenStr == "" {
				writeUnauthorized(writer, "Unauthorized: Missing token")
				return
			}

			userID, err := manager.Verify(tokenStr, TokenAccess)
			if err != nil {
				writeUnauthorized(writer, "Unauthorized: Invalid token")
				return
			}

			ctx := ContextWithUserID(request.Context(), userID)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

func bearerToken(request *http.Request) string {
	authorizationHeader := request.Header.Get("Authorization")
	if strings.HasPrefix(authorizationHeader, "Bearer ") {
		return strings.TrimPrefix(authorizationHeader, "Bearer ")
	}

	cookie, err := request.Cookie("accessToken")
	if err != nil {
		return ""
	}
	return cookie.Value
}

func writeUnauthorized(writer http.ResponseWriter, message string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(writer).Encode(map[string]interface{}{
		"status":  false,
		"message": message,
		"data":    nil,
	})
}
