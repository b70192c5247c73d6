package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"cityscope/internal/apperror"
)

// Every route answers with the same envelope; data is null on failure.
type envelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func sendResponse(writer http.ResponseWriter, statusCode int, message string, data interface{}) {
	isSuccess := statusCode >= 200 && statusCode < 300
	if !isSuccess {
		data = nil
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)
	json.NewEncoder(writer).Encode(&envelope{
		Status:  isSuccess,
		Message: message,
		Data:    data,
	})
}

// sendError maps the closed error taxonomy to transport status codes.
// Anything outside the taxonomy is an infrastructure fault and surfaces as a
// generic 500 without detail.
func sendError(writer http.ResponseWriter, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperror.KindInternal {
		log.Printf("internal error: %v", err)
		sendResponse(writer, http.StatusInternalServerError, "Internal Server Error", nil)
		return
	}

	sendResponse(writer, statusFromKind(appErr.Kind), appErr.Message, nil)
}

func statusFromKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation, apperror.KindConflict:
		return http.StatusBadRequest
	case apperror.KindAuthentication:
		return http.StatusUnauthorized
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindUpstream:
		return http.StatusBadGateway
	case apperror.KindUpstreamTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// TooManyRequests is plugged into the rate limiter so 429 responses keep the
// shared envelope.
func TooManyRequests(writer http.ResponseWriter, request *http.Request) {
	sendResponse(writer, http.StatusTooManyRequests, "Too many requests from this IP, please try again later", nil)
}
