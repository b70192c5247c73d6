package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"cityscope/internal/apperror"
	"cityscope/internal/model"
	"cityscope/internal/ports"
	"cityscope/internal/security"

	"github.com/go-chi/chi/v5"
)

type SavedCityHandler struct {
	Service ports.SavedCityServiceInterface
}

func NewSavedCityHandler(service ports.SavedCityServiceInterface) *SavedCityHandler {
	return &SavedCityHandler{Service: service}
}

func (handler *SavedCityHandler) Add(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), handlerTimeout)
	defer cancel()

	userID, ok := security.UserIDFromContext(ctx)
	if !ok {
		sendError(writer, apperror.Authentication("Unauthorized: Missing token"))
		return
	}

	var input model.SavedCityInput
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		sendError(writer, apperror.Validation("Invalid request body"))
		return
	}

	city, err := handler.Service.Add(ctx, userID, input)
	if err != nil {
		sendError(writer, err)
		return
	}

	sendResponse(writer, http.StatusCreated, "City saved", city)
}

func (handler *SavedCityHandler) Remove(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), handlerTimeout)
	defer cancel()

	userID, ok := security.UserIDFromContext(ctx)
	if !ok {
		sendError(writer, apperror.Authentication("Unauthorized: Missing token"))
		return
	}

	cityID := chi.URLParam(request, "id")
	if err := handler.Service.Remove(ctx, userID, cityID); err != nil {
		sendError(writer, err)
		return
	}

	sendResponse(writer, http.StatusOK, "City removed", nil)
}

func (handler *SavedCityHandler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), handlerTimeout)
	defer cancel()

	userID, ok := security.UserIDFromContext(ctx)
	if !ok {
		sendError(writer, apperror.Authentication("Unauthorized: Missing token"))
		return
	}

	params := model.PageParams{
		Page:  queryInt(request, "page"),
		Limit: queryInt(request, "limit"),
	}

	page, err := handler.Service.List(ctx, userID, params)
	if err != nil {
		sendError(writer, err)
		return
	}

	sendResponse(writer, http.StatusOK, "Saved cities fetched", page)
}

// queryInt returns 0 for missing or malformed values; the service falls back
// to its pagination defaults.
func queryInt(request *http.Request, key string) int {
	value, err := strconv.Atoi(request.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return value
}
