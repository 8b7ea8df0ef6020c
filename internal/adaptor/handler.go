package adaptor

import (
	"errors"
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	User  *UserHandler
	Movie *MovieHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		User:  NewUserHandler(service.User, log),
		Movie: NewMovieHandler(service.Movie, log),
	}
}

// errorMessages is the client-facing text of each service sentinel. All of
// them are 400s except ErrUnauthorized.
var errorMessages = []struct {
	err     error
	message string
}{
	{usecase.ErrNoResults, "No movies found"},
	{usecase.ErrInvalidPage, "Invalid page number"},
	{usecase.ErrConflict, "User already exists"},
	{usecase.ErrInvalidCredentials, "Invalid email or password"},
}

// handleServiceError maps a service error onto the response envelope.
// notFound and notOwner carry the resource specific wording.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string, notFound, notOwner string) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		log.Warn(operation+" validation failed", zap.Any("errors", validationErr.Errors))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Errors)
		return
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, "Unauthorized")
		return

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseBadRequest(w, notFound, nil)
		return

	case errors.Is(err, usecase.ErrNotOwner):
		log.Warn(operation+" failed - not owner", zap.Error(err))
		utils.ResponseBadRequest(w, notOwner, nil)
		return
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			log.Warn(operation+" failed", zap.Error(err))
			utils.ResponseBadRequest(w, m.message, nil)
			return
		}
	}

	log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
	utils.ResponseInternalError(w, "Internal server error")
}
