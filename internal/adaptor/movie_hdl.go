package adaptor

import (
	"errors"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// ListMovies handles GET /movie
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	req, fieldErrors := request.ParseMovieListRequest(r.URL.Query())
	if len(fieldErrors) > 0 {
		h.log.Warn("Invalid listing parameters", zap.Any("errors", fieldErrors))
		utils.ResponseBadRequest(w, "Validation failed", fieldErrors)
		return
	}

	movies, err := h.service.ListMovies(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list movies", "")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// SearchMovies handles GET /movie/search
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	req, fieldErrors := request.ParseMovieSearchRequest(r.URL.Query())
	if len(fieldErrors) > 0 {
		h.log.Warn("Invalid search parameters", zap.Any("errors", fieldErrors))
		utils.ResponseBadRequest(w, "Validation failed", fieldErrors)
		return
	}

	movies, err := h.service.SearchMovies(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "search movies", "")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// GetMovieByID handles GET /movie/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovieByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get movie", "")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// CreateMovie handles POST /movie
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req, ok := h.decodeMovie(w, r)
	if !ok {
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), userID, req)
	if err != nil {
		h.handleServiceError(w, err, "create movie", "")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// UpdateMovie handles PUT /movie/{id}. Only the creator may replace a movie,
// and a non-owner is turned away before the body is read.
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	movieID := chi.URLParam(r, "id")

	if err := h.service.AuthorizeOwner(r.Context(), userID, movieID); err != nil {
		h.handleServiceError(w, err, "update movie", "You can only update movies created by you")
		return
	}

	req, ok := h.decodeMovie(w, r)
	if !ok {
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), userID, movieID, req)
	if err != nil {
		h.handleServiceError(w, err, "update movie", "You can only update movies created by you")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// DeleteMovie handles DELETE /movie/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteMovie(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "delete movie", "You can only delete movies created by you")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}

// decodeMovie writes the 400 itself and reports false when the body is unusable
func (h *MovieHandler) decodeMovie(w http.ResponseWriter, r *http.Request) (*request.MovieRequest, bool) {
	req, fieldErrors, err := request.DecodeMovie(r.Body)
	if err != nil {
		h.log.Warn("Malformed movie body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}
	if len(fieldErrors) > 0 {
		h.log.Warn("Movie validation failed", zap.Any("errors", fieldErrors))
		utils.ResponseBadRequest(w, "Validation failed", fieldErrors)
		return nil, false
	}
	return req, true
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation, notOwner string) {
	if errors.Is(err, usecase.ErrUnauthorized) {
		h.log.Warn(operation+" by unknown user", zap.Error(err))
		utils.ResponseUnauthorized(w, "User no longer exists")
		return
	}
	handleServiceError(w, h.log, err, operation, "Movie does not exist", notOwner)
}
