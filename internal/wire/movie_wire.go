package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	tokens middleware.TokenParser,
	log *zap.Logger,
) {
	r.Route("/movie", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.With(middleware.OptionalAuth(tokens, log)).Get("/", movieHandler.ListMovies)
		r.Get("/search", movieHandler.SearchMovies)
		r.Get("/{id}", movieHandler.GetMovieByID)

		// ==================== OWNER ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens, log))

			r.Post("/", movieHandler.CreateMovie)
			r.Put("/{id}", movieHandler.UpdateMovie)
			r.Delete("/{id}", movieHandler.DeleteMovie)
		})
	})
}
