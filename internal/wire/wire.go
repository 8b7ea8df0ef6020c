package wire

import (
	"context"
	"net/http"
	"time"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router on top of repo
func Wiring(repo *repository.Repository, tokens *utils.TokenIssuer, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, tokens, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, repo, tokens, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens middleware.TokenParser,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	r.Route("/user", func(r chi.Router) {
		wireAuth(r, handler.Auth)
		wireUser(r, handler.User, tokens, logger)
	})
	wireMovie(r, handler.Movie, tokens, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := repo.Ping(ctx); err != nil {
			logger.Error("Health check failed", zap.Error(err))
			utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "Store unavailable", nil, nil)
			return
		}
		utils.ResponseSuccess(w, "OK", nil)
	})

	return r
}
