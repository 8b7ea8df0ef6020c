package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser mounts the token protected /user routes
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	tokens middleware.TokenParser,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		r.Get("/me", userHandler.GetProfile)
		r.With(middleware.Admin(log)).Get("/test_admin_user", userHandler.TestAdmin)
	})
}
