package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// X-API-Secret-Key on register asks for an admin account
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
}
