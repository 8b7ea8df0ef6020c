package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("movie-catalog/usecase")

type Service struct {
	Auth  AuthService
	User  UserService
	Movie MovieService
}

func NewService(repo *repository.Repository, tokens *utils.TokenIssuer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, tokens, config, log),
		User:  NewUserService(repo.User, log),
		Movie: NewMovieService(repo, log),
	}
}
