package repository

import (
	"context"

	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	Movie MovieRepository

	ping func(ctx context.Context) error
}

// NewRepository builds the PostgreSQL-backed repositories
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		Movie: NewMovieRepository(db, log),
		ping:  db.Ping,
	}
}

// NewMemoryRepository builds process-local repositories, used with
// DB_DRIVER=memory and in tests
func NewMemoryRepository(log *zap.Logger) *Repository {
	return &Repository{
		User:  NewMemoryUserRepository(log),
		Movie: NewMemoryMovieRepository(log),
		ping:  func(context.Context) error { return nil },
	}
}

// Ping checks that the backing store is reachable
func (r *Repository) Ping(ctx context.Context) error {
	return r.ping(ctx)
}
