package usecase

import (
	"context"
	"fmt"
	"testing"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const testAdminSecret = "admin-secret"

func newTestService(t *testing.T) *Service {
	t.Helper()
	config := &utils.Config{
		JWT:   utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		Admin: utils.AdminConfig{APISecretKey: testAdminSecret},
	}
	return NewService(
		repository.NewMemoryRepository(zap.NewNop()),
		utils.NewTokenIssuer(config.JWT),
		config,
		zap.NewNop(),
	)
}

func registerUser(t *testing.T, svc *Service, email string) uuid.UUID {
	t.Helper()
	user, err := svc.Auth.Register(context.Background(), &request.RegisterRequest{
		Email:    email,
		Password: "Secret123",
	}, "")
	if err != nil {
		t.Fatalf("Register(%s) error = %v", email, err)
	}
	return uuid.MustParse(user.ID)
}

func float(v float64) *float64 { return &v }

func movieRequest(title, genre string, price float64, releaseDate string) *request.MovieRequest {
	return &request.MovieRequest{
		Title:       title,
		Description: "A film made for the test suite.",
		ReleaseDate: releaseDate,
		Director:    "Test Director",
		Genre:       genre,
		AvgRating:   float(7.5),
		TicketPrice: float(price),
		Cast:        "First Actor, Second Actor",
	}
}

func createMovies(t *testing.T, svc *Service, owner uuid.UUID, n int) []string {
	t.Helper()
	ids := make([]string, n)
	for i := range n {
		movie, err := svc.Movie.CreateMovie(context.Background(), owner,
			movieRequest(fmt.Sprintf("Movie %02d", i+1), "Drama", float64(i), "2001-01-01"))
		if err != nil {
			t.Fatalf("CreateMovie(%d) error = %v", i+1, err)
		}
		ids[i] = movie.ID
	}
	return ids
}
