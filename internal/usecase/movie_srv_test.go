package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"github.com/google/uuid"
)

func listRequest(page, pageSize int) *request.MovieListRequest {
	return &request.MovieListRequest{
		PaginatedRequest: request.PaginatedRequest{Page: page, PageSize: pageSize},
		SortBy:           "none",
		Order:            "asc",
		FilterBy:         "none",
	}
}

func movieTitles(movies []response.MovieResponse) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func TestCreateMovieMatchesInput(t *testing.T) {
	svc := newTestService(t)
	owner := registerUser(t, svc, "owner@example.com")

	req := movieRequest("Heat", "Crime", 9.5, "1995-12-15")
	movie, err := svc.Movie.CreateMovie(context.Background(), owner, req)
	if err != nil {
		t.Fatalf("CreateMovie() error = %v", err)
	}

	if movie.Title != req.Title || movie.Description != req.Description ||
		movie.ReleaseDate != req.ReleaseDate || movie.Director != req.Director ||
		movie.Genre != req.Genre || movie.Cast != req.Cast ||
		movie.AvgRating != *req.AvgRating || movie.TicketPrice != *req.TicketPrice {
		t.Errorf("CreateMovie() = %+v, want fields of %+v", movie, req)
	}
	if movie.CreatedBy != owner.String() {
		t.Errorf("CreatedBy = %s, want %s", movie.CreatedBy, owner)
	}

	got, err := svc.Movie.GetMovieByID(context.Background(), movie.ID)
	if err != nil {
		t.Fatalf("GetMovieByID() error = %v", err)
	}
	if got.Title != "Heat" {
		t.Errorf("GetMovieByID() title = %q", got.Title)
	}
}

func TestCreateMovieRejects(t *testing.T) {
	svc := newTestService(t)
	owner := registerUser(t, svc, "owner@example.com")

	t.Run("rating out of range", func(t *testing.T) {
		req := movieRequest("Heat", "Crime", 9.5, "1995-12-15")
		req.AvgRating = float(11)

		_, err := svc.Movie.CreateMovie(context.Background(), owner, req)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("CreateMovie() error = %v, want ValidationError", err)
		}
		if len(validationErr.Errors) != 1 || validationErr.Errors[0].Field != "avg_rating" {
			t.Errorf("errors = %v, want one on avg_rating", validationErr.Errors)
		}
	})

	t.Run("future release", func(t *testing.T) {
		req := movieRequest("Heat", "Crime", 9.5, "2999-01-01")

		_, err := svc.Movie.CreateMovie(context.Background(), owner, req)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) || validationErr.Errors[0].Field != "release_date" {
			t.Errorf("CreateMovie() error = %v, want release_date ValidationError", err)
		}
	})

	t.Run("unknown owner", func(t *testing.T) {
		_, err := svc.Movie.CreateMovie(context.Background(), uuid.New(), movieRequest("Heat", "Crime", 9.5, "1995-12-15"))
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("CreateMovie() error = %v, want ErrUnauthorized", err)
		}
	})
}

func TestListMoviesPagination(t *testing.T) {
	svc := newTestService(t)
	owner := registerUser(t, svc, "owner@example.com")
	createMovies(t, svc, owner, 25)

	tests := []struct {
		page      int
		wantFirst string
		wantLast  string
		wantLen   int
	}{
		{1, "Movie 01", "Movie 10", 10},
		{2, "Movie 11", "Movie 20", 10},
		{3, "Movie 21", "Movie 25", 5},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			resp, err := svc.Movie.ListMovies(context.Background(), listRequest(tt.page, 10))
			if err != nil {
				t.Fatalf("ListMovies() error = %v", err)
			}
			got := movieTitles(resp.Data)
			if len(got) != tt.wantLen || got[0] != tt.wantFirst || got[len(got)-1] != tt.wantLast {
				t.Errorf("page %d = %v", tt.page, got)
			}
			if resp.Pagination.Total != 25 || resp.Pagination.TotalPages != 3 {
				t.Errorf("pagination = %+v", resp.Pagination)
			}
		})
	}

	t.Run("page 4", func(t *testing.T) {
		_, err := svc.Movie.ListMovies(context.Background(), listRequest(4, 10))
		if !errors.Is(err, ErrInvalidPage) {
			t.Errorf("ListMovies() error = %v, want ErrInvalidPage", err)
		}
	})
}

func TestListMoviesExactBoundary(t *testing.T) {
	svc := newTestService(t)
	owner := registerUser(t, svc, "owner@example.com")
	createMovies(t, svc, owner, 20)

	// 20/10+1 admits page 3, which holds nothing
	if _, err := svc.Movie.ListMovies(context.Background(), listRequest(3, 10)); !errors.Is(err, ErrNoResults) {
		t.Errorf("page 3 error = %v, want ErrNoResults", err)
	}
	if _, err := svc.Movie.ListMovies(context.Background(), listRequest(4, 10)); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("page 4 error = %v, want ErrInvalidPage", err)
	}
}

func TestListMoviesFilterAndSort(t *testing.T) {
	svc := newTestService(t)
	owner := registerUser(t, svc, "owner@example.com")

	seed := []struct {
		title, genre string
		price        float64
	}{
		{"Die Hard", "Action", 8},
		{"Amelie", "Romance", 6},
		{"Rush Hour", "action comedy", 11},
		{"Mad Max", "ACTION", 9.5},
		{"Alien", "Horror", 7},
	}
	for _, s := range seed {
		if _, err := svc.Movie.CreateMovie(context.Background(), owner, movieRequest(s.title, s.genre, s.price, "1990-05-05")); err != nil {
			t.Fatalf("CreateMovie(%s) error = %v", s.title, err)
		}
	}

	list := func(order string) []string {
		req := listRequest(1, 10)
		req.FilterBy, req.FilterValue = "genre", "Action"
		req.SortBy, req.Order = "ticket_price", order

		resp, err := svc.Movie.ListMovies(context.Background(), req)
		if err != nil {
			t.Fatalf("ListMovies(%s) error = %v", order, err)
		}
		return movieTitles(resp.Data)
	}

	asc := list("asc")
	if want := []string{"Die Hard", "Mad Max", "Rush Hour"}; !slices.Equal(asc, want) {
		t.Errorf("asc = %v, want %v", asc, want)
	}

	desc := list("desc")
	slices.Reverse(desc)
	if !slices.Equal(asc, desc) {
		t.Errorf("desc reversed = %v, want %v", desc, asc)
	}

	req := listRequest(1, 10)
	req.FilterBy, req.FilterValue = "director", "nobody"
	if _, err := svc.Movie.ListMovies(context.Background(), req); !errors.Is(err, ErrNoResults) {
		t.Errorf("no match error = %v, want ErrNoResults", err)
	}
}

func TestSearchMovies(t *testing.T) {
	svc := newTestService(t)
	owner := registerUser(t, svc, "owner@example.com")
	createMovies(t, svc, owner, 3)

	search := func(param, value string) (*response.PaginatedResponse[response.MovieResponse], error) {
		return svc.Movie.SearchMovies(context.Background(), &request.MovieSearchRequest{
			SearchParam:      param,
			SearchValue:      value,
			PaginatedRequest: request.PaginatedRequest{Page: 1, PageSize: 10},
		})
	}

	resp, err := search("title", "movie 02")
	if err != nil {
		t.Fatalf("SearchMovies() error = %v", err)
	}
	if got := movieTitles(resp.Data); !slices.Equal(got, []string{"Movie 02"}) {
		t.Errorf("SearchMovies() = %v", got)
	}

	if _, err := search("cast", "nobody"); !errors.Is(err, ErrNoResults) {
		t.Errorf("no match error = %v, want ErrNoResults", err)
	}

	var validationErr *ValidationError
	if _, err := search("title", ""); !errors.As(err, &validationErr) {
		t.Errorf("empty value error = %v, want ValidationError", err)
	}
	if _, err := search("avg_rating", "7"); !errors.As(err, &validationErr) {
		t.Errorf("bad param error = %v, want ValidationError", err)
	}
}

func TestMovieOwnership(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	owner := registerUser(t, svc, "owner@example.com")
	other := registerUser(t, svc, "other@example.com")
	movieID := createMovies(t, svc, owner, 1)[0]

	invalid := movieRequest("x", "Drama", -1, "2999-01-01")

	if err := svc.Movie.AuthorizeOwner(ctx, other, movieID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("AuthorizeOwner() error = %v, want ErrNotOwner", err)
	}
	if _, err := svc.Movie.UpdateMovie(ctx, other, movieID, movieRequest("Stolen", "Drama", 1, "2000-01-01")); !errors.Is(err, ErrNotOwner) {
		t.Errorf("UpdateMovie() valid payload error = %v, want ErrNotOwner", err)
	}
	if _, err := svc.Movie.UpdateMovie(ctx, other, movieID, invalid); !errors.Is(err, ErrNotOwner) {
		t.Errorf("UpdateMovie() invalid payload error = %v, want ErrNotOwner", err)
	}
	if err := svc.Movie.DeleteMovie(ctx, other, movieID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("DeleteMovie() error = %v, want ErrNotOwner", err)
	}

	var validationErr *ValidationError
	if _, err := svc.Movie.UpdateMovie(ctx, owner, movieID, invalid); !errors.As(err, &validationErr) {
		t.Errorf("owner UpdateMovie() invalid payload error = %v, want ValidationError", err)
	}

	updated, err := svc.Movie.UpdateMovie(ctx, owner, movieID, movieRequest("Renamed", "Drama", 3, "2000-01-01"))
	if err != nil {
		t.Fatalf("owner UpdateMovie() error = %v", err)
	}
	if updated.Title != "Renamed" || updated.CreatedBy != owner.String() {
		t.Errorf("UpdateMovie() = %+v", updated)
	}

	if err := svc.Movie.DeleteMovie(ctx, owner, movieID); err != nil {
		t.Fatalf("owner DeleteMovie() error = %v", err)
	}
	if _, err := svc.Movie.GetMovieByID(ctx, movieID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetMovieByID() after delete error = %v, want ErrNotFound", err)
	}
}

func TestGetMovieByIDInvalid(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Movie.GetMovieByID(context.Background(), uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id error = %v, want ErrNotFound", err)
	}

	var validationErr *ValidationError
	if _, err := svc.Movie.GetMovieByID(context.Background(), "42"); !errors.As(err, &validationErr) {
		t.Errorf("malformed id error = %v, want ValidationError", err)
	}
}
