package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type MovieService interface {
	ListMovies(ctx context.Context, req *request.MovieListRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	SearchMovies(ctx context.Context, req *request.MovieSearchRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error)
	// AuthorizeOwner fails unless userID created the movie
	AuthorizeOwner(ctx context.Context, userID uuid.UUID, movieID string) error
	UpdateMovie(ctx context.Context, userID uuid.UUID, movieID string, req *request.MovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, userID uuid.UUID, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context, req *request.MovieListRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	ctx, span := tracer.Start(ctx, "MovieService.ListMovies", trace.WithAttributes(
		attribute.Int("page", req.Page),
		attribute.Int("page_size", req.PageSize),
		attribute.String("sort_by", req.SortBy),
		attribute.String("filter_by", req.FilterBy),
	))
	defer span.End()

	movies, total, err := s.fetchPage(ctx, req.Query())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list movies")
		return nil, err
	}

	if total == 0 {
		return nil, ErrNoResults
	}

	if maxPage := utils.MaxAdmittedPage(total, req.PageSize); req.Page > maxPage {
		s.log.Warn("Page out of range",
			zap.Int("page", req.Page),
			zap.Int("max_page", maxPage),
			zap.Int64("total", total),
		)
		return nil, fmt.Errorf("page %d of %d: %w", req.Page, maxPage, ErrInvalidPage)
	}

	// the legacy page bound can admit one page past the data
	if len(movies) == 0 {
		return nil, ErrNoResults
	}

	s.log.Info("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("page_size", req.PageSize),
	)

	return response.NewPaginatedResponse(response.MoviesToResponse(movies), req.Page, req.PageSize, total), nil
}

func (s *movieService) SearchMovies(ctx context.Context, req *request.MovieSearchRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	ctx, span := tracer.Start(ctx, "MovieService.SearchMovies", trace.WithAttributes(
		attribute.String("search_param", req.SearchParam),
		attribute.Int("page", req.Page),
	))
	defer span.End()

	// handlers validate too, services are also called directly
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	movies, total, err := s.fetchPage(ctx, req.Query())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search movies")
		return nil, err
	}

	if len(movies) == 0 {
		return nil, ErrNoResults
	}

	s.log.Info("Movies searched",
		zap.String("search_param", req.SearchParam),
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(response.MoviesToResponse(movies), req.Page, req.PageSize, total), nil
}

// fetchPage runs the count and the page query concurrently
func (s *movieService) fetchPage(ctx context.Context, q entity.MovieQuery) ([]*entity.Movie, int64, error) {
	var (
		movies []*entity.Movie
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.repo.Movie.Count(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		movies, err = s.repo.Movie.List(gctx, q)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Error("Failed to fetch movies", zap.Error(err), zap.Any("query", q))
		return nil, 0, fmt.Errorf("fetch movies: %w", err)
	}

	return movies, total, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	s.log.Debug("Movie retrieved", zap.String("movie_id", movieID))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error) {
	ctx, span := tracer.Start(ctx, "MovieService.CreateMovie")
	defer span.End()

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	// created_by must reference an existing user
	owner, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find owner: %w", err)
	}
	if owner == nil {
		s.log.Warn("Token user no longer exists", zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("user %s: %w", userID, ErrUnauthorized)
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CreatedBy: owner.ID,
	}
	if err := applyMovieRequest(movie, req); err != nil {
		return nil, err
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.String("created_by", owner.ID.String()),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) AuthorizeOwner(ctx context.Context, userID uuid.UUID, movieID string) error {
	_, err := s.findOwnedMovie(ctx, userID, movieID)
	return err
}

func (s *movieService) UpdateMovie(ctx context.Context, userID uuid.UUID, movieID string, req *request.MovieRequest) (*response.MovieResponse, error) {
	ctx, span := tracer.Start(ctx, "MovieService.UpdateMovie", trace.WithAttributes(
		attribute.String("movie_id", movieID),
	))
	defer span.End()

	// ownership is decided before the payload is looked at
	movie, err := s.findOwnedMovie(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed",
			zap.String("movie_id", movieID),
			zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	if err := applyMovieRequest(movie, req); err != nil {
		return nil, err
	}
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, userID uuid.UUID, movieID string) error {
	ctx, span := tracer.Start(ctx, "MovieService.DeleteMovie", trace.WithAttributes(
		attribute.String("movie_id", movieID),
	))
	defer span.End()

	movie, err := s.findOwnedMovie(ctx, userID, movieID)
	if err != nil {
		return err
	}

	if err := s.repo.Movie.Delete(ctx, movie.ID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *movieService) findMovie(ctx context.Context, movieID string) (*entity.Movie, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, newValidationError([]utils.FieldError{{Field: "id", Message: "Must be a valid UUID"}})
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		s.log.Warn("Movie does not exist", zap.String("movie_id", movieID))
		return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
	}

	return movie, nil
}

func (s *movieService) findOwnedMovie(ctx context.Context, userID uuid.UUID, movieID string) (*entity.Movie, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if !movie.OwnedBy(userID) {
		s.log.Warn("Movie mutation by non-owner",
			zap.String("movie_id", movieID),
			zap.String("user_id", userID.String()),
			zap.String("owner_id", movie.CreatedBy.String()),
		)
		return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotOwner)
	}

	return movie, nil
}

// applyMovieRequest copies a validated request onto movie
func applyMovieRequest(movie *entity.Movie, req *request.MovieRequest) error {
	releaseDate, err := req.ReleaseDateValue()
	if err != nil {
		return newValidationError([]utils.FieldError{{Field: "release_date", Message: "Date format must be YYYY-MM-DD"}})
	}

	movie.Title = req.Title
	movie.Description = req.Description
	movie.ReleaseDate = releaseDate
	movie.Director = req.Director
	movie.Genre = req.Genre
	movie.AvgRating = *req.AvgRating
	movie.TicketPrice = *req.TicketPrice
	movie.Cast = req.Cast
	return nil
}
