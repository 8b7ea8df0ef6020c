package repository

import (
	"context"
	"fmt"
	"strings"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List applies filter, sort and window of q
	List(ctx context.Context, q entity.MovieQuery) ([]*entity.Movie, error)
	// Count returns how many movies pass the filter of q
	Count(ctx context.Context, q entity.MovieQuery) (int64, error)
}

const movieColumns = `id, title, description, release_date, director, genre,
		       avg_rating, ticket_price, "cast", created_by, created_at, updated_at`

// SQL expressions per field; field names never reach the query text directly
var (
	movieFilterColumns = map[entity.MovieField]string{
		entity.FieldTitle:       "title",
		entity.FieldDescription: "description",
		entity.FieldDirector:    "director",
		entity.FieldGenre:       "genre",
		entity.FieldCast:        `"cast"`,
		entity.FieldReleaseYear: "to_char(release_date, 'YYYY')",
	}

	movieSortColumns = map[entity.MovieField]string{
		entity.FieldReleaseDate: "release_date",
		entity.FieldTicketPrice: "ticket_price",
	}
)

// page_size is unbounded, so the row buffer is only pre-sized up to this
const maxListPrealloc = 100

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, description, release_date, director, genre,
		                    avg_rating, ticket_price, "cast", created_by,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.ReleaseDate,
		movie.Director,
		movie.Genre,
		movie.AvgRating,
		movie.TicketPrice,
		movie.Cast,
		movie.CreatedBy,
		movie.CreatedAt,
		movie.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return errors.Wrap(err, "create movie")
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, errors.Wrapf(err, "find movie %s", id)
	}

	return movie, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, description = $3, release_date = $4, director = $5,
		    genre = $6, avg_rating = $7, ticket_price = $8, "cast" = $9,
		    updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.ReleaseDate,
		movie.Director,
		movie.Genre,
		movie.AvgRating,
		movie.TicketPrice,
		movie.Cast,
		movie.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return errors.Wrapf(err, "update movie %s", movie.ID)
	}

	if result.RowsAffected() == 0 {
		return errors.Errorf("movie %s not found", movie.ID)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return errors.Wrapf(err, "delete movie %s", id)
	}

	if result.RowsAffected() == 0 {
		return errors.Errorf("movie %s not found", id)
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}

func (r *movieRepository) List(ctx context.Context, q entity.MovieQuery) ([]*entity.Movie, error) {
	query, args, err := buildMovieListQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list movies",
			zap.Error(err),
			zap.Any("query", q),
		)
		return nil, errors.Wrap(err, "list movies")
	}
	defer rows.Close()

	movies := make([]*entity.Movie, 0, min(max(q.Limit, 0), maxListPrealloc))
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, errors.Wrap(err, "scan movie")
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, errors.Wrap(err, "iterate movie rows")
	}

	r.log.Debug("Movies listed",
		zap.Int("count", len(movies)),
		zap.Int("offset", q.Offset),
		zap.Int("limit", q.Limit),
	)

	return movies, nil
}

func (r *movieRepository) Count(ctx context.Context, q entity.MovieQuery) (int64, error) {
	query, args, err := buildMovieCountQuery(q)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count movies",
			zap.Error(err),
			zap.String("filter_by", string(q.FilterField)),
		)
		return 0, errors.Wrap(err, "count movies")
	}

	return total, nil
}

// movieWhere renders the filter of q as a WHERE clause with $1 as its only
// placeholder
func movieWhere(q entity.MovieQuery) (string, []any, error) {
	if !q.Filtered() {
		return "", nil, nil
	}

	column, ok := movieFilterColumns[q.FilterField]
	if !ok {
		return "", nil, errors.Wrapf(ErrUnsupportedField, "filter %q", q.FilterField)
	}

	pattern := "%" + likeEscaper.Replace(q.FilterValue) + "%"
	return fmt.Sprintf(` WHERE %s ILIKE $1 ESCAPE '\'`, column), []any{pattern}, nil
}

func buildMovieListQuery(q entity.MovieQuery) (string, []any, error) {
	where, args, err := movieWhere(q)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + movieColumns + ` FROM movies`)
	sb.WriteString(where)

	sb.WriteString(" ORDER BY ")
	if q.Sorted() {
		column, ok := movieSortColumns[q.SortField]
		if !ok {
			return "", nil, errors.Wrapf(ErrUnsupportedField, "sort %q", q.SortField)
		}
		direction := "ASC"
		if q.Order == entity.OrderDesc {
			direction = "DESC"
		}
		sb.WriteString(column + " " + direction + ", ")
	}
	// insertion order breaks ties and orders unsorted listings
	sb.WriteString("created_at ASC, id ASC")

	n := len(args)
	sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2))
	args = append(args, q.Limit, q.Offset)

	return sb.String(), args, nil
}

func buildMovieCountQuery(q entity.MovieQuery) (string, []any, error) {
	where, args, err := movieWhere(q)
	if err != nil {
		return "", nil, err
	}
	return `SELECT COUNT(*) FROM movies` + where, args, nil
}

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.ReleaseDate,
		&movie.Director,
		&movie.Genre,
		&movie.AvgRating,
		&movie.TicketPrice,
		&movie.Cast,
		&movie.CreatedBy,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
