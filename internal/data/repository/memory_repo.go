package repository

import (
	"cmp"
	"context"
	"sort"
	"strings"
	"sync"

	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Typed accessors per field for the in-memory store
var (
	movieTextAccessors = map[entity.MovieField]func(*entity.Movie) string{
		entity.FieldTitle:       func(m *entity.Movie) string { return m.Title },
		entity.FieldDescription: func(m *entity.Movie) string { return m.Description },
		entity.FieldDirector:    func(m *entity.Movie) string { return m.Director },
		entity.FieldGenre:       func(m *entity.Movie) string { return m.Genre },
		entity.FieldCast:        func(m *entity.Movie) string { return m.Cast },
		entity.FieldReleaseYear: func(m *entity.Movie) string { return m.ReleaseDate.Format("2006") },
	}

	movieComparators = map[entity.MovieField]func(a, b *entity.Movie) int{
		entity.FieldReleaseDate: func(a, b *entity.Movie) int { return a.ReleaseDate.Compare(b.ReleaseDate) },
		entity.FieldTicketPrice: func(a, b *entity.Movie) int { return cmp.Compare(a.TicketPrice, b.TicketPrice) },
	}
)

// memoryMovieRepository keeps movies in insertion order
type memoryMovieRepository struct {
	mu     sync.RWMutex
	movies []*entity.Movie
	log    *zap.Logger
}

func NewMemoryMovieRepository(log *zap.Logger) MovieRepository {
	return &memoryMovieRepository{
		log: log.With(zap.String("repository", "movie_memory")),
	}
}

func (r *memoryMovieRepository) Create(_ context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(movie.ID) >= 0 {
		return errors.Wrapf(ErrDuplicate, "movie %s", movie.ID)
	}

	stored := *movie
	r.movies = append(r.movies, &stored)
	return nil
}

func (r *memoryMovieRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	movie := *r.movies[i]
	return &movie, nil
}

func (r *memoryMovieRepository) Update(_ context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(movie.ID)
	if i < 0 {
		return errors.Errorf("movie %s not found", movie.ID)
	}

	stored := *movie
	// creation metadata is immutable
	stored.CreatedAt = r.movies[i].CreatedAt
	stored.CreatedBy = r.movies[i].CreatedBy
	r.movies[i] = &stored
	return nil
}

func (r *memoryMovieRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return errors.Errorf("movie %s not found", id)
	}

	r.movies = append(r.movies[:i], r.movies[i+1:]...)
	return nil
}

func (r *memoryMovieRepository) List(_ context.Context, q entity.MovieQuery) ([]*entity.Movie, error) {
	r.mu.RLock()
	matched, err := r.filter(q)
	r.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	if q.Sorted() {
		compare, ok := movieComparators[q.SortField]
		if !ok {
			return nil, errors.Wrapf(ErrUnsupportedField, "sort %q", q.SortField)
		}
		desc := q.Order == entity.OrderDesc
		sort.SliceStable(matched, func(i, j int) bool {
			c := compare(matched[i], matched[j])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}

	// start+limit can overflow for huge page sizes, bound by what is left
	start := min(max(q.Offset, 0), len(matched))
	end := start + min(max(q.Limit, 0), len(matched)-start)

	page := make([]*entity.Movie, 0, end-start)
	for _, m := range matched[start:end] {
		movie := *m
		page = append(page, &movie)
	}

	return page, nil
}

func (r *memoryMovieRepository) Count(_ context.Context, q entity.MovieQuery) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched, err := r.filter(q)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

// filter returns the matching movies in insertion order; caller holds the lock
func (r *memoryMovieRepository) filter(q entity.MovieQuery) ([]*entity.Movie, error) {
	if !q.Filtered() {
		return append([]*entity.Movie(nil), r.movies...), nil
	}

	get, ok := movieTextAccessors[q.FilterField]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedField, "filter %q", q.FilterField)
	}

	needle := strings.ToLower(q.FilterValue)
	var matched []*entity.Movie
	for _, m := range r.movies {
		if strings.Contains(strings.ToLower(get(m)), needle) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

func (r *memoryMovieRepository) indexOf(id uuid.UUID) int {
	for i, m := range r.movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]entity.User
	log   *zap.Logger
}

func NewMemoryUserRepository(log *zap.Logger) UserRepository {
	return &memoryUserRepository{
		users: make(map[uuid.UUID]entity.User),
		log:   log.With(zap.String("repository", "user_memory")),
	}
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return errors.Wrapf(ErrDuplicate, "user %s", user.Email)
		}
	}

	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}
