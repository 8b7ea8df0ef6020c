package response

import (
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/utils"
)

type MovieResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ReleaseDate string    `json:"release_date"`
	Director    string    `json:"director"`
	Genre       string    `json:"genre"`
	AvgRating   float64   `json:"avg_rating"`
	TicketPrice float64   `json:"ticket_price"`
	Cast        string    `json:"cast"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		ReleaseDate: movie.ReleaseDate.Format(utils.DateLayout),
		Director:    movie.Director,
		Genre:       movie.Genre,
		AvgRating:   movie.AvgRating,
		TicketPrice: movie.TicketPrice,
		Cast:        movie.Cast,
		CreatedBy:   movie.CreatedBy.String(),
		CreatedAt:   movie.CreatedAt,
		UpdatedAt:   movie.UpdatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
