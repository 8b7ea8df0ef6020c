package entity

import (
	"time"

	"github.com/google/uuid"
)

type Movie struct {
	Base
	Title       string    `db:"title"`
	Description string    `db:"description"`
	ReleaseDate time.Time `db:"release_date"`
	Director    string    `db:"director"`
	Genre       string    `db:"genre"`
	AvgRating   float64   `db:"avg_rating"`
	TicketPrice float64   `db:"ticket_price"`
	Cast        string    `db:"cast"`
	CreatedBy   uuid.UUID `db:"created_by"`
}

// OwnedBy reports whether userID created the movie
func (m *Movie) OwnedBy(userID uuid.UUID) bool {
	return m.CreatedBy == userID
}
