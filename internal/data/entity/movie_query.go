package entity

// MovieField names a movie attribute that listings can filter, sort or
// search on
type MovieField string

const (
	FieldNone        MovieField = "none"
	FieldTitle       MovieField = "title"
	FieldDescription MovieField = "description"
	FieldDirector    MovieField = "director"
	FieldGenre       MovieField = "genre"
	FieldCast        MovieField = "cast"
	FieldReleaseDate MovieField = "release_date"
	FieldReleaseYear MovieField = "release_year"
	FieldTicketPrice MovieField = "ticket_price"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// MovieQuery describes one listing: filter, then sort, then the
// [Offset, Offset+Limit) window. Ties in the sort keep insertion order.
type MovieQuery struct {
	FilterField MovieField
	FilterValue string
	SortField   MovieField
	Order       SortOrder
	Offset      int
	Limit       int
}

func (q MovieQuery) Filtered() bool {
	return q.FilterField != "" && q.FilterField != FieldNone
}

func (q MovieQuery) Sorted() bool {
	return q.SortField != "" && q.SortField != FieldNone
}
