package request

import (
	"net/url"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/utils"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// MovieListRequest holds the GET /movie query parameters
type MovieListRequest struct {
	PaginatedRequest
	SortBy      string `json:"sort_by" validate:"oneof=none release_date ticket_price"`
	Order       string `json:"order" validate:"oneof=asc desc"`
	FilterBy    string `json:"filter_by" validate:"oneof=none genre director release_year"`
	FilterValue string `json:"filter_value"`
}

// MovieSearchRequest holds the GET /movie/search query parameters
type MovieSearchRequest struct {
	SearchParam string `json:"search_param" validate:"required,oneof=title genre description director cast"`
	SearchValue string `json:"search_value" validate:"required"`
	PaginatedRequest
}

// ParseMovieListRequest reads and validates listing parameters, applying
// defaults for the ones left out
func ParseMovieListRequest(query url.Values) (*MovieListRequest, []utils.FieldError) {
	req := &MovieListRequest{
		SortBy:      valueOr(query.Get("sort_by"), string(entity.FieldNone)),
		Order:       valueOr(utils.FirstQueryValue(query, "order", "order_by"), string(entity.OrderAsc)),
		FilterBy:    valueOr(query.Get("filter_by"), string(entity.FieldNone)),
		FilterValue: query.Get("filter_value"),
	}

	paging, errs := parsePaging(query)
	if len(errs) > 0 {
		return nil, errs
	}
	req.PaginatedRequest = paging

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, errs
	}

	return req, nil
}

// ParseMovieSearchRequest reads and validates search parameters
func ParseMovieSearchRequest(query url.Values) (*MovieSearchRequest, []utils.FieldError) {
	req := &MovieSearchRequest{
		SearchParam: query.Get("search_param"),
		SearchValue: query.Get("search_value"),
	}

	paging, errs := parsePaging(query)
	if len(errs) > 0 {
		return nil, errs
	}
	req.PaginatedRequest = paging

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, errs
	}

	return req, nil
}

// Query converts the request into a store query
func (r *MovieListRequest) Query() entity.MovieQuery {
	return entity.MovieQuery{
		FilterField: entity.MovieField(r.FilterBy),
		FilterValue: r.FilterValue,
		SortField:   entity.MovieField(r.SortBy),
		Order:       entity.SortOrder(r.Order),
		Offset:      r.Offset(),
		Limit:       r.PageSize,
	}
}

// Query converts the search into an unsorted store query
func (r *MovieSearchRequest) Query() entity.MovieQuery {
	return entity.MovieQuery{
		FilterField: entity.MovieField(r.SearchParam),
		FilterValue: r.SearchValue,
		SortField:   entity.FieldNone,
		Order:       entity.OrderAsc,
		Offset:      r.Offset(),
		Limit:       r.PageSize,
	}
}

func parsePaging(query url.Values) (PaginatedRequest, []utils.FieldError) {
	var (
		paging PaginatedRequest
		errs   []utils.FieldError
		err    error
	)

	paging.Page, err = utils.ParseIntStrict(query.Get("page"), DefaultPage)
	if err != nil {
		errs = append(errs, utils.FieldError{Field: "page", Message: "Must be an integer"})
	}

	paging.PageSize, err = utils.ParseIntStrict(utils.FirstQueryValue(query, "page_size", "movies_per_page"), DefaultPageSize)
	if err != nil {
		errs = append(errs, utils.FieldError{Field: "page_size", Message: "Must be an integer"})
	}

	return paging, errs
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
