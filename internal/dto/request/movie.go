package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"movie-catalog/pkg/utils"
)

// MovieRequest is the body of create and update. Numbers are pointers so a
// missing value is told apart from zero.
type MovieRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=50,safetext"`
	Description string   `json:"description" validate:"required,min=15,max=250,safetext"`
	ReleaseDate string   `json:"release_date" validate:"required,datetime=2006-01-02,notfuture"`
	Director    string   `json:"director" validate:"required,min=2,max=50,safetext"`
	Genre       string   `json:"genre" validate:"required,min=2,max=50,safetext"`
	AvgRating   *float64 `json:"avg_rating" validate:"required,gte=1,lte=10"`
	TicketPrice *float64 `json:"ticket_price" validate:"required,gte=0"`
	Cast        string   `json:"cast" validate:"required,min=2,max=200,safetext"`
}

// ErrMalformedBody means the body is not a JSON object at all
var ErrMalformedBody = errors.New("invalid request body")

// DecodeMovie reads a JSON movie payload and validates every field. Field
// errors are returned together, a value of the wrong JSON type included;
// err is only set for bodies that are not a JSON object.
func DecodeMovie(body io.Reader) (*MovieRequest, []utils.FieldError, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if raw == nil {
		return nil, nil, fmt.Errorf("%w: null body", ErrMalformedBody)
	}

	var req MovieRequest
	fields := []struct {
		name   string
		kind   string
		decode func(json.RawMessage) error
	}{
		{"title", "string", func(m json.RawMessage) error { return decodeInto(m, &req.Title) }},
		{"description", "string", func(m json.RawMessage) error { return decodeInto(m, &req.Description) }},
		{"release_date", "string", func(m json.RawMessage) error { return decodeInto(m, &req.ReleaseDate) }},
		{"director", "string", func(m json.RawMessage) error { return decodeInto(m, &req.Director) }},
		{"genre", "string", func(m json.RawMessage) error { return decodeInto(m, &req.Genre) }},
		{"avg_rating", "number", func(m json.RawMessage) error { return decodeInto(m, &req.AvgRating) }},
		{"ticket_price", "number", func(m json.RawMessage) error { return decodeInto(m, &req.TicketPrice) }},
		{"cast", "string", func(m json.RawMessage) error { return decodeInto(m, &req.Cast) }},
	}

	// a field of the wrong type stays zero, validation then flags it and
	// the type message replaces whatever validation said
	var typeErrors []utils.FieldError
	for _, f := range fields {
		value, ok := raw[f.name]
		if !ok {
			continue
		}
		if err := f.decode(value); err != nil {
			typeErrors = append(typeErrors, utils.FieldError{
				Field:   f.name,
				Message: "Must be a " + f.kind,
			})
		}
	}

	fieldErrors := utils.ValidateStruct(req)
	for _, fe := range typeErrors {
		fieldErrors = replaceFieldError(fieldErrors, fe)
	}

	return &req, fieldErrors, nil
}

// decodeInto leaves dst untouched when raw does not fit T
func decodeInto[T any](raw json.RawMessage, dst *T) error {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*dst = v
	return nil
}

// ReleaseDateValue parses ReleaseDate; only meaningful after validation
func (r *MovieRequest) ReleaseDateValue() (time.Time, error) {
	return time.Parse(utils.DateLayout, r.ReleaseDate)
}

func replaceFieldError(errs []utils.FieldError, fe utils.FieldError) []utils.FieldError {
	for i := range errs {
		if errs[i].Field == fe.Field {
			errs[i] = fe
			return errs
		}
	}
	return append(errs, fe)
}
