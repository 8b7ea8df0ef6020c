package usecase

import (
	"errors"

	"movie-catalog/pkg/utils"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNoResults          = errors.New("no movies found")
	ErrInvalidPage        = errors.New("invalid page number")
	ErrNotOwner           = errors.New("not the owner of this movie")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// ValidationError carries every field-level failure of one input
type ValidationError struct {
	Errors []utils.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Errors)
}

func newValidationError(errs []utils.FieldError) error {
	return &ValidationError{Errors: errs}
}
