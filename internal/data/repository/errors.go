package repository

import "errors"

// ErrDuplicate is returned when an insert violates a unique constraint
var ErrDuplicate = errors.New("duplicate record")

// ErrUnsupportedField is returned when a query names a field the store has
// no column or accessor for
var ErrUnsupportedField = errors.New("unsupported movie field")
