package request

import "math"

// PaginatedRequest is the page window shared by listing and search
type PaginatedRequest struct {
	Page     int `json:"page" validate:"min=1"`
	PageSize int `json:"page_size" validate:"min=1"`
}

// Offset is the index of the first item on the page. It saturates at
// math.MaxInt instead of wrapping, so absurd pages stay past the data.
func (p PaginatedRequest) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}
