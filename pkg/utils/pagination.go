package utils

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	// ceil without total+perPage, which overflows for huge page sizes
	return int((total-1)/int64(perPage)) + 1
}

// MaxAdmittedPage is the highest page number listings accept.
// total/perPage+1 admits one page past an exact boundary: 20 items at 10 per
// page admit page 3.
func MaxAdmittedPage(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int(total/int64(perPage)) + 1
}
