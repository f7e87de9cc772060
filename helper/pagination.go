package helper

import "strconv"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Pagination membaca query ?page=&size= dengan default dan batas aman.
func Pagination(rawPage, rawSize string) (page, size int) {
	page, _ = strconv.Atoi(rawPage)
	if page < 1 {
		page = 1
	}

	size, _ = strconv.Atoi(rawSize)
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
