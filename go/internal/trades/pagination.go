package trades

import (
	"strconv"
	"strings"
)

// DefaultPageSize is the number of trades per page.
const DefaultPageSize = 20

// Page is one 1-based page of items.
type Page[T any] struct {
	Items       []T
	Number      int
	Size        int
	TotalPages  int
	TotalItems  int
	HasNext     bool
	HasPrevious bool
}

// Paginate returns the requested page of items. A page that is not an
// integer yields the first page; a page out of range, including anything
// below 1, yields the last page. An empty list has one empty page.
func Paginate[T any](items []T, page string, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	number, err := strconv.Atoi(strings.TrimSpace(page))
	switch {
	case err != nil:
		number = 1
	case number < 1 || number > totalPages:
		number = totalPages
	}

	start := (number - 1) * size
	end := min(start+size, total)

	pageItems := make([]T, 0, end-start)
	pageItems = append(pageItems, items[start:end]...)

	return Page[T]{
		Items:       pageItems,
		Number:      number,
		Size:        size,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}
