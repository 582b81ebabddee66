package pagination

import "errors"

// PageSize is fixed at 30 everywhere a listing is paged.
const PageSize = 30

var ErrInvalidSortCriteria = errors.New("invalid sort criteria")

type Page[T any] struct {
	Items         []T   `json:"items"`
	TotalElements int64 `json:"total_elements"`
	Page          int   `json:"page"`
	PageSize      int   `json:"page_size"`
}

// New wraps an already-windowed slice (e.g. rows from a LIMIT/OFFSET
// query) together with the full result-set size.
func New[T any](items []T, total int64, page int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, TotalElements: total, Page: page, PageSize: PageSize}
}

// Paginate windows an in-memory ordered source. The window for page p is
// [p*30, min(p*30+30, N)); an out-of-range page yields an empty page
// with TotalElements still reporting N.
func Paginate[T any](src []T, page int) Page[T] {
	if page < 0 {
		page = 0
	}
	total := int64(len(src))
	start := page * PageSize
	if start >= len(src) {
		return New([]T{}, total, page)
	}
	end := start + PageSize
	if end > len(src) {
		end = len(src)
	}
	items := make([]T, end-start)
	copy(items, src[start:end])
	return New(items, total, page)
}

// OrderClause maps a caller-supplied sort key to an ORDER BY clause.
// Every primary key carries a secondary average_stars DESC tie-break so
// equal primaries order deterministically; "review" already sorts by
// average_stars and needs none.
func OrderClause(sortKey string) (string, error) {
	switch sortKey {
	case "desc":
		return "price DESC, average_stars DESC", nil
	case "asc":
		return "price ASC, average_stars DESC", nil
	case "review":
		return "average_stars DESC", nil
	case "recent":
		return "created_at DESC, average_stars DESC", nil
	}
	return "", ErrInvalidSortCriteria
}

// Offset converts a zero-based page index to a row offset.
func Offset(page int) int {
	if page < 0 {
		return 0
	}
	return page * PageSize
}
